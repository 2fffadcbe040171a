// Package types defines the entity types, configuration, and standard
// errors shared by the taskboard repositories, store, and HTTP server.
package types
