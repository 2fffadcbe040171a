package types

// Settings is the singleton application settings record.
type Settings struct {
	RegistrationOpen bool `json:"registrationOpen"`
}

// DefaultSettings returns the settings used when no settings document has
// been persisted yet.
func DefaultSettings() Settings {
	return Settings{RegistrationOpen: true}
}
