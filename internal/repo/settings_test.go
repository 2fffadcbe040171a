package repo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsDefaultWithoutDocument(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir)
	require.NoError(t, err)

	assert.True(t, store.Settings.Get().RegistrationOpen)
	_, err = os.Stat(filepath.Join(dir, settingsFile))
	assert.True(t, os.IsNotExist(err), "reading defaults must not create the settings file")
}

func TestSettingsUpdatePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir)
	require.NoError(t, err)

	updated, err := store.Settings.SetRegistrationOpen(false)
	require.NoError(t, err)
	assert.False(t, updated.RegistrationOpen)
	assert.False(t, store.Settings.Get().RegistrationOpen)

	// Simulated restart: a fresh store reloads the persisted flag.
	reopened, err := Open(dir)
	require.NoError(t, err)
	assert.False(t, reopened.Settings.Get().RegistrationOpen)
}
