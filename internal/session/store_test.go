package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trouvaille/internal/config"
	"trouvaille/models"
)

func sessionPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "session.json")
}

func TestFileStore_RoundTrip(t *testing.T) {
	store := NewFileStore(sessionPath(t))
	creds := models.Credentials{Username: "admin", Password: "s3cret"}

	assert.False(t, store.Present())

	require.NoError(t, store.Set(creds))
	assert.True(t, store.Present())

	got, err := store.Get()
	require.NoError(t, err)
	assert.Equal(t, creds, got)

	require.NoError(t, store.Clear())
	assert.False(t, store.Present())

	_, err = store.Get()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestFileStore_ClearWhenAbsent(t *testing.T) {
	store := NewFileStore(sessionPath(t))
	require.NoError(t, store.Clear())
}

func TestEncryptedStore_RoundTrip(t *testing.T) {
	path := sessionPath(t)
	store := NewEncryptedStore(path, "correct horse")
	creds := models.Credentials{Username: "admin", Password: "s3cret"}

	require.NoError(t, store.Set(creds))
	assert.True(t, store.Present())

	got, err := store.Get()
	require.NoError(t, err)
	assert.Equal(t, creds, got)
}

func TestEncryptedStore_WrongPassphrase(t *testing.T) {
	path := sessionPath(t)
	require.NoError(t, NewEncryptedStore(path, "right").Set(models.Credentials{Username: "admin", Password: "x"}))

	_, err := NewEncryptedStore(path, "wrong").Get()
	assert.ErrorIs(t, err, ErrBadPassphrase)
}

func TestEncryptedStore_FileIsNotPlaintext(t *testing.T) {
	path := sessionPath(t)
	require.NoError(t, NewEncryptedStore(path, "pass").Set(models.Credentials{Username: "admin", Password: "topsecret"}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "topsecret")
}

func TestNew_SelectsImplementation(t *testing.T) {
	plain := New(config.ClientSession{Path: sessionPath(t)})
	_, ok := plain.(*fileStore)
	assert.True(t, ok)

	sealed := New(config.ClientSession{Path: sessionPath(t), Passphrase: "p"})
	_, ok = sealed.(*encryptedStore)
	assert.True(t, ok)
}
