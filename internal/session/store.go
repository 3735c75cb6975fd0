// Package session owns the administrator credential pair. Storage sits
// behind the [Store] capability interface so call sites never touch the
// backing file directly and the plain store can be swapped for the
// encrypted-at-rest one through configuration alone.
package session

import (
	"errors"

	"trouvaille/internal/config"
	"trouvaille/models"
)

//go:generate mockgen -source=store.go -destination=../mock/session_store_mock.go -package=mock

var (
	// ErrNoSession is returned by Get when no credential pair is stored.
	ErrNoSession = errors.New("no stored session")
	// ErrBadPassphrase is returned by the encrypted store when the stored
	// blob cannot be opened with the configured passphrase.
	ErrBadPassphrase = errors.New("session passphrase does not match stored credentials")
)

// Store persists the admin credential pair durably across runs on this
// client only. Implementations are not safe for concurrent use; all calls
// happen on the TUI event loop.
type Store interface {
	// Set persists the pair, replacing any previous one.
	Set(creds models.Credentials) error

	// Get returns the stored pair, or [ErrNoSession] when absent.
	Get() (models.Credentials, error)

	// Clear removes the stored pair. Clearing an absent pair is not an
	// error.
	Clear() error

	// Present reports whether a pair is currently stored, without reading
	// or decrypting it.
	Present() bool
}

// New selects the store implementation from configuration: a non-empty
// passphrase yields the encrypted store, otherwise the plain JSON file store
// (the original client behaviour).
func New(cfg config.ClientSession) Store {
	if cfg.Passphrase != "" {
		return NewEncryptedStore(cfg.Path, cfg.Passphrase)
	}
	return NewFileStore(cfg.Path)
}
