package service

import (
	"errors"
	"fmt"
	"strings"

	"trouvaille/internal/session"
	"trouvaille/models"
)

type sessionService struct {
	store session.Store
}

// NewSessionService returns a SessionService over the given credential store.
func NewSessionService(store session.Store) SessionService {
	return &sessionService{store: store}
}

// Login persists the credential pair. The pair is not verified against the
// server here; wrong credentials surface as adapter.ErrUnauthorized on the
// first update or delete.
func (s *sessionService) Login(username, password string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return ErrMissingFields
	}

	creds := models.Credentials{Username: username, Password: password}
	if err := s.store.Set(creds); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

func (s *sessionService) Logout() error {
	if err := s.store.Clear(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *sessionService) IsAdmin() bool {
	return s.store.Present()
}

func (s *sessionService) Credentials() (models.Credentials, error) {
	creds, err := s.store.Get()
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return models.Credentials{}, ErrNotLoggedIn
		}
		return models.Credentials{}, fmt.Errorf("read session: %w", err)
	}
	return creds, nil
}
