package service

import (
	"trouvaille/internal/adapter"
	"trouvaille/internal/logger"
	"trouvaille/internal/session"
	"trouvaille/internal/store"
)

// ClientServices groups every service the interaction layer depends on.
type ClientServices struct {
	Board   BoardService
	Session SessionService
	Refresh RefreshJob
}

func NewClientServices(boardAdapter adapter.BoardAdapter, storages *store.ClientStorages, sessionStore session.Store, logger *logger.Logger) *ClientServices {
	sessionSvc := NewSessionService(sessionStore)
	boardSvc := NewBoardService(boardAdapter, storages.ItemCache, sessionSvc, logger)

	return &ClientServices{
		Board:   boardSvc,
		Session: sessionSvc,
		Refresh: NewRefreshJob(boardSvc),
	}
}
