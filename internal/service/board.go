package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"trouvaille/internal/adapter"
	"trouvaille/internal/logger"
	"trouvaille/internal/store"
	"trouvaille/models"
)

type boardService struct {
	adapter adapter.BoardAdapter
	cache   store.ItemCache
	session SessionService
	logger  *logger.Logger

	mu    sync.RWMutex
	items []models.Item
	index map[models.Key]models.Item
}

// NewBoardService returns a BoardService holding an empty board. Call Reload
// (or Prime for the cached copy) to populate it.
func NewBoardService(boardAdapter adapter.BoardAdapter, cache store.ItemCache, session SessionService, logger *logger.Logger) BoardService {
	return &boardService{
		adapter: boardAdapter,
		cache:   cache,
		session: session,
		logger:  logger,
		index:   map[models.Key]models.Item{},
	}
}

func (b *boardService) Reload(ctx context.Context) (bool, error) {
	var found, lost []models.Item

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		found, err = b.adapter.ListFound(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		lost, err = b.adapter.ListLost(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		b.logger.Err(err).
			Str("func", "boardService.Reload").
			Msg("fetch failed, falling back to cached board")
		if cacheErr := b.loadCached(ctx); cacheErr != nil {
			return false, fmt.Errorf("reload board: %w", err)
		}
		return true, nil
	}

	merged := Merge(found, lost)
	b.setBoard(merged)

	if err := b.cache.ReplaceAll(ctx, merged); err != nil {
		// The in-memory board is already current; a cache write failure
		// only costs the next offline fallback.
		b.logger.Err(err).
			Str("func", "boardService.Reload").
			Msg("failed to refresh item cache")
	}

	return false, nil
}

// Prime fills the board from the local cache, if it has anything, so the
// first render is not blank while the initial fetch is in flight.
func (b *boardService) Prime(ctx context.Context) error {
	return b.loadCached(ctx)
}

func (b *boardService) loadCached(ctx context.Context) error {
	items, err := b.cache.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("read cached board: %w", err)
	}
	if len(items) == 0 {
		return fmt.Errorf("cached board is empty")
	}

	b.setBoard(items)
	return nil
}

func (b *boardService) setBoard(items []models.Item) {
	index := make(map[models.Key]models.Item, len(items))
	for _, item := range items {
		index[item.Key()] = item
	}

	b.mu.Lock()
	b.items = items
	b.index = index
	b.mu.Unlock()
}

func (b *boardService) Visible(state FilterState) ([]models.Item, Outcome) {
	b.mu.RLock()
	items := b.items
	b.mu.RUnlock()

	if len(items) == 0 {
		return nil, OutcomeBoardEmpty
	}

	visible := Apply(items, state)
	if len(visible) == 0 {
		return nil, OutcomeNoMatches
	}
	return visible, OutcomeOK
}

func (b *boardService) Lookup(key models.Key) (models.Item, error) {
	b.mu.RLock()
	item, ok := b.index[key]
	b.mu.RUnlock()

	if !ok {
		return models.Item{}, ErrItemNotFound
	}
	return item, nil
}

func (b *boardService) ResolveMatches(item models.Item) []models.Item {
	opposite := item.Type.Opposite()

	b.mu.RLock()
	defer b.mu.RUnlock()

	var matches []models.Item
	for _, id := range item.PossibleMatches {
		if match, ok := b.index[models.Key{Type: opposite, ID: id}]; ok {
			matches = append(matches, match)
		}
	}
	return matches
}

func (b *boardService) SubmitFound(ctx context.Context, draft models.ItemDraft) error {
	if err := validateDraft(draft); err != nil {
		return err
	}
	if strings.TrimSpace(draft.ImagePath) == "" {
		return ErrImageRequired
	}

	if _, err := b.adapter.CreateFound(ctx, draft); err != nil {
		return fmt.Errorf("submit found item: %w", err)
	}

	return b.reloadAfterMutation(ctx)
}

func (b *boardService) SubmitLost(ctx context.Context, draft models.ItemDraft) error {
	if err := validateDraft(draft); err != nil {
		return err
	}

	if _, err := b.adapter.CreateLost(ctx, draft); err != nil {
		return fmt.Errorf("submit lost item: %w", err)
	}

	return b.reloadAfterMutation(ctx)
}

func (b *boardService) Update(ctx context.Context, key models.Key, draft models.ItemDraft) error {
	if err := validateDraft(draft); err != nil {
		return err
	}

	creds, err := b.session.Credentials()
	if err != nil {
		return err
	}

	if _, err = b.adapter.Update(ctx, creds, key.Type, key.ID, draft); err != nil {
		return fmt.Errorf("update item %s/%s: %w", key.Type, key.ID, err)
	}

	return b.reloadAfterMutation(ctx)
}

func (b *boardService) Delete(ctx context.Context, key models.Key) error {
	creds, err := b.session.Credentials()
	if err != nil {
		return err
	}

	if err = b.adapter.Delete(ctx, creds, key.Type, key.ID); err != nil {
		return fmt.Errorf("delete item %s/%s: %w", key.Type, key.ID, err)
	}

	return b.reloadAfterMutation(ctx)
}

func (b *boardService) ImageURL(filename string) string {
	return b.adapter.ImageURL(filename)
}

// reloadAfterMutation refreshes the board after a successful write. The
// write already happened, so a reload failure is reported but must not be
// confused with a failed mutation.
func (b *boardService) reloadAfterMutation(ctx context.Context) error {
	if _, err := b.Reload(ctx); err != nil {
		return fmt.Errorf("saved, but refreshing the board failed: %w", err)
	}
	return nil
}

func validateDraft(draft models.ItemDraft) error {
	for _, field := range []string{draft.Description, draft.Location, draft.Date, draft.Time} {
		if strings.TrimSpace(field) == "" {
			return ErrMissingFields
		}
	}
	return nil
}
