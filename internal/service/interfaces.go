// Package service holds the client's core logic: the board aggregation and
// filter engine, the session service, and the background refresh job. All
// transport and persistence concerns live behind the adapter, store and
// session packages; everything here operates on in-memory data.
package service

import (
	"context"
	"time"

	"trouvaille/models"
)

// BoardService owns the merged board: both collections fetched from the
// server, stable-sorted and indexed by (type, id). Reads are answered from
// the held data without re-fetching; mutations go to the server and then
// reload.
type BoardService interface {
	// Reload fetches both collections, merges them and rebuilds the index.
	// On network failure it falls back to the local cache and reports
	// stale=true alongside a nil error; the error is non-nil only when the
	// cache is empty too.
	Reload(ctx context.Context) (stale bool, err error)

	// Prime fills the board from the local cache so the first render is not
	// blank while the initial fetch is in flight.
	Prime(ctx context.Context) error

	// Visible filters the held board. The Outcome distinguishes an empty
	// board from filters that matched nothing.
	Visible(state FilterState) ([]models.Item, Outcome)

	// Lookup returns the held item for key, or ErrItemNotFound.
	Lookup(key models.Key) (models.Item, error)

	// ResolveMatches resolves item's possible-match ids against the
	// opposite collection. Ids that no longer resolve are dropped silently.
	ResolveMatches(item models.Item) []models.Item

	// SubmitFound validates draft (image required), posts it and reloads.
	SubmitFound(ctx context.Context, draft models.ItemDraft) error

	// SubmitLost validates draft and posts it, then reloads.
	SubmitLost(ctx context.Context, draft models.ItemDraft) error

	// Update rewrites an existing report using the stored admin credentials.
	Update(ctx context.Context, key models.Key, draft models.ItemDraft) error

	// Delete removes a report using the stored admin credentials.
	Delete(ctx context.Context, key models.Key) error

	// ImageURL resolves a stored image filename to its public URL.
	ImageURL(filename string) string
}

// SessionService manages the admin credential pair. Credentials are checked
// lazily: Login stores them, and the first mutating call surfaces
// adapter.ErrUnauthorized if they are wrong.
type SessionService interface {
	Login(username, password string) error
	Logout() error
	IsAdmin() bool
	Credentials() (models.Credentials, error)
}

// RefreshJob periodically reloads the board in the background so a
// long-lived session converges on server state.
type RefreshJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}
