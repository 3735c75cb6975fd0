// Package adapter provides the transport layer for talking to the remote
// lost-and-found board service.
//
// The primary abstraction is [BoardAdapter], which decouples the service
// layer from the REST protocol. The package ships an HTTP implementation
// ([NewHTTPBoardAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"trouvaille/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/board_adapter_mock.go -package=mock

// BoardAdapter defines transport-agnostic communication with the board
// service. Implementations are responsible for serialisation, multipart
// encoding, authentication headers, and mapping transport-level errors to the
// sentinel values defined in this package.
//
// Credentials are passed explicitly at mutating call sites; the adapter holds
// no session state of its own.
type BoardAdapter interface {
	// ListFound fetches every found-item report. No authentication.
	ListFound(ctx context.Context) ([]models.Item, error)

	// ListLost fetches every lost-item report. No authentication.
	ListLost(ctx context.Context) ([]models.Item, error)

	// CreateFound submits a new found-item report as a multipart form with
	// the image file attached. The draft's ImagePath must point at a
	// readable file; validation of its presence happens in the service
	// layer before this call.
	CreateFound(ctx context.Context, draft models.ItemDraft) (models.Item, error)

	// CreateLost submits a new lost-item report as a multipart form.
	CreateLost(ctx context.Context, draft models.ItemDraft) (models.Item, error)

	// Update rewrites the report identified by itemType and id. Requires
	// Basic auth. A blank ImagePath keeps the stored image; a non-blank one
	// replaces it (found items only).
	Update(ctx context.Context, creds models.Credentials, itemType models.ItemType, id string, draft models.ItemDraft) (models.Item, error)

	// Delete removes the report identified by itemType and id. Requires
	// Basic auth. Returns [ErrUnauthorized] (wrapped) on a 401 so the UI can
	// tell the user the credentials are invalid rather than showing a
	// generic failure.
	Delete(ctx context.Context, creds models.Credentials, itemType models.ItemType, id string) error

	// ImageURL resolves a stored image filename against the static uploads
	// base URL. Returns an empty string for an empty filename.
	ImageURL(filename string) string
}
