package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"trouvaille/internal/config"
	"trouvaille/internal/logger"
	"trouvaille/models"
)

type httpBoardAdapter struct {
	client      *resty.Client
	uploadsBase string

	logger *logger.Logger
}

// NewHTTPBoardAdapter constructs the HTTP/REST implementation of
// [BoardAdapter]. It normalises and validates both base URLs from cfg and
// configures the underlying resty client with the resolved API base URL and
// request timeout.
//
// Returns an error if either address is empty or cannot be parsed as a valid
// URL.
func NewHTTPBoardAdapter(cfg config.ClientAdapter, log *logger.Logger) (BoardAdapter, error) {
	apiBase, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid api address: %w", err)
	}

	uploadsBase, err := normalizeBaseURL(cfg.UploadsAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid uploads address: %w", err)
	}

	client := resty.New().
		SetBaseURL(apiBase).
		SetTimeout(cfg.RequestTimeout)

	return &httpBoardAdapter{client: client, uploadsBase: uploadsBase, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// request returns a prepared resty request carrying the context and a fresh
// X-Request-ID for log correlation with the server.
func (h *httpBoardAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", uuid.NewString())
}

// ListFound implements [BoardAdapter]. It GETs /found and converts the wire
// collection into tagged items.
func (h *httpBoardAdapter) ListFound(ctx context.Context) ([]models.Item, error) {
	resp, err := h.request(ctx).Get("/found")
	if err != nil {
		return nil, fmt.Errorf("list found request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var dtos []foundItemDTO
	if err = json.Unmarshal(resp.Body(), &dtos); err != nil {
		return nil, fmt.Errorf("decode found list response: %w", err)
	}

	items := make([]models.Item, 0, len(dtos))
	for _, dto := range dtos {
		items = append(items, dto.toItem())
	}
	return items, nil
}

// ListLost implements [BoardAdapter]. It GETs /lost and converts the wire
// collection into tagged items.
func (h *httpBoardAdapter) ListLost(ctx context.Context) ([]models.Item, error) {
	resp, err := h.request(ctx).Get("/lost")
	if err != nil {
		return nil, fmt.Errorf("list lost request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var dtos []lostItemDTO
	if err = json.Unmarshal(resp.Body(), &dtos); err != nil {
		return nil, fmt.Errorf("decode lost list response: %w", err)
	}

	items := make([]models.Item, 0, len(dtos))
	for _, dto := range dtos {
		items = append(items, dto.toItem())
	}
	return items, nil
}

// CreateFound implements [BoardAdapter]. It POSTs the draft to /found as a
// multipart form with the image file attached.
func (h *httpBoardAdapter) CreateFound(ctx context.Context, draft models.ItemDraft) (models.Item, error) {
	resp, err := h.request(ctx).
		SetMultipartFormData(multipartFields(models.TypeFound, draft)).
		SetFile("image", draft.ImagePath).
		Post("/found")
	if err != nil {
		return models.Item{}, fmt.Errorf("create found request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	var dto foundItemDTO
	if err = json.Unmarshal(resp.Body(), &dto); err != nil {
		return models.Item{}, fmt.Errorf("decode create found response: %w", err)
	}
	return dto.toItem(), nil
}

// CreateLost implements [BoardAdapter]. It POSTs the draft to /lost as a
// multipart form.
func (h *httpBoardAdapter) CreateLost(ctx context.Context, draft models.ItemDraft) (models.Item, error) {
	resp, err := h.request(ctx).
		SetMultipartFormData(multipartFields(models.TypeLost, draft)).
		Post("/lost")
	if err != nil {
		return models.Item{}, fmt.Errorf("create lost request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	var dto lostItemDTO
	if err = json.Unmarshal(resp.Body(), &dto); err != nil {
		return models.Item{}, fmt.Errorf("decode create lost response: %w", err)
	}
	return dto.toItem(), nil
}

// Update implements [BoardAdapter]. It PUTs the draft to /{type}/{id} as a
// multipart form with Basic auth. The image part is attached only when the
// draft names a replacement file.
func (h *httpBoardAdapter) Update(ctx context.Context, creds models.Credentials, itemType models.ItemType, id string, draft models.ItemDraft) (models.Item, error) {
	req := h.request(ctx).
		SetBasicAuth(creds.Username, creds.Password).
		SetMultipartFormData(multipartFields(itemType, draft))
	if itemType == models.TypeFound && draft.ImagePath != "" {
		req.SetFile("image", draft.ImagePath)
	}

	resp, err := req.Put(fmt.Sprintf("/%s/%s", itemType, id))
	if err != nil {
		return models.Item{}, fmt.Errorf("update request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	if itemType == models.TypeFound {
		var dto foundItemDTO
		if err = json.Unmarshal(resp.Body(), &dto); err != nil {
			return models.Item{}, fmt.Errorf("decode update response: %w", err)
		}
		return dto.toItem(), nil
	}

	var dto lostItemDTO
	if err = json.Unmarshal(resp.Body(), &dto); err != nil {
		return models.Item{}, fmt.Errorf("decode update response: %w", err)
	}
	return dto.toItem(), nil
}

// Delete implements [BoardAdapter]. It DELETEs /{type}/{id} with Basic auth.
func (h *httpBoardAdapter) Delete(ctx context.Context, creds models.Credentials, itemType models.ItemType, id string) error {
	resp, err := h.request(ctx).
		SetBasicAuth(creds.Username, creds.Password).
		Delete(fmt.Sprintf("/%s/%s", itemType, id))
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}

	return mapHTTPError(resp)
}

// ImageURL implements [BoardAdapter].
func (h *httpBoardAdapter) ImageURL(filename string) string {
	if filename == "" {
		return ""
	}
	return h.uploadsBase + "/" + filename
}
