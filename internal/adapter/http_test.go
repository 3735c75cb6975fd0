package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trouvaille/internal/config"
	"trouvaille/internal/logger"
	"trouvaille/models"
)

// newTestAdapter builds an httpBoardAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpBoardAdapter {
	t.Helper()
	cfg := config.ClientAdapter{
		Address:        serverURL,
		UploadsAddress: serverURL + "/uploads",
		RequestTimeout: 5 * time.Second,
	}

	a, err := NewHTTPBoardAdapter(cfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpBoardAdapter)
}

func writeTempImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "photo.jpg")
	require.NoError(t, os.WriteFile(path, []byte("not really a jpeg"), 0o600))
	return path
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestListFound_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/found", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{
			"id": "f-1",
			"description": "Black wallet",
			"found_date": "2024-03-01T00:00:00",
			"found_time": "14:30",
			"location": "Library",
			"content_info": "ID card inside",
			"image_filename": "wallet.jpg",
			"created_at": "2024-03-01T15:00:00",
			"possible_matches": ["l-9"]
		}]`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	items, err := a.ListFound(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 1)
	got := items[0]
	assert.Equal(t, "f-1", got.ID)
	assert.Equal(t, models.TypeFound, got.Type)
	assert.Equal(t, "2024-03-01", got.Date, "datetime values must be trimmed to the calendar date")
	assert.Equal(t, "14:30", got.Time)
	assert.Equal(t, "wallet.jpg", got.ImageFilename)
	assert.Equal(t, []string{"l-9"}, got.PossibleMatches)
	assert.Equal(t, time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC), got.CreatedAt)
}

func TestListLost_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/lost", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{
			"id": "l-9",
			"description": "Red wallet",
			"lost_date": "2024-02-28",
			"lost_time": "09:00",
			"location": "Cafeteria",
			"created_at": "2024-02-28T10:00:00Z"
		}]`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	items, err := a.ListLost(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.TypeLost, items[0].Type)
	assert.Empty(t, items[0].ImageFilename)
	assert.Empty(t, items[0].PossibleMatches)
}

func TestListFound_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.ListFound(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestCreateFound_SendsMultipartWithImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/found", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Blue umbrella", r.FormValue("description"))
		assert.Equal(t, "Library", r.FormValue("location"))
		assert.Equal(t, "2024-03-01", r.FormValue("found_date"))
		assert.Equal(t, "12:00", r.FormValue("found_time"))

		_, header, err := r.FormFile("image")
		require.NoError(t, err)
		assert.Equal(t, "photo.jpg", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "f-2",
			"description": "Blue umbrella",
			"found_date": "2024-03-01",
			"found_time": "12:00",
			"location": "Library",
			"image_filename": "abc.jpg",
			"created_at": "2024-03-01T12:05:00"
		}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	item, err := a.CreateFound(context.Background(), models.ItemDraft{
		Description: "Blue umbrella",
		Location:    "Library",
		Date:        "2024-03-01",
		Time:        "12:00",
		ImagePath:   writeTempImage(t),
	})

	require.NoError(t, err)
	assert.Equal(t, "f-2", item.ID)
	assert.Equal(t, models.TypeFound, item.Type)
	assert.Equal(t, "abc.jpg", item.ImageFilename)
}

func TestCreateLost_SendsVariantFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "2024-02-28", r.FormValue("lost_date"))
		assert.Equal(t, "09:00", r.FormValue("lost_time"))
		assert.Empty(t, r.FormValue("found_date"))

		_, _, err := r.FormFile("image")
		assert.Error(t, err, "lost items must not carry an image part")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "l-3", "description": "Red wallet", "lost_date": "2024-02-28", "lost_time": "09:00", "location": "Cafeteria", "created_at": "2024-02-28T10:00:00"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	item, err := a.CreateLost(context.Background(), models.ItemDraft{
		Description: "Red wallet",
		Location:    "Cafeteria",
		Date:        "2024-02-28",
		Time:        "09:00",
	})

	require.NoError(t, err)
	assert.Equal(t, "l-3", item.ID)
	assert.Equal(t, models.TypeLost, item.Type)
}

// ── Update / Delete ──────────────────────────────────────────────────────────

func TestUpdate_SendsBasicAuth(t *testing.T) {
	router := chi.NewRouter()
	router.Put("/{type}/{id}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "found", chi.URLParam(r, "type"))
		assert.Equal(t, "f-1", chi.URLParam(r, "id"))

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "admin", user)
		assert.Equal(t, "s3cret", pass)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Black leather wallet", r.FormValue("description"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "f-1", "description": "Black leather wallet", "found_date": "2024-03-01", "found_time": "14:30", "location": "Library", "created_at": "2024-03-01T15:00:00"}`))
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	creds := models.Credentials{Username: "admin", Password: "s3cret"}
	item, err := a.Update(context.Background(), creds, models.TypeFound, "f-1", models.ItemDraft{
		Description: "Black leather wallet",
		Location:    "Library",
		Date:        "2024-03-01",
		Time:        "14:30",
	})

	require.NoError(t, err)
	assert.Equal(t, "Black leather wallet", item.Description)
}

func TestDelete_Success(t *testing.T) {
	router := chi.NewRouter()
	router.Delete("/{type}/{id}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "lost", chi.URLParam(r, "type"))
		assert.Equal(t, "l-9", chi.URLParam(r, "id"))

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(models.MessageResponse{Detail: "deleted"}))
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Delete(context.Background(), models.Credentials{Username: "admin", Password: "s3cret"}, models.TypeLost, "l-9")
	require.NoError(t, err)
}

func TestDelete_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("bad credentials"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Delete(context.Background(), models.Credentials{Username: "admin", Password: "wrong"}, models.TypeFound, "f-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "invalid credentials")
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func TestImageURL(t *testing.T) {
	a := newTestAdapter(t, "http://board.example:8000/api")

	assert.Equal(t, "http://board.example:8000/api/uploads/wallet.jpg", a.ImageURL("wallet.jpg"))
	assert.Empty(t, a.ImageURL(""))
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL("board.example:8000/api/")
	require.NoError(t, err)
	assert.Equal(t, "http://board.example:8000/api", got)

	_, err = normalizeBaseURL("")
	require.Error(t, err)
}
