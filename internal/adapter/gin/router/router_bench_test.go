package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"bookmark-service/internal/adapter/gin/handler"
)

// BenchmarkBookmarkRoutes measures the full request path: gate, token
// verification, handler and SQLite round-trips.
func BenchmarkBookmarkRoutes(b *testing.B) {
	r, _ := newTestRouter(b)

	w := doRequest(r, http.MethodPost, "/auth/sign-up", "", map[string]string{
		"email": "bench@b.com", "password": "x", "firstName": "f", "lastName": "l",
	})
	require.Equal(b, http.StatusCreated, w.Code)
	var tok handler.TokenResponse
	require.NoError(b, json.Unmarshal(w.Body.Bytes(), &tok))

	body := map[string]string{"title": "t", "link": "https://bench.dev"}
	w = doRequest(r, http.MethodPost, "/bookmarks", tok.AccessToken, body)
	require.Equal(b, http.StatusCreated, w.Code)
	var created handler.BookmarkResponse
	require.NoError(b, json.Unmarshal(w.Body.Bytes(), &created))

	b.Run("List", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			if w := doRequest(r, http.MethodGet, "/bookmarks", tok.AccessToken, nil); w.Code != http.StatusOK {
				b.Fatalf("unexpected status %d", w.Code)
			}
		}
	})

	b.Run("GetByID", func(b *testing.B) {
		path := fmt.Sprintf("/bookmarks/%d", created.ID)
		b.ReportAllocs()
		for b.Loop() {
			if w := doRequest(r, http.MethodGet, path, tok.AccessToken, nil); w.Code != http.StatusOK {
				b.Fatalf("unexpected status %d", w.Code)
			}
		}
	})

	b.Run("Create", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			if w := doRequest(r, http.MethodPost, "/bookmarks", tok.AccessToken, body); w.Code != http.StatusCreated {
				b.Fatalf("unexpected status %d", w.Code)
			}
		}
	})
}
