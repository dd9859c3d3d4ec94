package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lawsa-dev/portal-api/internal/models"
	"github.com/lawsa-dev/portal-api/internal/news"
	pkghttp "github.com/lawsa-dev/portal-api/pkg/http"
)

const newsListLimit = 20

// NewsHandler proxies the public news feed from the headless CMS.
type NewsHandler struct {
	client news.Client
}

// NewNewsHandler creates a new NewsHandler
func NewNewsHandler(client news.Client) *NewsHandler {
	return &NewsHandler{client: client}
}

// List returns recent published posts.
func (h *NewsHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.client.ListPosts(r.Context(), newsListLimit)
	if err != nil {
		pkghttp.WriteBadGateway(w, "News feed is temporarily unavailable")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, posts)
}

// Get returns a single post by slug.
func (h *NewsHandler) Get(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	post, err := h.client.GetPost(r.Context(), slug)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			pkghttp.WriteNotFound(w, "Post not found")
		default:
			pkghttp.WriteBadGateway(w, "News feed is temporarily unavailable")
		}
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, post)
}
