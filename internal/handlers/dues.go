package handlers

import (
	"net/http"

	pkghttp "github.com/lawsa-dev/portal-api/pkg/http"
)

// DuesHandler is the placeholder for membership dues payment. The route is
// gated to verified members so the surface is final even though checkout is
// not wired to a payment provider yet.
type DuesHandler struct{}

// NewDuesHandler creates a new DuesHandler
func NewDuesHandler() *DuesHandler {
	return &DuesHandler{}
}

// Checkout always reports that payments are not yet enabled.
func (h *DuesHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	pkghttp.WriteNotImplemented(w, "Dues payments are not yet enabled")
}
