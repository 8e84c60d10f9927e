// Package debug serves a small bounded listing of recent submissions for
// manual operational inspection. It is read-only and strips the internal
// storage identifier from every document.
package debug

import (
	"context"
	"net/http"

	submissionstore "github.com/dalemusser/hirehub/internal/app/store/submissions"
	"github.com/dalemusser/hirehub/internal/app/system/apierror"
	"github.com/dalemusser/hirehub/internal/app/system/timeouts"
	"github.com/dalemusser/hirehub/internal/domain/models"
	"go.uber.org/zap"
)

// Handler holds dependencies for the debug listing.
type Handler struct {
	Store    *submissionstore.Store
	PageSize int
	Log      *zap.Logger
}

// NewHandler constructs a debug Handler. Store is nil when Mongo is not
// configured; Serve then answers 503 instead of returning a misleading
// empty page.
func NewHandler(store *submissionstore.Store, pageSize int, logger *zap.Logger) *Handler {
	return &Handler{Store: store, PageSize: pageSize, Log: logger}
}

// debugResponse is the JSON structure for the debug listing.
type debugResponse struct {
	Count int64               `json:"count"`
	Docs  []models.Submission `json:"docs"`
}

// Serve handles GET /debug: at most PageSize recent submissions, newest
// first, without the raw _id field.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		apierror.Unavailable(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	docs, err := h.Store.Recent(ctx, h.PageSize)
	if err != nil {
		h.Log.Error("debug: listing recent submissions failed", zap.Error(err))
		apierror.Unavailable(w)
		return
	}

	count, err := h.Store.Count(ctx)
	if err != nil {
		h.Log.Error("debug: counting submissions failed", zap.Error(err))
		apierror.Unavailable(w)
		return
	}

	apierror.JSON(w, http.StatusOK, debugResponse{Count: count, Docs: docs})
}
