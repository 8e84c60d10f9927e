package health

import (
	"context"
	"net/http"

	"github.com/dalemusser/hirehub/internal/app/system/apierror"
	"github.com/dalemusser/hirehub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Client     *mongo.Client
	Configured bool
	Log        *zap.Logger
}

// NewHandler constructs a health Handler. Client is nil when the Mongo
// settings are incomplete; Configured records that distinction so the
// response can say "not-configured" instead of "error".
func NewHandler(client *mongo.Client, configured bool, logger *zap.Logger) *Handler {
	return &Handler{
		Client:     client,
		Configured: configured,
		Log:        logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	OK    bool   `json:"ok"`
	Mongo string `json:"mongo"`
}

// Serve handles GET /health.
//
// Responses:
//
//	200 {"ok":true,  "mongo":"ok"}               store reachable
//	200 {"ok":true,  "mongo":"not-configured"}   no store settings
//	503 {"ok":false, "mongo":"error: <kind>"}    ping failed
//
// The ping is bounded by timeouts.Ping(), so an unreachable store degrades
// the answer rather than hanging the probe.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	if !h.Configured || h.Client == nil {
		apierror.JSON(w, http.StatusOK, healthResponse{OK: true, Mongo: "not-configured"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	if err := h.Client.Ping(ctx, readpref.Primary()); err != nil {
		h.Log.Error("health-check: mongo ping failed", zap.Error(err))
		apierror.JSON(w, http.StatusServiceUnavailable, healthResponse{OK: false, Mongo: "error: " + errKind(err)})
		return
	}

	apierror.JSON(w, http.StatusOK, healthResponse{OK: true, Mongo: "ok"})
}

// errKind reduces a ping failure to a coarse label so the response does not
// leak connection strings or host details.
func errKind(err error) string {
	if err == context.DeadlineExceeded {
		return "timeout"
	}
	if mongo.IsTimeout(err) {
		return "timeout"
	}
	if mongo.IsNetworkError(err) {
		return "network"
	}
	return "server"
}
