package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/just-nibble/snapvcs/pkg/response"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		response.ErrorResponse(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	response.SuccessResponse(w, http.StatusOK, map[string]string{"database": "ok"})
}
