// Package forms serves the donor registration, emergency request and contact
// forms as stateless draft transitions.
package forms

import (
	"log/slog"

	"bloodnet/internal/forms/handler"
	"bloodnet/internal/forms/metrics"
)

// Handler wires HTTP endpoints to the draft transitions.
type Handler = handler.Handler

func NewHandler(logger *slog.Logger, m *metrics.Metrics) *Handler {
	return handler.New(logger, m)
}
