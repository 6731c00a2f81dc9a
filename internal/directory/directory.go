// Package directory serves the blood donor directory: districts, donors,
// emergency requests and facility listings over a read-only catalog.
package directory

import (
	"log/slog"

	"bloodnet/internal/directory/handler"
	"bloodnet/internal/directory/metrics"
	"bloodnet/internal/directory/models"
	"bloodnet/internal/directory/service"
)

// Service exposes directory queries.
type Service = service.Service

// Handler wires HTTP endpoints to the directory service.
type Handler = handler.Handler

// NewService constructs the directory service over catalog.
func NewService(catalog *models.Catalog, logger *slog.Logger, m *metrics.Metrics) (*Service, error) {
	return service.New(catalog,
		service.WithLogger(logger),
		service.WithMetrics(m),
	)
}

// NewHandler constructs an HTTP handler for the public directory routes.
func NewHandler(s *Service, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return handler.New(s, logger, m)
}
