package main

import (
	"context"
	"log/slog"

	"bloodnet/internal/directory/engine"
	"bloodnet/internal/directory/handler"
	"bloodnet/internal/directory/models"
	"bloodnet/pkg/client"
	"bloodnet/pkg/domain"
	"bloodnet/pkg/platform/circuit"
)

// failoverBackend asks the remote server first and answers from the local
// catalog while the server is unavailable. Rejected requests are returned
// as-is; only unavailability trips the breaker.
type failoverBackend struct {
	primary  backend
	fallback backend
	breaker  *circuit.Breaker
	logger   *slog.Logger
}

func newFailoverBackend(primary, fallback backend, logger *slog.Logger) *failoverBackend {
	return &failoverBackend{
		primary:  primary,
		fallback: fallback,
		breaker:  circuit.New("remote-directory", circuit.WithFailureThreshold(1), circuit.WithSuccessThreshold(1)),
		logger:   logger,
	}
}

func failover[T any](f *failoverBackend, op string, call func(backend) (T, error)) (T, error) {
	v, err := call(f.primary)
	if err == nil {
		if _, change := f.breaker.RecordSuccess(); change.Closed {
			f.logger.Info("remote server recovered", "breaker", f.breaker.Name())
		}
		return v, nil
	}
	if !client.IsUnavailable(err) {
		return v, err
	}

	useFallback, change := f.breaker.RecordFailure()
	if change.Opened {
		f.logger.Warn("remote server unavailable, answering from local catalog",
			"breaker", f.breaker.Name(),
			"operation", op,
			"error", err,
		)
	}
	if !useFallback {
		return v, err
	}
	return call(f.fallback)
}

func (f *failoverBackend) Districts(ctx context.Context, search string) ([]domain.District, error) {
	return failover(f, "districts", func(b backend) ([]domain.District, error) { return b.Districts(ctx, search) })
}

func (f *failoverBackend) FindDonors(ctx context.Context, district, bloodGroup string) ([]models.DonorView, error) {
	return failover(f, "find_donors", func(b backend) ([]models.DonorView, error) {
		return b.FindDonors(ctx, district, bloodGroup)
	})
}

func (f *failoverBackend) SearchDonors(ctx context.Context, q engine.DonorQuery) ([]models.DonorView, error) {
	return failover(f, "search_donors", func(b backend) ([]models.DonorView, error) { return b.SearchDonors(ctx, q) })
}

func (f *failoverBackend) Recency(ctx context.Context, lastDonated string) (handler.RecencyResponse, error) {
	return failover(f, "recency", func(b backend) (handler.RecencyResponse, error) { return b.Recency(ctx, lastDonated) })
}

func (f *failoverBackend) UrgentRequests(ctx context.Context) ([]models.RequestView, error) {
	return failover(f, "urgent_requests", func(b backend) ([]models.RequestView, error) { return b.UrgentRequests(ctx) })
}

func (f *failoverBackend) Requests(ctx context.Context, q engine.RequestQuery) ([]models.RequestView, error) {
	return failover(f, "requests", func(b backend) ([]models.RequestView, error) { return b.Requests(ctx, q) })
}

func (f *failoverBackend) BloodBanks(ctx context.Context, district string) ([]models.BloodBank, error) {
	return failover(f, "blood_banks", func(b backend) ([]models.BloodBank, error) { return b.BloodBanks(ctx, district) })
}

func (f *failoverBackend) Camps(ctx context.Context) ([]models.DonationCamp, error) {
	return failover(f, "camps", func(b backend) ([]models.DonationCamp, error) { return b.Camps(ctx) })
}

func (f *failoverBackend) Helplines(ctx context.Context) ([]models.HelplineView, error) {
	return failover(f, "helplines", func(b backend) ([]models.HelplineView, error) { return b.Helplines(ctx) })
}

func (f *failoverBackend) ExportDonors(ctx context.Context, district, bloodGroup string) ([]byte, error) {
	return failover(f, "export_donors", func(b backend) ([]byte, error) { return b.ExportDonors(ctx, district, bloodGroup) })
}
