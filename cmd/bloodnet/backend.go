package main

import (
	"context"
	"time"

	"bloodnet/internal/directory/engine"
	"bloodnet/internal/directory/export"
	"bloodnet/internal/directory/handler"
	"bloodnet/internal/directory/models"
	"bloodnet/internal/directory/service"
	"bloodnet/pkg/domain"
)

// backend is the query surface shared by the local service and the remote
// client.
type backend interface {
	Districts(ctx context.Context, search string) ([]domain.District, error)
	FindDonors(ctx context.Context, district, bloodGroup string) ([]models.DonorView, error)
	SearchDonors(ctx context.Context, q engine.DonorQuery) ([]models.DonorView, error)
	Recency(ctx context.Context, lastDonated string) (handler.RecencyResponse, error)
	UrgentRequests(ctx context.Context) ([]models.RequestView, error)
	Requests(ctx context.Context, q engine.RequestQuery) ([]models.RequestView, error)
	BloodBanks(ctx context.Context, district string) ([]models.BloodBank, error)
	Camps(ctx context.Context) ([]models.DonationCamp, error)
	Helplines(ctx context.Context) ([]models.HelplineView, error)
	ExportDonors(ctx context.Context, district, bloodGroup string) ([]byte, error)
}

type localBackend struct {
	service *service.Service
	clock   func() time.Time
}

func (b *localBackend) Districts(ctx context.Context, search string) ([]domain.District, error) {
	return b.service.Districts(ctx, search), nil
}

func (b *localBackend) FindDonors(ctx context.Context, district, bloodGroup string) ([]models.DonorView, error) {
	return b.service.FindDonors(ctx, district, bloodGroup, b.clock()), nil
}

func (b *localBackend) SearchDonors(ctx context.Context, q engine.DonorQuery) ([]models.DonorView, error) {
	return b.service.SearchDonors(ctx, q, b.clock()), nil
}

func (b *localBackend) Recency(ctx context.Context, lastDonated string) (handler.RecencyResponse, error) {
	now := b.clock()
	recent, err := b.service.IsRecentDonation(ctx, lastDonated, now)
	if err != nil {
		return handler.RecencyResponse{}, err
	}
	return handler.RecencyResponse{
		LastDonated:     lastDonated,
		RecentlyDonated: recent,
		Threshold:       now.AddDate(0, -engine.RecentDonationMonths, 0).Format(models.DateLayout),
	}, nil
}

func (b *localBackend) UrgentRequests(ctx context.Context) ([]models.RequestView, error) {
	return b.service.UrgentRequests(ctx, b.clock()), nil
}

func (b *localBackend) Requests(ctx context.Context, q engine.RequestQuery) ([]models.RequestView, error) {
	return b.service.Requests(ctx, q, b.clock()), nil
}

func (b *localBackend) BloodBanks(ctx context.Context, district string) ([]models.BloodBank, error) {
	return b.service.BloodBanks(ctx, district), nil
}

func (b *localBackend) Camps(ctx context.Context) ([]models.DonationCamp, error) {
	return b.service.Camps(ctx), nil
}

func (b *localBackend) Helplines(ctx context.Context) ([]models.HelplineView, error) {
	return b.service.Helplines(ctx), nil
}

func (b *localBackend) ExportDonors(ctx context.Context, district, bloodGroup string) ([]byte, error) {
	return export.DonorWorkbook(b.service.FindDonors(ctx, district, bloodGroup, b.clock()))
}
