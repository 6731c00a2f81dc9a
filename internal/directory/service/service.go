package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"bloodnet/internal/directory/contact"
	"bloodnet/internal/directory/engine"
	"bloodnet/internal/directory/metrics"
	"bloodnet/internal/directory/models"
	"bloodnet/pkg/domain"
	dErrors "bloodnet/pkg/domain-errors"
	"bloodnet/pkg/platform/sentinel"
)

const tracerName = "bloodnet/internal/directory"

// Service answers directory queries over an immutable catalog.
//
// It adds the presentation decorations the engine leaves out (recency flags,
// contact links, "posted" labels) and the ambient concerns (tracing, metrics,
// logging). It holds no mutable state and is safe for concurrent use.
type Service struct {
	catalog *models.Catalog
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// New constructs a Service.
func New(catalog *models.Catalog, opts ...Option) (*Service, error) {
	if catalog == nil {
		return nil, errors.New("catalog is required")
	}
	s := &Service{
		catalog: catalog,
		logger:  slog.New(slog.DiscardHandler),
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Districts returns the districts matching search (case-insensitive substring).
func (s *Service) Districts(ctx context.Context, search string) []domain.District {
	_, span := s.tracer.Start(ctx, "directory.Districts", trace.WithAttributes(attribute.String("search", search)))
	defer span.End()

	out := engine.FilterDistricts(s.catalog.Districts(), search)
	s.observe(span, "filter_districts", len(out))
	return out
}

// BloodGroups returns the blood group enumeration.
func (s *Service) BloodGroups(_ context.Context) []domain.BloodGroup {
	return s.catalog.BloodGroups()
}

// BloodGroupsForDistrict backs the blood-group selection view of a district.
// The district must be one the catalog knows.
func (s *Service) BloodGroupsForDistrict(ctx context.Context, district string) ([]domain.BloodGroup, error) {
	_, span := s.tracer.Start(ctx, "directory.BloodGroupsForDistrict", trace.WithAttributes(attribute.String("district", district)))
	defer span.End()

	for _, d := range s.catalog.Districts() {
		if string(d) == district {
			return s.catalog.BloodGroups(), nil
		}
	}
	return nil, dErrors.New(dErrors.CodeNotFound, "district not found")
}

// FindDonors lists the donors of one blood group in one district.
// An unknown district or group yields an empty list, not an error.
func (s *Service) FindDonors(ctx context.Context, district, bloodGroup string, now time.Time) []models.DonorView {
	ctx, span := s.tracer.Start(ctx, "directory.FindDonors", trace.WithAttributes(
		attribute.String("district", district),
		attribute.String("blood_group", bloodGroup),
	))
	defer span.End()

	donors := engine.FindDonors(s.catalog.Donors(), district, bloodGroup)
	s.observe(span, "find_donors", len(donors))
	return s.donorViews(ctx, donors, now)
}

// SearchDonors applies the optional-criteria donor search.
func (s *Service) SearchDonors(ctx context.Context, q engine.DonorQuery, now time.Time) []models.DonorView {
	ctx, span := s.tracer.Start(ctx, "directory.SearchDonors", trace.WithAttributes(
		attribute.String("district", q.District),
		attribute.String("blood_group", q.BloodGroup),
		attribute.String("status", string(q.Availability)),
	))
	defer span.End()

	donors := engine.SearchDonors(s.catalog.Donors(), q)
	s.observe(span, "search_donors", len(donors))
	return s.donorViews(ctx, donors, now)
}

// Donor returns a single donor by id.
func (s *Service) Donor(ctx context.Context, id string, now time.Time) (*models.DonorView, error) {
	ctx, span := s.tracer.Start(ctx, "directory.Donor", trace.WithAttributes(attribute.String("donor_id", id)))
	defer span.End()

	d, err := s.catalog.DonorByID(id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "donor not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load donor")
	}
	view := s.donorViews(ctx, []models.Donor{d}, now)[0]
	return &view, nil
}

// IsRecentDonation exposes the recency rule for a caller-supplied date.
// Errors: CodeInvalidDate for malformed dates.
func (s *Service) IsRecentDonation(ctx context.Context, lastDonated string, now time.Time) (bool, error) {
	_, span := s.tracer.Start(ctx, "directory.IsRecentDonation")
	defer span.End()

	recent, err := engine.IsRecentDonation(lastDonated, now)
	if err != nil {
		span.RecordError(err)
		return false, err
	}
	return recent, nil
}

// UrgentRequests lists the High-urgency emergency requests.
func (s *Service) UrgentRequests(ctx context.Context, now time.Time) []models.RequestView {
	ctx, span := s.tracer.Start(ctx, "directory.UrgentRequests")
	defer span.End()

	reqs := engine.FilterUrgentRequests(s.catalog.Requests())
	s.observe(span, "filter_urgent_requests", len(reqs))
	return s.requestViews(ctx, reqs, now)
}

// Requests lists emergency requests matching q.
func (s *Service) Requests(ctx context.Context, q engine.RequestQuery, now time.Time) []models.RequestView {
	ctx, span := s.tracer.Start(ctx, "directory.Requests", trace.WithAttributes(
		attribute.String("district", q.District),
		attribute.String("blood_group", q.BloodGroup),
		attribute.String("urgency", string(q.Urgency)),
	))
	defer span.End()

	reqs := engine.FilterRequests(s.catalog.Requests(), q)
	s.observe(span, "filter_requests", len(reqs))
	return s.requestViews(ctx, reqs, now)
}

// BloodBanks lists blood banks, optionally scoped to a district.
func (s *Service) BloodBanks(ctx context.Context, district string) []models.BloodBank {
	_, span := s.tracer.Start(ctx, "directory.BloodBanks", trace.WithAttributes(attribute.String("district", district)))
	defer span.End()

	banks := engine.FilterBloodBanks(s.catalog.BloodBanks(), district)
	s.observe(span, "filter_blood_banks", len(banks))
	return banks
}

func (s *Service) Camps(_ context.Context) []models.DonationCamp {
	return s.catalog.Camps()
}

// Helplines lists emergency numbers with their dial links.
func (s *Service) Helplines(_ context.Context) []models.HelplineView {
	lines := s.catalog.Helplines()
	out := make([]models.HelplineView, 0, len(lines))
	for _, h := range lines {
		out = append(out, models.HelplineView{Helpline: h, Call: contact.TelURI(h.Number)})
	}
	return out
}

// Summary returns the home page counters.
func (s *Service) Summary(_ context.Context) models.Summary {
	return engine.Summarize(s.catalog.Donors(), s.catalog.Districts(), s.catalog.Requests())
}

func (s *Service) observe(span trace.Span, operation string, results int) {
	span.SetAttributes(attribute.Int("results", results))
	s.metrics.ObserveQuery(operation, results)
}

// donorViews decorates donors for display. A malformed last-donated date is
// logged and counted; the donor is still listed, without the recency flag.
func (s *Service) donorViews(ctx context.Context, donors []models.Donor, now time.Time) []models.DonorView {
	out := make([]models.DonorView, 0, len(donors))
	for _, d := range donors {
		view := models.DonorView{Donor: d}
		recent, err := engine.IsRecentDonation(d.LastDonated, now)
		if err != nil {
			s.logger.WarnContext(ctx, "donor has invalid last_donated date",
				"donor_id", d.ID,
				"last_donated", d.LastDonated,
				"error", err,
			)
			s.metrics.IncrementInvalidDates()
		}
		view.RecentlyDonated = recent
		if d.IsAvailable() {
			view.Links = &models.ContactLinks{
				Call:     contact.TelURI(d.Phone),
				WhatsApp: contact.WhatsAppLink(d.Phone),
			}
		}
		out = append(out, view)
	}
	return out
}

func (s *Service) requestViews(ctx context.Context, reqs []models.EmergencyRequest, now time.Time) []models.RequestView {
	out := make([]models.RequestView, 0, len(reqs))
	for _, r := range reqs {
		posted, err := engine.TimeAgo(r.RequestDate, now)
		if err != nil {
			s.logger.WarnContext(ctx, "emergency request has invalid request_date",
				"emergency_request_id", r.ID,
				"request_date", r.RequestDate,
				"error", err,
			)
			s.metrics.IncrementInvalidDates()
		}
		out = append(out, models.RequestView{
			EmergencyRequest: r,
			ResponseWindow:   r.Urgency.ResponseWindow(),
			Posted:           posted,
			Links: models.ContactLinks{
				Call:     contact.TelURI(r.ContactNumber),
				WhatsApp: contact.WhatsAppLink(r.ContactNumber),
			},
		})
	}
	return out
}
