package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"bloodnet/internal/directory/engine"
	"bloodnet/internal/directory/export"
	"bloodnet/internal/directory/metrics"
	"bloodnet/internal/directory/models"
	"bloodnet/pkg/domain"
	"bloodnet/pkg/platform/httputil"
	"bloodnet/pkg/requestcontext"
)

// Service defines the interface for directory operations.
type Service interface {
	Districts(ctx context.Context, search string) []domain.District
	BloodGroups(ctx context.Context) []domain.BloodGroup
	BloodGroupsForDistrict(ctx context.Context, district string) ([]domain.BloodGroup, error)
	FindDonors(ctx context.Context, district, bloodGroup string, now time.Time) []models.DonorView
	SearchDonors(ctx context.Context, q engine.DonorQuery, now time.Time) []models.DonorView
	Donor(ctx context.Context, id string, now time.Time) (*models.DonorView, error)
	IsRecentDonation(ctx context.Context, lastDonated string, now time.Time) (bool, error)
	UrgentRequests(ctx context.Context, now time.Time) []models.RequestView
	Requests(ctx context.Context, q engine.RequestQuery, now time.Time) []models.RequestView
	BloodBanks(ctx context.Context, district string) []models.BloodBank
	Camps(ctx context.Context) []models.DonationCamp
	Helplines(ctx context.Context) []models.HelplineView
	Summary(ctx context.Context) models.Summary
}

// Handler wires directory endpoints to the directory service.
type Handler struct {
	service Service
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New constructs a directory handler with its dependencies.
func New(service Service, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		metrics: metrics,
	}
}

// Register mounts directory endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/districts", h.HandleDistricts)
	r.Get("/districts/{district}/blood-groups", h.HandleDistrictBloodGroups)
	r.Get("/blood-groups", h.HandleBloodGroups)

	r.Get("/donors", h.HandleSearchDonors)
	r.Get("/donors/id/{id}", h.HandleDonor)
	r.Get("/donors/{district}/{bloodGroup}", h.HandleFindDonors)
	r.Get("/donors/{district}/{bloodGroup}/export", h.HandleExportDonors)
	r.Get("/recency", h.HandleRecency)

	r.Get("/requests", h.HandleRequests)
	r.Get("/requests/urgent", h.HandleUrgentRequests)

	r.Get("/facilities/blood-banks", h.HandleBloodBanks)
	r.Get("/facilities/camps", h.HandleCamps)
	r.Get("/facilities/helplines", h.HandleHelplines)

	r.Get("/summary", h.HandleSummary)
}

// HandleDistricts handles GET /districts?q=.
func (h *Handler) HandleDistricts(w http.ResponseWriter, r *http.Request) {
	districts := h.service.Districts(r.Context(), r.URL.Query().Get("q"))
	httputil.WriteJSON(w, http.StatusOK, DistrictListResponse{Count: len(districts), Districts: districts})
}

// HandleBloodGroups handles GET /blood-groups.
func (h *Handler) HandleBloodGroups(w http.ResponseWriter, r *http.Request) {
	groups := h.service.BloodGroups(r.Context())
	httputil.WriteJSON(w, http.StatusOK, BloodGroupListResponse{Count: len(groups), BloodGroups: groups})
}

// HandleDistrictBloodGroups handles GET /districts/{district}/blood-groups.
func (h *Handler) HandleDistrictBloodGroups(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	district := chi.URLParam(r, "district")

	groups, err := h.service.BloodGroupsForDistrict(ctx, district)
	if err != nil {
		h.logger.InfoContext(ctx, "blood group selection rejected",
			"request_id", requestcontext.RequestID(ctx),
			"district", district,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, BloodGroupListResponse{
		District:    district,
		Count:       len(groups),
		BloodGroups: groups,
	})
}

// HandleFindDonors handles GET /donors/{district}/{bloodGroup}.
// Unknown values produce an empty list.
func (h *Handler) HandleFindDonors(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	district, bloodGroup := chi.URLParam(r, "district"), chi.URLParam(r, "bloodGroup")

	donors := h.service.FindDonors(ctx, district, bloodGroup, requestcontext.Now(ctx))
	httputil.WriteJSON(w, http.StatusOK, FromDonors(donors))
}

// HandleExportDonors handles GET /donors/{district}/{bloodGroup}/export.
func (h *Handler) HandleExportDonors(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	district, bloodGroup := chi.URLParam(r, "district"), chi.URLParam(r, "bloodGroup")

	donors := h.service.FindDonors(ctx, district, bloodGroup, requestcontext.Now(ctx))
	data, err := export.DonorWorkbook(donors)
	if err != nil {
		h.logger.ErrorContext(ctx, "donor export failed",
			"request_id", requestID,
			"district", district,
			"blood_group", bloodGroup,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	h.metrics.IncrementExports()

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", ExportFilename(district, bloodGroup)))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.WarnContext(ctx, "failed to write donor export",
			"request_id", requestID,
			"error", err,
		)
	}
}

// HandleSearchDonors handles GET /donors?district=&blood_group=&status=&q=.
func (h *Handler) HandleSearchDonors(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q, err := ParseDonorQuery(r.URL.Query())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	donors := h.service.SearchDonors(ctx, q, requestcontext.Now(ctx))
	httputil.WriteJSON(w, http.StatusOK, FromDonors(donors))
}

// HandleDonor handles GET /donors/id/{id}.
func (h *Handler) HandleDonor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	donor, err := h.service.Donor(ctx, id, requestcontext.Now(ctx))
	if err != nil {
		h.logger.InfoContext(ctx, "donor lookup failed",
			"request_id", requestcontext.RequestID(ctx),
			"donor_id", id,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, donor)
}

// HandleRecency handles GET /recency?last_donated=YYYY-MM-DD.
func (h *Handler) HandleRecency(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lastDonated := r.URL.Query().Get("last_donated")
	now := requestcontext.Now(ctx)

	recent, err := h.service.IsRecentDonation(ctx, lastDonated, now)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, RecencyResponse{
		LastDonated:     lastDonated,
		RecentlyDonated: recent,
		Threshold:       now.AddDate(0, -engine.RecentDonationMonths, 0).Format(models.DateLayout),
	})
}

// HandleRequests handles GET /requests?district=&blood_group=&urgency=.
func (h *Handler) HandleRequests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q, err := ParseRequestQuery(r.URL.Query())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	reqs := h.service.Requests(ctx, q, requestcontext.Now(ctx))
	httputil.WriteJSON(w, http.StatusOK, RequestListResponse{Count: len(reqs), Requests: reqs})
}

// HandleUrgentRequests handles GET /requests/urgent.
func (h *Handler) HandleUrgentRequests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqs := h.service.UrgentRequests(ctx, requestcontext.Now(ctx))
	httputil.WriteJSON(w, http.StatusOK, RequestListResponse{Count: len(reqs), Requests: reqs})
}

// HandleBloodBanks handles GET /facilities/blood-banks?district=.
func (h *Handler) HandleBloodBanks(w http.ResponseWriter, r *http.Request) {
	banks := h.service.BloodBanks(r.Context(), r.URL.Query().Get("district"))
	httputil.WriteJSON(w, http.StatusOK, BloodBankListResponse{Count: len(banks), BloodBanks: banks})
}

func (h *Handler) HandleCamps(w http.ResponseWriter, r *http.Request) {
	camps := h.service.Camps(r.Context())
	httputil.WriteJSON(w, http.StatusOK, CampListResponse{Count: len(camps), Camps: camps})
}

func (h *Handler) HandleHelplines(w http.ResponseWriter, r *http.Request) {
	lines := h.service.Helplines(r.Context())
	httputil.WriteJSON(w, http.StatusOK, HelplineListResponse{Count: len(lines), Helplines: lines})
}

// HandleSummary handles GET /summary.
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.service.Summary(r.Context()))
}
