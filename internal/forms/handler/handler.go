package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"bloodnet/internal/forms/draft"
	"bloodnet/internal/forms/metrics"
	dErrors "bloodnet/pkg/domain-errors"
	"bloodnet/pkg/platform/httputil"
	"bloodnet/pkg/requestcontext"
)

// Handler serves the public forms. Drafts travel in request bodies; the
// server keeps no form state between requests.
type Handler struct {
	logger       *slog.Logger
	metrics      *metrics.Metrics
	newReference func() string
}

// New constructs a forms handler. Acknowledgment references are random UUIDs.
func New(logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		logger:       logger,
		metrics:      metrics,
		newReference: uuid.NewString,
	}
}

// Register mounts form endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/forms", h.HandleListForms)
	r.Get("/forms/{form}", h.HandleEmptyDraft)
	r.Post("/forms/{form}/apply", h.HandleApply)
	r.Post("/forms/{form}/submit", h.HandleSubmit)
}

// HandleListForms handles GET /forms.
func (h *Handler) HandleListForms(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string][]draft.Kind{"forms": draft.Kinds()})
}

// HandleEmptyDraft handles GET /forms/{form}.
func (h *Handler) HandleEmptyDraft(w http.ResponseWriter, r *http.Request) {
	kind, err := draft.ParseKind(chi.URLParam(r, "form"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	switch kind {
	case draft.KindDonorRegistration:
		writeEmpty[draft.DonorRegistration](w)
	case draft.KindEmergencyRequest:
		writeEmpty[draft.EmergencyRequestDraft](w)
	case draft.KindContactMessage:
		writeEmpty[draft.ContactMessage](w)
	}
}

// HandleApply handles POST /forms/{form}/apply.
func (h *Handler) HandleApply(w http.ResponseWriter, r *http.Request) {
	kind, err := draft.ParseKind(chi.URLParam(r, "form"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	switch kind {
	case draft.KindDonorRegistration:
		applyChange[draft.DonorRegistration](h, w, r)
	case draft.KindEmergencyRequest:
		applyChange[draft.EmergencyRequestDraft](h, w, r)
	case draft.KindContactMessage:
		applyChange[draft.ContactMessage](h, w, r)
	}
}

// HandleSubmit handles POST /forms/{form}/submit.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	kind, err := draft.ParseKind(chi.URLParam(r, "form"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	switch kind {
	case draft.KindDonorRegistration:
		submit[draft.DonorRegistration](h, w, r)
	case draft.KindEmergencyRequest:
		submit[draft.EmergencyRequestDraft](h, w, r)
	case draft.KindContactMessage:
		submit[draft.ContactMessage](h, w, r)
	}
}

func writeEmpty[D draft.Form[D]](w http.ResponseWriter) {
	empty := draft.Empty[D]()
	httputil.WriteJSON(w, http.StatusOK, DraftResponse[D]{Form: empty.Kind(), Draft: empty})
}

func applyChange[D draft.Form[D]](h *Handler, w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ApplyRequest[D]](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	next, err := draft.Apply(*req.Draft, req.Change)
	if err != nil {
		h.logger.InfoContext(ctx, "form change rejected",
			"request_id", requestID,
			"form", next.Kind(),
			"field", req.Change.Field,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	h.metrics.IncrementChanges(string(next.Kind()))

	httputil.WriteJSON(w, http.StatusOK, DraftResponse[D]{Form: next.Kind(), Draft: next})
}

func submit[D draft.Form[D]](h *Handler, w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[SubmitRequest[D]](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	d := *req.Draft
	kind := d.Kind()
	out := draft.Submit(d, requestcontext.Now(ctx), h.newReference())

	if !out.Accepted() {
		failed := fieldNames(out.Rejection.Errors)
		h.metrics.ObserveSubmission(string(kind), false, failed)
		h.logger.InfoContext(ctx, "form submission rejected",
			"request_id", requestID,
			"form", kind,
			"fields", failed,
		)
		httputil.WriteJSON(w, http.StatusUnprocessableEntity, RejectionResponse{
			Form:      kind,
			Error:     string(dErrors.CodeValidation),
			Rejection: *out.Rejection,
		})
		return
	}

	h.metrics.ObserveSubmission(string(kind), true, nil)
	h.logger.InfoContext(ctx, "form submission acknowledged",
		"request_id", requestID,
		"form", kind,
		"reference", out.Acknowledgment.Reference,
	)
	httputil.WriteJSON(w, http.StatusOK, AcknowledgmentResponse[D]{
		Form:           kind,
		Acknowledgment: *out.Acknowledgment,
	})
}
