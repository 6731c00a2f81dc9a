package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"bloodnet/internal/i18n"
	"bloodnet/pkg/platform/httputil"
)

// Translator defines the interface for string lookups.
type Translator interface {
	T(locale i18n.Locale, key i18n.Key) string
	Table(locale i18n.Locale) map[i18n.Key]string
	Missing(locale i18n.Locale) []i18n.Key
}

// Handler serves the string tables to clients.
type Handler struct {
	translator    Translator
	defaultLocale i18n.Locale
	logger        *slog.Logger
}

func New(translator Translator, defaultLocale i18n.Locale, logger *slog.Logger) *Handler {
	return &Handler{
		translator:    translator,
		defaultLocale: defaultLocale,
		logger:        logger,
	}
}

// Register mounts translation endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/i18n", h.HandleResolve)
	r.Get("/i18n/{locale}", h.HandleTable)
	r.Get("/i18n/{locale}/{key}", h.HandleTranslate)
}

// LocaleResponse describes the locale chosen for a request.
type LocaleResponse struct {
	Locale  i18n.Locale   `json:"locale"`
	Toggle  i18n.Locale   `json:"toggle"`
	Locales []i18n.Locale `json:"locales"`
}

// TableResponse is the HTTP response for GET /i18n/{locale}.
type TableResponse struct {
	Locale  i18n.Locale         `json:"locale"`
	Strings map[i18n.Key]string `json:"strings"`
	Missing []i18n.Key          `json:"missing"`
}

// TranslateResponse is the HTTP response for GET /i18n/{locale}/{key}.
type TranslateResponse struct {
	Locale   i18n.Locale `json:"locale"`
	Key      i18n.Key    `json:"key"`
	Text     string      `json:"text"`
	Fallback bool        `json:"fallback"`
}

// HandleResolve handles GET /i18n, reporting the locale resolved from
// ?lang= and Accept-Language.
func (h *Handler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	locale := i18n.Resolve(r, h.defaultLocale)
	httputil.WriteJSON(w, http.StatusOK, LocaleResponse{
		Locale:  locale,
		Toggle:  locale.Toggle(),
		Locales: i18n.Locales(),
	})
}

// HandleTable handles GET /i18n/{locale}.
func (h *Handler) HandleTable(w http.ResponseWriter, r *http.Request) {
	locale, err := i18n.ParseLocale(chi.URLParam(r, "locale"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	missing := h.translator.Missing(locale)
	if missing == nil {
		missing = []i18n.Key{}
	}
	httputil.WriteJSON(w, http.StatusOK, TableResponse{
		Locale:  locale,
		Strings: h.translator.Table(locale),
		Missing: missing,
	})
}

// HandleTranslate handles GET /i18n/{locale}/{key}. Unknown keys are not an
// error: they render as themselves, like any missing translation.
func (h *Handler) HandleTranslate(w http.ResponseWriter, r *http.Request) {
	locale, err := i18n.ParseLocale(chi.URLParam(r, "locale"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	key := i18n.Key(chi.URLParam(r, "key"))
	text := h.translator.T(locale, key)
	if !key.IsKnown() {
		h.logger.DebugContext(r.Context(), "translation requested for undeclared key",
			"locale", locale,
			"key", key,
		)
	}
	httputil.WriteJSON(w, http.StatusOK, TranslateResponse{
		Locale:   locale,
		Key:      key,
		Text:     text,
		Fallback: text == string(key),
	})
}
