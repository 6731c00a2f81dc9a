package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloodnet/internal/i18n"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	tr := i18n.NewFromTables(map[i18n.Locale]map[i18n.Key]string{
		i18n.English: {i18n.KeyNavHome: "Home", i18n.KeyNavJoin: "Join as Donor"},
		i18n.Tamil:   {i18n.KeyNavHome: "முகப்பு"},
	})
	h := New(tr, i18n.English, slog.New(slog.NewTextHandler(io.Discard, nil)))
	r := chi.NewRouter()
	h.Register(r)
	return r
}

func get(t *testing.T, router http.Handler, target string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleTranslate(t *testing.T) {
	router := newRouter(t)

	t.Run("translated", func(t *testing.T) {
		rec := get(t, router, "/i18n/ta/nav.home", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"locale":"ta","key":"nav.home","text":"முகப்பு","fallback":false}`, rec.Body.String())
	})

	t.Run("missing falls back to key", func(t *testing.T) {
		rec := get(t, router, "/i18n/ta/nav.join", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"locale":"ta","key":"nav.join","text":"nav.join","fallback":true}`, rec.Body.String())
	})

	t.Run("unsupported locale", func(t *testing.T) {
		rec := get(t, router, "/i18n/fr/nav.home", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleTable(t *testing.T) {
	rec := get(t, newRouter(t), "/i18n/ta", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp TableResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, i18n.Tamil, resp.Locale)
	assert.Equal(t, "முகப்பு", resp.Strings[i18n.KeyNavHome])
	assert.Equal(t, "nav.join", resp.Strings[i18n.KeyNavJoin])
	assert.Contains(t, resp.Missing, i18n.KeyNavJoin)
	assert.NotContains(t, resp.Missing, i18n.KeyNavHome)
}

func TestHandleResolve(t *testing.T) {
	rec := get(t, newRouter(t), "/i18n", map[string]string{"Accept-Language": "ta-IN"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"locale":"ta","toggle":"en","locales":["en","ta"]}`, rec.Body.String())

	rec = get(t, newRouter(t), "/i18n?lang=en", map[string]string{"Accept-Language": "ta-IN"})
	assert.JSONEq(t, `{"locale":"en","toggle":"ta","locales":["en","ta"]}`, rec.Body.String())
}
