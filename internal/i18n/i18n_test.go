package i18n

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "bloodnet/pkg/domain-errors"
)

func TestEmbeddedTables(t *testing.T) {
	tr, err := New()
	require.NoError(t, err)

	assert.Equal(t, "Tamil Nadu Blood Foundation", tr.T(English, KeySiteTitle))
	assert.Equal(t, "தமிழ்நாடு இரத்த வங்கி அறக்கட்டளை", tr.T(Tamil, KeySiteTitle))
	assert.Equal(t, "Emergency: 1962", tr.T(English, KeyEmergencyHotline))

	for _, l := range Locales() {
		assert.Empty(t, tr.Missing(l), "every declared key has a %s string", l)
	}
}

func TestFallbackReturnsKey(t *testing.T) {
	tr := NewFromTables(map[Locale]map[Key]string{
		English: {KeyNavHome: "Home", KeyNavAbout: "About Us"},
		Tamil:   {KeyNavHome: "முகப்பு", KeyNavAbout: ""},
	})

	t.Run("present", func(t *testing.T) {
		assert.Equal(t, "முகப்பு", tr.T(Tamil, KeyNavHome))
	})

	t.Run("missing in locale does not borrow from another locale", func(t *testing.T) {
		assert.Equal(t, "nav.contact", tr.T(Tamil, KeyNavContact))
	})

	t.Run("empty string counts as missing", func(t *testing.T) {
		assert.Equal(t, "nav.about", tr.T(Tamil, KeyNavAbout))
	})

	t.Run("undeclared key", func(t *testing.T) {
		assert.Equal(t, "footer.copyright", tr.T(English, Key("footer.copyright")))
	})

	t.Run("unknown locale", func(t *testing.T) {
		assert.Equal(t, "nav.home", tr.T(Locale("fr"), KeyNavHome))
	})

	t.Run("table resolves fallbacks", func(t *testing.T) {
		table := tr.Table(Tamil)
		assert.Len(t, table, len(Keys()))
		assert.Equal(t, "nav.about", table[KeyNavAbout])
		assert.Contains(t, tr.Missing(Tamil), KeyNavAbout)
	})
}

func TestParseTableRejectsUndeclaredKeys(t *testing.T) {
	_, err := parseTable([]byte(`nav.home: "Home"` + "\n" + `nav.blog: "Blog"`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nav.blog")
}

func TestLocales(t *testing.T) {
	assert.Equal(t, Tamil, English.Toggle())
	assert.Equal(t, English, Tamil.Toggle())

	l, err := ParseLocale(" TA ")
	require.NoError(t, err)
	assert.Equal(t, Tamil, l)

	_, err = ParseLocale("fr")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		acceptLanguage string
		want           Locale
	}{
		{"query wins", "/?lang=ta", "en-US", Tamil},
		{"invalid query falls through", "/?lang=fr", "ta-IN,ta;q=0.9", Tamil},
		{"header preference order", "/", "en-GB,ta;q=0.8", English},
		{"header weights", "/", "ta;q=0.9,en;q=0.5", Tamil},
		{"unsupported header uses fallback", "/", "fr-FR", Tamil},
		{"nothing uses fallback", "/", "", Tamil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.target, nil)
			if tt.acceptLanguage != "" {
				r.Header.Set("Accept-Language", tt.acceptLanguage)
			}
			assert.Equal(t, tt.want, Resolve(r, Tamil))
		})
	}
}
