// Package i18n translates interface strings for the two supported locales.
//
// The current locale is always passed in by the caller; nothing here keeps a
// "current language". A missing translation renders as the key itself.
package i18n

import (
	"embed"
	"fmt"
	"maps"
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	dErrors "bloodnet/pkg/domain-errors"
)

// Locale is a supported interface language.
type Locale string

const (
	English Locale = "en"
	Tamil   Locale = "ta"
)

// DefaultLocale is used when a request expresses no usable preference.
const DefaultLocale = English

// Locales returns the supported locales, default first.
func Locales() []Locale {
	return []Locale{English, Tamil}
}

// ParseLocale validates a locale code such as "en" or "ta".
func ParseLocale(s string) (Locale, error) {
	switch l := Locale(strings.ToLower(strings.TrimSpace(s))); l {
	case English, Tamil:
		return l, nil
	default:
		return "", dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("unsupported locale %q", s))
	}
}

// Toggle switches between English and Tamil.
func (l Locale) Toggle() Locale {
	if l == Tamil {
		return English
	}
	return Tamil
}

//go:embed locales/*.yaml
var localeFiles embed.FS

// Translator holds the string tables. It is read-only after construction.
type Translator struct {
	tables map[Locale]map[Key]string
}

// New loads the embedded string tables.
func New() (*Translator, error) {
	t := &Translator{tables: make(map[Locale]map[Key]string, len(Locales()))}
	for _, l := range Locales() {
		data, err := localeFiles.ReadFile("locales/" + string(l) + ".yaml")
		if err != nil {
			return nil, fmt.Errorf("read %s strings: %w", l, err)
		}
		table, err := parseTable(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s strings: %w", l, err)
		}
		t.tables[l] = table
	}
	return t, nil
}

// NewFromTables builds a Translator from in-memory tables.
func NewFromTables(tables map[Locale]map[Key]string) *Translator {
	t := &Translator{tables: make(map[Locale]map[Key]string, len(tables))}
	for l, table := range tables {
		t.tables[l] = maps.Clone(table)
	}
	return t
}

func parseTable(data []byte) (map[Key]string, error) {
	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	table := make(map[Key]string, len(raw))
	for k, v := range raw {
		key := Key(k)
		if !key.IsKnown() {
			return nil, fmt.Errorf("unknown key %q", k)
		}
		table[key] = v
	}
	return table, nil
}

// T returns the string for key in locale. A missing or empty entry yields the
// key itself; there is no fallback to another locale.
func (t *Translator) T(locale Locale, key Key) string {
	if s := t.tables[locale][key]; s != "" {
		return s
	}
	return string(key)
}

// Table returns every declared key resolved for locale, fallbacks included.
func (t *Translator) Table(locale Locale) map[Key]string {
	out := make(map[Key]string, len(keys))
	for _, k := range keys {
		out[k] = t.T(locale, k)
	}
	return out
}

// Missing lists the declared keys locale has no string for, in key order.
func (t *Translator) Missing(locale Locale) []Key {
	var out []Key
	for _, k := range keys {
		if t.tables[locale][k] == "" {
			out = append(out, k)
		}
	}
	return out
}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Tamil})

// Resolve picks the locale for a request: a valid ?lang= wins, then the best
// Accept-Language match, then fallback.
func Resolve(r *http.Request, fallback Locale) Locale {
	if l, err := ParseLocale(r.URL.Query().Get("lang")); err == nil {
		return l
	}
	if header := r.Header.Get("Accept-Language"); header != "" {
		if l, ok := matchAcceptLanguage(header); ok {
			return l
		}
	}
	return fallback
}

func matchAcceptLanguage(header string) (Locale, bool) {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return "", false
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return "", false
	}
	return Locales()[index], true
}
