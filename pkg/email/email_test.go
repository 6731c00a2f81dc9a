package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		addr string
		want bool
	}{
		{"priya@example.org", true},
		{"rajesh.kumar+donor@mail.tn.gov.in", true},
		{"", false},
		{"priya", false},
		{"priya@localhost", false},
		{"priya@example.", false},
		{"Priya <priya@example.org>", false},
		{"priya@@example.org", false},
	}
	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(tt.addr))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "Priya@example.org", Normalize("  Priya@EXAMPLE.org "))
	assert.Equal(t, "no-at-sign", Normalize("no-at-sign"))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Priya", DisplayName("priya.devi@example.org"))
	assert.Equal(t, "Murugan", DisplayName("murugan_s@example.org"))
	assert.Equal(t, "", DisplayName("@example.org"))
}
