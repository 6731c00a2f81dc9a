package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "bloodnet/pkg/domain-errors"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsRecentDonation(t *testing.T) {
	tests := []struct {
		name        string
		lastDonated string
		now         time.Time
		expected    bool
	}{
		{"within three months", "2024-01-20", date(2024, 2, 1), true},
		{"outside three months", "2024-01-20", date(2024, 6, 1), false},
		{"exactly three months ago is not recent", "2024-03-01", date(2024, 6, 1), false},
		{"one day inside the window", "2024-03-02", date(2024, 6, 1), true},
		{"an hour earlier lands on May 31 and overflows", "2024-03-01", date(2024, 6, 1).Add(-time.Hour), false},
		// May 31 - 3 months overflows February and lands on March 2 in a leap year.
		{"month overflow in a leap year", "2024-03-01", date(2024, 5, 31), false},
		{"day after overflow boundary", "2024-03-03", date(2024, 5, 31), true},
		{"overflow in a common year lands on March 3", "2023-03-03", date(2023, 5, 31), false},
		{"future dates count as recent", "2030-01-01", date(2024, 1, 1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsRecentDonation(tt.lastDonated, tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestIsRecentDonationDiffersFromNinetyDays(t *testing.T) {
	// 92 days separate 2024-03-01 and 2024-06-01; a fixed 90-day window would
	// call 2024-03-02 stale, calendar months call it recent.
	now := date(2024, 6, 1)
	got, err := IsRecentDonation("2024-03-02", now)
	require.NoError(t, err)
	assert.True(t, got)
	assert.False(t, date(2024, 3, 2).After(now.AddDate(0, 0, -90)))
}

func TestIsRecentDonationInvalidDate(t *testing.T) {
	for _, bad := range []string{"", "15/12/2023", "2023-02-30", "not a date"} {
		t.Run(bad, func(t *testing.T) {
			got, err := IsRecentDonation(bad, date(2024, 2, 1))
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidDate))
			assert.False(t, got)
		})
	}
}

func TestTimeAgo(t *testing.T) {
	posted := "2024-01-15"
	base := date(2024, 1, 15)

	tests := []struct {
		name     string
		now      time.Time
		expected string
	}{
		{"same instant", base, "Just now"},
		{"under an hour", base.Add(59 * time.Minute), "Just now"},
		{"whole hours floor", base.Add(5*time.Hour + 59*time.Minute), "5h ago"},
		{"just under a day", base.Add(23 * time.Hour), "23h ago"},
		{"one day", base.Add(24 * time.Hour), "1d ago"},
		{"days floor", base.Add(71 * time.Hour), "2d ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TimeAgo(posted, tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := TimeAgo("garbage", base)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidDate))
}
