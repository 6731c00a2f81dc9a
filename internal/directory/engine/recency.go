package engine

import (
	"strconv"
	"time"

	"bloodnet/internal/directory/models"
)

// RecentDonationMonths is the look-back window for "recently donated".
const RecentDonationMonths = 3

// IsRecentDonation reports whether lastDonated is strictly after now minus
// three calendar months.
//
// The window uses calendar-month subtraction, not a day count: AddDate
// normalizes overflow the same way a calendar does, so May 31 minus three
// months is March 2 or 3 (February 31 rolled forward), not February 29/28.
//
// Errors: CodeInvalidDate when lastDonated does not parse.
func IsRecentDonation(lastDonated string, now time.Time) (bool, error) {
	donated, err := models.ParseDate(lastDonated)
	if err != nil {
		return false, err
	}
	threshold := now.AddDate(0, -RecentDonationMonths, 0)
	return donated.After(threshold), nil
}

// TimeAgo renders how long ago a request was posted: "Just now" under an
// hour, whole hours under a day, whole days after that.
//
// Errors: CodeInvalidDate when date does not parse.
func TimeAgo(date string, now time.Time) (string, error) {
	posted, err := models.ParseDate(date)
	if err != nil {
		return "", err
	}
	hours := int(now.Sub(posted) / time.Hour)
	switch {
	case hours < 1:
		return "Just now", nil
	case hours < 24:
		return strconv.Itoa(hours) + "h ago", nil
	default:
		return strconv.Itoa(hours/24) + "d ago", nil
	}
}
