// Package contact builds the delegated-action links offered next to a
// phone number: a dialer URI and a WhatsApp deep link.
package contact

import (
	"strings"

	pstrings "bloodnet/pkg/platform/strings"
)

const (
	countryPrefix  = "+91"
	countryDigits  = "91"
	whatsAppPrefix = "https://wa.me/"
)

// TelURI returns "tel:<number>" with the number as stored (trimmed).
func TelURI(number string) string {
	return "tel:" + strings.TrimSpace(number)
}

// WhatsAppNumber converts a stored number into the digits-only form wa.me
// expects: a leading "+91" becomes "91", then every non-digit is dropped.
//
//	WhatsAppNumber("+91 9876543210") == "919876543210"
func WhatsAppNumber(number string) string {
	n := strings.TrimSpace(number)
	if rest, ok := strings.CutPrefix(n, countryPrefix); ok {
		n = countryDigits + rest
	}
	return pstrings.DigitsOnly(n)
}

// WhatsAppLink returns the messaging deep link for number, or "" when the
// number has no digits at all.
func WhatsAppLink(number string) string {
	digits := WhatsAppNumber(number)
	if digits == "" {
		return ""
	}
	return whatsAppPrefix + digits
}
