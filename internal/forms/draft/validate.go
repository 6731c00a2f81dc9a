package draft

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"bloodnet/internal/directory/models"
	"bloodnet/pkg/domain"
	"bloodnet/pkg/email"
	pstrings "bloodnet/pkg/platform/strings"
)

// minPhoneDigits accepts a bare 10-digit mobile number or one with a
// country code.
const minPhoneDigits = 10

// checker accumulates field errors in the order fields are checked.
type checker struct {
	errs []FieldError
}

func (c *checker) fail(field, msg string) {
	c.errs = append(c.errs, FieldError{Field: field, Message: msg})
}

// required reports whether value is non-blank, recording an error if not.
func (c *checker) required(field, value string) bool {
	if strings.TrimSpace(value) == "" {
		c.fail(field, field+" is required")
		return false
	}
	return true
}

func (c *checker) intRange(field, value string, lo, hi int) {
	if !c.required(field, value) {
		return
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		c.fail(field, field+" must be a whole number")
		return
	}
	if n < lo || n > hi {
		if hi == maxInt {
			c.fail(field, fmt.Sprintf("%s must be at least %d", field, lo))
		} else {
			c.fail(field, fmt.Sprintf("%s must be between %d and %d", field, lo, hi))
		}
	}
}

func (c *checker) bloodGroup(field, value string) {
	if !c.required(field, value) {
		return
	}
	if _, err := domain.ParseBloodGroup(strings.TrimSpace(value)); err != nil {
		c.fail(field, field+" must be one of "+strings.Join(bloodGroupCodes(), ", "))
	}
}

func (c *checker) district(field, value string) {
	if !c.required(field, value) {
		return
	}
	if _, err := domain.ParseDistrict(strings.TrimSpace(value)); err != nil {
		c.fail(field, field+" must be a Tamil Nadu district")
	}
}

func (c *checker) phone(field, value string, optional bool) {
	if optional && strings.TrimSpace(value) == "" {
		return
	}
	if !c.required(field, value) {
		return
	}
	if len(pstrings.DigitsOnly(value)) < minPhoneDigits {
		c.fail(field, fmt.Sprintf("%s must have at least %d digits", field, minPhoneDigits))
	}
}

func (c *checker) oneOf(field, value string, allowed ...string) {
	if !c.required(field, value) {
		return
	}
	for _, a := range allowed {
		if strings.TrimSpace(value) == a {
			return
		}
	}
	c.fail(field, field+" must be one of "+strings.Join(allowed, ", "))
}

// pastDate accepts an empty value or a date no later than now.
func (c *checker) pastDate(field, value string, now time.Time) {
	if strings.TrimSpace(value) == "" {
		return
	}
	d, err := models.ParseDate(value)
	if err != nil {
		c.fail(field, field+" must be a date in YYYY-MM-DD format")
		return
	}
	if d.After(now) {
		c.fail(field, field+" cannot be in the future")
	}
}

func (c *checker) email(field, value string) {
	if !c.required(field, value) {
		return
	}
	if !email.IsValid(email.Normalize(value)) {
		c.fail(field, field+" must be a valid email address")
	}
}

const maxInt = int(^uint(0) >> 1)

func bloodGroupCodes() []string {
	groups := domain.BloodGroups()
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = string(g)
	}
	return out
}
