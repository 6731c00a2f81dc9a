package catalog

import (
	"fmt"
	"slices"

	"bloodnet/internal/directory/models"
	"bloodnet/pkg/domain"
)

// Issue describes a seed record that references a value outside the
// enumerations. Such records are kept; they simply never match a query.
type Issue struct {
	Kind    string `json:"kind"`
	ID      string `json:"id"`
	Field   string `json:"field"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s %s: %s %q: %s", i.Kind, i.ID, i.Field, i.Value, i.Message)
}

// Lint reports malformed references in the catalog. It never mutates the
// catalog; the caller decides whether to log or fail.
func Lint(c *models.Catalog) []Issue {
	districts := c.Districts()
	groups := c.BloodGroups()
	knownDistrict := func(s string) bool { return slices.Contains(districts, domain.District(s)) }
	knownGroup := func(s string) bool { return slices.Contains(groups, domain.BloodGroup(s)) }

	var issues []Issue
	add := func(kind, id, field, value, msg string) {
		issues = append(issues, Issue{Kind: kind, ID: id, Field: field, Value: value, Message: msg})
	}

	for _, d := range c.Donors() {
		if !knownDistrict(d.District) {
			add("donor", d.ID, "district", d.District, "unknown district")
		}
		if !knownGroup(d.BloodGroup) {
			add("donor", d.ID, "blood_group", d.BloodGroup, "unknown blood group")
		}
		if !d.Status.IsValid() {
			add("donor", d.ID, "status", string(d.Status), "unknown status")
		}
		if _, err := models.ParseDate(d.LastDonated); err != nil {
			add("donor", d.ID, "last_donated", d.LastDonated, "invalid date")
		}
	}
	for _, r := range c.Requests() {
		if !knownDistrict(r.District) {
			add("emergency_request", r.ID, "district", r.District, "unknown district")
		}
		if !knownGroup(r.BloodGroup) {
			add("emergency_request", r.ID, "blood_group", r.BloodGroup, "unknown blood group")
		}
		if !r.Urgency.IsValid() {
			add("emergency_request", r.ID, "urgency", string(r.Urgency), "unknown urgency")
		}
		if _, err := models.ParseDate(r.RequestDate); err != nil {
			add("emergency_request", r.ID, "request_date", r.RequestDate, "invalid date")
		}
	}
	for _, b := range c.BloodBanks() {
		if !knownDistrict(b.District) {
			add("blood_bank", b.ID, "district", b.District, "unknown district")
		}
	}
	for _, cp := range c.Camps() {
		if _, err := models.ParseDate(cp.Date); err != nil {
			add("donation_camp", cp.ID, "date", cp.Date, "invalid date")
		}
	}
	return issues
}
