package handler

import (
	"net/url"
	"strings"

	"bloodnet/internal/directory/engine"
	"bloodnet/pkg/domain"
)

// ParseDonorQuery reads the optional donor search criteria from a query string.
// Present enumerations must be valid; absent ones match everything.
func ParseDonorQuery(values url.Values) (engine.DonorQuery, error) {
	q := engine.DonorQuery{
		District: strings.TrimSpace(values.Get("district")),
		Text:     strings.TrimSpace(values.Get("q")),
	}

	group, err := parseBloodGroupParam(values.Get("blood_group"))
	if err != nil {
		return engine.DonorQuery{}, err
	}
	q.BloodGroup = group

	if status := strings.TrimSpace(values.Get("status")); status != "" {
		availability, err := domain.ParseAvailability(status)
		if err != nil {
			return engine.DonorQuery{}, err
		}
		q.Availability = availability
	}
	return q, nil
}

// ParseRequestQuery reads the optional emergency request criteria.
func ParseRequestQuery(values url.Values) (engine.RequestQuery, error) {
	q := engine.RequestQuery{
		District: strings.TrimSpace(values.Get("district")),
	}

	group, err := parseBloodGroupParam(values.Get("blood_group"))
	if err != nil {
		return engine.RequestQuery{}, err
	}
	q.BloodGroup = group

	if urgency := strings.TrimSpace(values.Get("urgency")); urgency != "" {
		u, err := domain.ParseUrgency(urgency)
		if err != nil {
			return engine.RequestQuery{}, err
		}
		q.Urgency = u
	}
	return q, nil
}

// parseBloodGroupParam validates an optional blood group. An unescaped '+'
// in a query string arrives as a space, so "O " is read as "O+".
func parseBloodGroupParam(raw string) (string, error) {
	raw = strings.TrimLeft(raw, " ")
	if raw == "" {
		return "", nil
	}
	if strings.HasSuffix(raw, " ") {
		raw = strings.TrimRight(raw, " ")
		if !strings.HasSuffix(raw, "+") && !strings.HasSuffix(raw, "-") {
			raw += "+"
		}
	}
	group, err := domain.ParseBloodGroup(raw)
	if err != nil {
		return "", err
	}
	return string(group), nil
}
