package domain

import dErrors "bloodnet/pkg/domain-errors"

// Availability is a donor's current willingness to be contacted.
type Availability string

const (
	Available    Availability = "Available"
	NotAvailable Availability = "Not Available"
)

// ParseAvailability accepts the two status labels exactly as displayed.
func ParseAvailability(s string) (Availability, error) {
	switch a := Availability(s); a {
	case Available, NotAvailable:
		return a, nil
	case "":
		return "", dErrors.New(dErrors.CodeInvalidInput, "status cannot be empty")
	default:
		return "", dErrors.New(dErrors.CodeInvalidInput, "status must be Available or Not Available")
	}
}

func (a Availability) IsValid() bool {
	return a == Available || a == NotAvailable
}

// Urgency is the display tier of an emergency request.
// It drives the urgent-requests filter only; nothing is scheduled by it.
type Urgency string

const (
	UrgencyHigh   Urgency = "High"
	UrgencyMedium Urgency = "Medium"
	UrgencyLow    Urgency = "Low"
)

// responseWindows mirrors the labels offered on the request form.
var responseWindows = map[Urgency]string{
	UrgencyHigh:   "Immediate (within 2 hours)",
	UrgencyMedium: "Urgent (within 6 hours)",
	UrgencyLow:    "Planned (within 24 hours)",
}

// ParseUrgency validates an urgency tier.
func ParseUrgency(s string) (Urgency, error) {
	u := Urgency(s)
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "urgency cannot be empty")
	}
	if !u.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "urgency must be High, Medium or Low")
	}
	return u, nil
}

func (u Urgency) IsValid() bool {
	_, ok := responseWindows[u]
	return ok
}

// ResponseWindow returns the human label for the tier, or "" for unknown tiers.
func (u Urgency) ResponseWindow() string {
	return responseWindows[u]
}
