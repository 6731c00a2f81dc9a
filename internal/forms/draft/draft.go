// Package draft models the three public forms as explicit values.
//
// A draft is never mutated in place: Apply returns a new draft with one field
// changed, and Submit either acknowledges the draft (handing back a reset
// draft) or lists what is wrong with it. Nothing is persisted.
package draft

import (
	"fmt"
	"time"

	dErrors "bloodnet/pkg/domain-errors"
)

// Kind names a form.
type Kind string

const (
	KindDonorRegistration Kind = "donor-registration"
	KindEmergencyRequest  Kind = "emergency-request"
	KindContactMessage    Kind = "contact"
)

// Kinds lists every form in display order.
func Kinds() []Kind {
	return []Kind{KindDonorRegistration, KindEmergencyRequest, KindContactMessage}
}

// ParseKind validates a form name taken from a URL or flag.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindDonorRegistration, KindEmergencyRequest, KindContactMessage:
		return k, nil
	default:
		return "", dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("unknown form %q", s))
	}
}

// Change sets one field of a draft. Field uses the JSON field name.
type Change struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// FieldError reports one invalid field of a submitted draft.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Form is implemented by every draft type D.
type Form[D any] interface {
	Kind() Kind
	// With returns a copy of the draft with c applied.
	With(c Change) (D, error)
	// Validate lists every invalid field; nil means the draft may be submitted.
	Validate(now time.Time) []FieldError
	// Reset returns the empty draft shown after a successful submission.
	Reset() D
}

// Empty returns the initial draft of a form type.
func Empty[D Form[D]]() D {
	var zero D
	return zero.Reset()
}

// Apply is the pure change transition. The input draft is left untouched.
func Apply[D Form[D]](d D, c Change) (D, error) {
	return d.With(c)
}

// Acknowledgment is the visible result of an accepted submission.
type Acknowledgment[D any] struct {
	Reference   string `json:"reference"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Draft       D      `json:"draft"`
}

// Rejection is the visible result of a refused submission.
type Rejection struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Errors      []FieldError `json:"errors"`
}

// Outcome holds exactly one of Acknowledgment or Rejection.
type Outcome[D any] struct {
	Acknowledgment *Acknowledgment[D]
	Rejection      *Rejection
}

// Accepted reports whether the submission was acknowledged.
func (o Outcome[D]) Accepted() bool {
	return o.Acknowledgment != nil
}

type message struct {
	title       string
	description string
}

var acknowledgments = map[Kind]message{
	KindDonorRegistration: {
		title:       "Registration Successful!",
		description: "Welcome to Tamil Nadu Blood Foundation. Your registration is being processed.",
	},
	KindEmergencyRequest: {
		title:       "Emergency Request Posted!",
		description: "Your blood requirement has been posted. Donors will be contacted immediately.",
	},
	KindContactMessage: {
		title:       "Message Sent",
		description: "Thank you for contacting us. We'll get back to you soon.",
	},
}

var (
	agreementRequired = message{
		title:       "Agreement Required",
		description: "Please agree to the terms and conditions to proceed.",
	}
	incomplete = message{
		title:       "Incomplete Form",
		description: "Please correct the highlighted fields and submit again.",
	}
)

// Submit is the submit transition. reference identifies the acknowledgment
// and is supplied by the caller so the transition stays deterministic.
func Submit[D Form[D]](d D, now time.Time, reference string) Outcome[D] {
	if errs := d.Validate(now); len(errs) > 0 {
		m := incomplete
		if len(errs) == 1 && errs[0].Field == fieldAgreement {
			m = agreementRequired
		}
		return Outcome[D]{Rejection: &Rejection{
			Title:       m.title,
			Description: m.description,
			Errors:      errs,
		}}
	}

	m := acknowledgments[d.Kind()]
	return Outcome[D]{Acknowledgment: &Acknowledgment[D]{
		Reference:   reference,
		Title:       m.title,
		Description: m.description,
		Draft:       d.Reset(),
	}}
}

func unknownField(kind Kind, field string) error {
	return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%s has no field %q", kind, field))
}
