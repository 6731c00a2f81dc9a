package handler

import (
	"strings"

	"bloodnet/internal/forms/draft"
	dErrors "bloodnet/pkg/domain-errors"
)

// ApplyRequest is the HTTP request body for POST /forms/{form}/apply.
// A missing draft starts from the form's empty draft.
type ApplyRequest[D draft.Form[D]] struct {
	Draft  *D           `json:"draft"`
	Change draft.Change `json:"change"`
}

// Validate implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *ApplyRequest[D]) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.Change.Field = strings.TrimSpace(r.Change.Field)
	if r.Change.Field == "" {
		return dErrors.New(dErrors.CodeValidation, "change.field is required")
	}
	if len(r.Change.Value) > maxValueLength {
		return dErrors.New(dErrors.CodeValidation, "change.value is too long")
	}
	if r.Draft == nil {
		empty := draft.Empty[D]()
		r.Draft = &empty
	}
	return nil
}

// SubmitRequest is the HTTP request body for POST /forms/{form}/submit.
type SubmitRequest[D draft.Form[D]] struct {
	Draft *D `json:"draft"`
}

func (r *SubmitRequest[D]) Validate() error {
	if r == nil || r.Draft == nil {
		return dErrors.New(dErrors.CodeBadRequest, "draft is required")
	}
	return nil
}

const maxValueLength = 4096
