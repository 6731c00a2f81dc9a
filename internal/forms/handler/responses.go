package handler

import "bloodnet/internal/forms/draft"

// DraftResponse returns a draft after a change, or an empty draft.
type DraftResponse[D any] struct {
	Form  draft.Kind `json:"form"`
	Draft D          `json:"draft"`
}

// AcknowledgmentResponse is the 200 response of an accepted submission.
type AcknowledgmentResponse[D any] struct {
	Form draft.Kind `json:"form"`
	draft.Acknowledgment[D]
}

// RejectionResponse is the 422 response of a refused submission.
type RejectionResponse struct {
	Form  draft.Kind `json:"form"`
	Error string     `json:"error"`
	draft.Rejection
}

func fieldNames(errs []draft.FieldError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Field
	}
	return out
}
