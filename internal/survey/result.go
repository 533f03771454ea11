package survey

import "encoding/json"

// Status tags the three ParseResult variants. Consumers must branch on the
// tag before reading payload fields.
type Status string

const (
	StatusOK                Status = "ok"
	StatusIncompleteProfile Status = "incomplete_profile"
	StatusError             Status = "error"
)

// ReasonTooManyMissing is the fixed incomplete_profile reason.
const ReasonTooManyMissing = ">50% fields missing"

// ParseResult is the uniform outcome of the input routing + normalization
// stage. Exactly one variant is active, selected by Status.
type ParseResult struct {
	Status Status

	// ok
	Answers       *AnswerSet
	MissingFields []string
	Confidence    *float64 // only set on the OCR path

	// incomplete_profile (also carries MissingFields and Confidence)
	Reason string

	// error
	Message string
}

// OKResult wraps a populated answer set, applying the missing-field policy:
// more than half of the expected fields absent yields incomplete_profile.
func OKResult(answers AnswerSet, confidence *float64) ParseResult {
	missing := answers.MissingFields()
	if len(missing)*2 > len(ExpectedFields) {
		return ParseResult{
			Status:        StatusIncompleteProfile,
			Reason:        ReasonTooManyMissing,
			MissingFields: missing,
			Confidence:    confidence,
		}
	}
	return ParseResult{
		Status:        StatusOK,
		Answers:       &answers,
		MissingFields: missing,
		Confidence:    confidence,
	}
}

// ErrorResult builds the error variant with a caller-visible message.
func ErrorResult(message string) ParseResult {
	return ParseResult{Status: StatusError, Message: message}
}

// MarshalJSON emits only the fields that belong to the active variant, so
// each status serializes to its documented envelope.
func (r ParseResult) MarshalJSON() ([]byte, error) {
	out := map[string]any{"status": r.Status}
	switch r.Status {
	case StatusOK:
		out["answers"] = r.Answers
		out["missing_fields"] = r.MissingFields
		if r.Confidence != nil {
			out["confidence"] = *r.Confidence
		}
	case StatusIncompleteProfile:
		out["reason"] = r.Reason
		out["missing_fields"] = r.MissingFields
		if r.Confidence != nil {
			out["confidence"] = *r.Confidence
		}
	case StatusError:
		out["message"] = r.Message
	}
	return json.Marshal(out)
}
