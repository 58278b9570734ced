package dhis

// Outcome classifies a completed import request into the families the
// CLI reacts to.
type Outcome int

const (
	// OutcomeImported covers the HTTP 2xx success family.
	OutcomeImported Outcome = iota
	// OutcomeConflict covers HTTP 409; the response body still carries
	// an import summary and the outcome counts as a handled import.
	OutcomeConflict
	// OutcomeUnauthorized covers HTTP 401.
	OutcomeUnauthorized
	// OutcomeFailed covers every other status and transport failures.
	OutcomeFailed
)

// String returns the log-friendly name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeImported:
		return "imported"
	case OutcomeConflict:
		return "conflict"
	case OutcomeUnauthorized:
		return "unauthorized"
	default:
		return "failed"
	}
}

// Result is the structured outcome of one import request.
type Result struct {
	// Outcome is the status-code family the response fell into.
	Outcome Outcome
	// StatusCode is the HTTP status of the response, or 0 when the
	// request never completed.
	StatusCode int
	// Body is the raw response body.
	Body []byte
	// Response is the decoded JSON body for success-family and conflict
	// outcomes; nil otherwise or when the body was not valid JSON.
	Response any
	// Err carries the classification error for unauthorized and failed
	// outcomes ([ErrUnauthorized], or a generic error with code and
	// body). Nil for imported and conflict outcomes.
	Err error
	// EchoErr carries a payload-file write failure. The write is
	// fire-and-forget: a failure never aborts the request, but it is
	// surfaced here instead of being silently swallowed.
	EchoErr error
}

// Handled reports whether the server accepted the payload for import
// purposes (clean import or 409 conflict).
func (r Result) Handled() bool {
	return r.Outcome == OutcomeImported || r.Outcome == OutcomeConflict
}
