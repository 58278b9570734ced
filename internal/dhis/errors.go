package dhis

import "errors"

var (
	// ErrUnauthorized is carried by results for HTTP 401 responses.
	ErrUnauthorized = errors.New("authentication failed")
	// ErrConflict is carried by results for HTTP 409 responses. A
	// conflict is a soft success for import semantics: the body still
	// holds a usable import summary.
	ErrConflict = errors.New("import conflict")
)
