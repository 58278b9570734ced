package config

import "errors"

// Errors returned while loading or validating the configuration. All of
// them are fatal at startup; the caller is expected to terminate rather
// than retry.
var (
	// ErrNotFound indicates that no dish.json could be opened at the
	// resolved path.
	ErrNotFound = errors.New("config file not found")
	// ErrMalformed indicates that dish.json exists but is not valid JSON.
	ErrMalformed = errors.New("config file malformed")
	// ErrMissingCredentials indicates that the merged configuration ended
	// up without a username or password.
	ErrMissingCredentials = errors.New("missing dhis credentials")
)
