// Package models defines the response shapes returned by the DHIS2
// import API.
package models

// ImportCount breaks down how the server disposed of the submitted
// objects.
type ImportCount struct {
	Imported int `json:"imported"`
	Updated  int `json:"updated"`
	Ignored  int `json:"ignored"`
	Deleted  int `json:"deleted"`
}

// ImportConflict describes one object the server refused, with the
// server-side reason.
type ImportConflict struct {
	Object string `json:"object"`
	Value  string `json:"value"`
}

// ImportSummary is the body the DHIS2 import endpoints return for both
// clean imports and 409 conflicts.
type ImportSummary struct {
	Status      string           `json:"status"`
	Description string           `json:"description,omitempty"`
	ImportCount ImportCount      `json:"importCount"`
	Conflicts   []ImportConflict `json:"conflicts,omitempty"`
}
