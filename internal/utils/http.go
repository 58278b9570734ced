package utils

import (
	"regexp"
	"strings"
)

// uidPattern matches DHIS2 identifiers: one ASCII letter followed by
// exactly ten alphanumeric characters.
var uidPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]{10}$`)

// IsUID reports whether s is a valid 11-character DHIS2 UID.
func IsUID(s string) bool {
	return uidPattern.MatchString(s)
}

// Is2xx reports whether code belongs to the HTTP success family.
func Is2xx(code int) bool {
	return code/100 == 2
}

// SetQueryParam appends key=value to rawURL, choosing "&" if the URL
// already carries a query string, else "?". No escaping is performed;
// the caller must pre-encode key and value.
func SetQueryParam(rawURL, key, value string) string {
	sep := "?"
	if strings.Contains(rawURL, "?") {
		sep = "&"
	}

	return rawURL + sep + key + "=" + value
}
