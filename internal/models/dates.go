package models

import "time"

// DateString converts a stored timestamp into a plain calendar date.
// A missing timestamp maps to the empty string, never an error.
func DateString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format("2006-01-02")
}
