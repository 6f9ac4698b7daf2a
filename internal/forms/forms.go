// Package forms validates raw form input before anything is written to the
// store. Each validator takes a struct of raw string values and returns
// either a validated record or a map of per-field error messages. Documents
// already in the store are never re-validated on the way out.
package forms

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"
	"time"
)

type FieldErrors map[string]string

// Session times are strictly HH:mm, 00-23 hours and 00-59 minutes.
var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

const dateLayout = "2006-01-02"

func validEmail(value string) bool {
	_, err := mail.ParseAddress(value)
	return err == nil
}

func validURL(value string) bool {
	parsed, err := url.ParseRequestURI(value)
	return err == nil && parsed.Scheme != "" && parsed.Host != ""
}

func parseDate(value string) (time.Time, bool) {
	parsed, err := time.Parse(dateLayout, value)
	return parsed, err == nil
}

// optional trims a free-text field and treats the empty string as absent.
func optional(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func contains(allowed []string, value string) bool {
	for _, candidate := range allowed {
		if candidate == value {
			return true
		}
	}
	return false
}
