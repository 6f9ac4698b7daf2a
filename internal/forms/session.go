package forms

import (
	"strings"

	"github.com/Yuuta12-maker/MEC-App/internal/models"
	"github.com/Yuuta12-maker/MEC-App/internal/repository"
)

var sessionTypes = []string{
	models.SessionTypeTrial,
	models.SessionTypeRegular,
	models.SessionTypeOther,
}

var sessionStatuses = []string{
	models.SessionStatusScheduled,
	models.SessionStatusCompleted,
	models.SessionStatusCancelled,
}

type SessionForm struct {
	ClientID   string `json:"client_id"`
	ClientName string `json:"client_name"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Type       string `json:"type"`
	Status     string `json:"status"`
	CoachName  string `json:"coach_name"`
	MeetLink   string `json:"meet_link"`
	Notes      string `json:"notes"`
	Summary    string `json:"summary"`
}

func ValidateSession(form SessionForm) (*repository.SessionRecord, FieldErrors) {
	errs := FieldErrors{}

	clientID := strings.TrimSpace(form.ClientID)
	if clientID == "" {
		errs["client_id"] = "client_id is required"
	}
	clientName := strings.TrimSpace(form.ClientName)
	if clientName == "" {
		errs["client_name"] = "client_name is required"
	}

	date, ok := parseDate(strings.TrimSpace(form.Date))
	if !ok {
		errs["date"] = "date must be a YYYY-MM-DD date"
	}
	if !timePattern.MatchString(form.Time) {
		errs["time"] = "time must match HH:mm"
	}
	if !contains(sessionTypes, form.Type) {
		errs["type"] = "type must be one of: trial, regular, other"
	}
	if !contains(sessionStatuses, form.Status) {
		errs["status"] = "status must be one of: scheduled, completed, cancelled"
	}
	coachName := strings.TrimSpace(form.CoachName)
	if coachName == "" {
		errs["coach_name"] = "coach_name is required"
	}

	// An empty meet link is absent, not invalid.
	var meetLink *string
	if trimmed := strings.TrimSpace(form.MeetLink); trimmed != "" {
		if !validURL(trimmed) {
			errs["meet_link"] = "meet_link must be a valid URL"
		} else {
			meetLink = &trimmed
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &repository.SessionRecord{
		ClientID:   clientID,
		ClientName: clientName,
		Date:       date,
		Time:       form.Time,
		Type:       form.Type,
		Status:     form.Status,
		CoachName:  coachName,
		MeetLink:   meetLink,
		Notes:      optional(form.Notes),
		Summary:    optional(form.Summary),
	}, nil
}
