package models

import "time"

const (
	SessionTypeTrial   = "trial"
	SessionTypeRegular = "regular"
	SessionTypeOther   = "other"
)

const (
	SessionStatusScheduled = "scheduled"
	SessionStatusCompleted = "completed"
	SessionStatusCancelled = "cancelled"
)

type Session struct {
	ID string `json:"id"`
	// ClientName is a snapshot taken at creation time; it is not kept in
	// sync with later client renames.
	ClientID   string  `json:"client_id"`
	ClientName string  `json:"client_name"`
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	Type       string  `json:"type"`
	Status     string  `json:"status"`
	CoachName  string  `json:"coach_name"`
	MeetLink   *string `json:"meet_link,omitempty"`
	Notes      *string `json:"notes,omitempty"`
	Summary    *string `json:"summary,omitempty"`
}

type StoredSession struct {
	ClientID   string
	ClientName string
	Date       *time.Time
	Time       string
	Type       string
	Status     string
	CoachName  string
	MeetLink   *string
	Notes      *string
	Summary    *string
}

func SessionFromStored(id string, doc StoredSession) Session {
	return Session{
		ID:         id,
		ClientID:   doc.ClientID,
		ClientName: doc.ClientName,
		Date:       DateString(doc.Date),
		Time:       doc.Time,
		Type:       doc.Type,
		Status:     doc.Status,
		CoachName:  doc.CoachName,
		MeetLink:   doc.MeetLink,
		Notes:      doc.Notes,
		Summary:    doc.Summary,
	}
}
