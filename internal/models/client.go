package models

import "time"

const (
	ClientStatusActive   = "active"
	ClientStatusTrial    = "trial"
	ClientStatusInactive = "inactive"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

const (
	SessionMediumOnline   = "online"
	SessionMediumInPerson = "in_person"
)

type Client struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Kana        string  `json:"kana"`
	Email       string  `json:"email"`
	Status      string  `json:"status"`
	JoinDate    string  `json:"join_date"`
	Gender      *string `json:"gender,omitempty"`
	Birthday    string  `json:"birthday,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Address     *string `json:"address,omitempty"`
	SessionType *string `json:"session_type,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// StoredClient is the raw document shape as it comes back from the store,
// timestamps still in their native representation.
type StoredClient struct {
	Name        string
	Kana        string
	Email       string
	Status      string
	JoinDate    *time.Time
	Gender      *string
	Birthday    *time.Time
	Phone       *string
	Address     *string
	SessionType *string
	Notes       *string
}

// ClientFromStored maps one stored document plus its identifier to a Client.
// No validation happens here; whatever is in the store flows through.
func ClientFromStored(id string, doc StoredClient) Client {
	return Client{
		ID:          id,
		Name:        doc.Name,
		Kana:        doc.Kana,
		Email:       doc.Email,
		Status:      doc.Status,
		JoinDate:    DateString(doc.JoinDate),
		Gender:      doc.Gender,
		Birthday:    DateString(doc.Birthday),
		Phone:       doc.Phone,
		Address:     doc.Address,
		SessionType: doc.SessionType,
		Notes:       doc.Notes,
	}
}
