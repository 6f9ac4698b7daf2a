package models

import "time"

const (
	PaymentStatusUnpaid  = "unpaid"
	PaymentStatusPaid    = "paid"
	PaymentStatusOverdue = "overdue"
)

type Payment struct {
	ID          string  `json:"id"`
	ClientID    string  `json:"client_id"`
	ClientName  string  `json:"client_name"`
	PaymentType string  `json:"payment_type"`
	DueDate     string  `json:"due_date"`
	Status      string  `json:"status"`
	PaidDate    string  `json:"paid_date,omitempty"`
	Amount      float64 `json:"amount"`
	Notes       *string `json:"notes,omitempty"`
}

type StoredPayment struct {
	ClientID    string
	ClientName  string
	PaymentType string
	DueDate     *time.Time
	Status      string
	PaidDate    *time.Time
	Amount      float64
	Notes       *string
}

func PaymentFromStored(id string, doc StoredPayment) Payment {
	return Payment{
		ID:          id,
		ClientID:    doc.ClientID,
		ClientName:  doc.ClientName,
		PaymentType: doc.PaymentType,
		DueDate:     DateString(doc.DueDate),
		Status:      doc.Status,
		PaidDate:    DateString(doc.PaidDate),
		Amount:      doc.Amount,
		Notes:       doc.Notes,
	}
}
