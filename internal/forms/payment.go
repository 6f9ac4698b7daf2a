package forms

import (
	"strconv"
	"strings"
	"time"

	"github.com/Yuuta12-maker/MEC-App/internal/models"
	"github.com/Yuuta12-maker/MEC-App/internal/repository"
)

var paymentStatuses = []string{
	models.PaymentStatusUnpaid,
	models.PaymentStatusPaid,
	models.PaymentStatusOverdue,
}

type PaymentForm struct {
	ClientID    string `json:"client_id"`
	ClientName  string `json:"client_name"`
	PaymentType string `json:"payment_type"`
	DueDate     string `json:"due_date"`
	Status      string `json:"status"`
	PaidDate    string `json:"paid_date"`
	Amount      string `json:"amount"`
	Notes       string `json:"notes"`
}

func ValidatePayment(form PaymentForm) (*repository.PaymentRecord, FieldErrors) {
	errs := FieldErrors{}

	clientID := strings.TrimSpace(form.ClientID)
	if clientID == "" {
		errs["client_id"] = "client_id is required"
	}
	clientName := strings.TrimSpace(form.ClientName)
	if clientName == "" {
		errs["client_name"] = "client_name is required"
	}
	paymentType := strings.TrimSpace(form.PaymentType)
	if paymentType == "" {
		errs["payment_type"] = "payment_type is required"
	}

	dueDate, ok := parseDate(strings.TrimSpace(form.DueDate))
	if !ok {
		errs["due_date"] = "due_date must be a YYYY-MM-DD date"
	}
	if !contains(paymentStatuses, form.Status) {
		errs["status"] = "status must be one of: unpaid, paid, overdue"
	}

	var paidDate *time.Time
	if trimmed := strings.TrimSpace(form.PaidDate); trimmed != "" {
		parsed, ok := parseDate(trimmed)
		if !ok {
			errs["paid_date"] = "paid_date must be a YYYY-MM-DD date"
		} else {
			paidDate = &parsed
		}
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(form.Amount), 64)
	if err != nil || amount < 0 {
		errs["amount"] = "amount must be a number of 0 or greater"
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &repository.PaymentRecord{
		ClientID:    clientID,
		ClientName:  clientName,
		PaymentType: paymentType,
		DueDate:     dueDate,
		Status:      form.Status,
		PaidDate:    paidDate,
		Amount:      amount,
		Notes:       optional(form.Notes),
	}, nil
}
