package forms

import (
	"strings"
	"time"

	"github.com/Yuuta12-maker/MEC-App/internal/models"
	"github.com/Yuuta12-maker/MEC-App/internal/repository"
)

var clientStatuses = []string{
	models.ClientStatusActive,
	models.ClientStatusTrial,
	models.ClientStatusInactive,
}

var genders = []string{
	models.GenderMale,
	models.GenderFemale,
	models.GenderOther,
}

var sessionMediums = []string{
	models.SessionMediumOnline,
	models.SessionMediumInPerson,
}

type ClientForm struct {
	Name        string `json:"name"`
	Kana        string `json:"kana"`
	Email       string `json:"email"`
	Status      string `json:"status"`
	Gender      string `json:"gender"`
	Birthday    string `json:"birthday"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	SessionType string `json:"session_type"`
	Notes       string `json:"notes"`
}

func ValidateClient(form ClientForm) (*repository.ClientRecord, FieldErrors) {
	errs := FieldErrors{}

	name := strings.TrimSpace(form.Name)
	if name == "" {
		errs["name"] = "name is required"
	}
	kana := strings.TrimSpace(form.Kana)
	if kana == "" {
		errs["kana"] = "kana is required"
	}
	email := strings.TrimSpace(form.Email)
	if !validEmail(email) {
		errs["email"] = "email must be a valid email address"
	}
	if !contains(clientStatuses, form.Status) {
		errs["status"] = "status must be one of: active, trial, inactive"
	}

	var gender *string
	if trimmed := strings.TrimSpace(form.Gender); trimmed != "" {
		if !contains(genders, trimmed) {
			errs["gender"] = "gender must be one of: male, female, other"
		} else {
			gender = &trimmed
		}
	}

	var birthday *time.Time
	if trimmed := strings.TrimSpace(form.Birthday); trimmed != "" {
		parsed, ok := parseDate(trimmed)
		if !ok {
			errs["birthday"] = "birthday must be a YYYY-MM-DD date"
		} else {
			birthday = &parsed
		}
	}

	var sessionType *string
	if trimmed := strings.TrimSpace(form.SessionType); trimmed != "" {
		if !contains(sessionMediums, trimmed) {
			errs["session_type"] = "session_type must be one of: online, in_person"
		} else {
			sessionType = &trimmed
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &repository.ClientRecord{
		Name:        name,
		Kana:        kana,
		Email:       email,
		Status:      form.Status,
		Gender:      gender,
		Birthday:    birthday,
		Phone:       optional(form.Phone),
		Address:     optional(form.Address),
		SessionType: sessionType,
		Notes:       optional(form.Notes),
	}, nil
}
