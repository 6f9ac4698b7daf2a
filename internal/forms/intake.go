package forms

import (
	"strings"
	"time"
)

// ApplicationForm is the public apply form. The client's lifecycle status is
// not part of the form; the intake workflow fixes it to trial.
type ApplicationForm struct {
	Name        string `json:"name"`
	Kana        string `json:"kana"`
	Email       string `json:"email"`
	Gender      string `json:"gender"`
	Birthday    string `json:"birthday"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	SessionType string `json:"session_type"`
	Notes       string `json:"notes"`
}

type ApplicationValues struct {
	Name        string
	Kana        string
	Email       string
	Gender      *string
	Birthday    *time.Time
	Phone       *string
	Address     *string
	SessionType *string
	Notes       *string
}

func ValidateApplication(form ApplicationForm) (*ApplicationValues, FieldErrors) {
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

	return &ApplicationValues{
		Name:        name,
		Kana:        kana,
		Email:       email,
		Gender:      gender,
		Birthday:    birthday,
		Phone:       optional(form.Phone),
		Address:     optional(form.Address),
		SessionType: sessionType,
		Notes:       optional(form.Notes),
	}, nil
}

// BookingForm is the public booking form. The time value is chosen from the
// open slots offered for the selected date.
type BookingForm struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Date  string `json:"date"`
	Time  string `json:"time"`
	Notes string `json:"notes"`
}

type BookingValues struct {
	Name  string
	Email string
	Date  time.Time
	Time  string
	Notes *string
}

func ValidateBooking(form BookingForm) (*BookingValues, FieldErrors) {
	errs := FieldErrors{}

	name := strings.TrimSpace(form.Name)
	if name == "" {
		errs["name"] = "name is required"
	}
	email := strings.TrimSpace(form.Email)
	if !validEmail(email) {
		errs["email"] = "email must be a valid email address"
	}
	date, ok := parseDate(strings.TrimSpace(form.Date))
	if !ok {
		errs["date"] = "date must be a YYYY-MM-DD date"
	}
	if !timePattern.MatchString(form.Time) {
		errs["time"] = "time must match HH:mm"
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &BookingValues{
		Name:  name,
		Email: email,
		Date:  date,
		Time:  form.Time,
		Notes: optional(form.Notes),
	}, nil
}
