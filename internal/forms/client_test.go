package forms

import (
	"strings"
	"testing"
)

func validClientForm() ClientForm {
	return ClientForm{
		Name:   "山田太郎",
		Kana:   "ヤマダタロウ",
		Email:  "taro@example.com",
		Status: "active",
	}
}

func TestValidateClientAcceptsValidInput(t *testing.T) {
	for _, status := range []string{"active", "trial", "inactive"} {
		form := validClientForm()
		form.Status = status

		rec, errs := ValidateClient(form)
		if len(errs) != 0 {
			t.Fatalf("Expected no errors for status %q, got %v", status, errs)
		}
		if rec.Status != status {
			t.Errorf("Expected status %q, got %q", status, rec.Status)
		}
		if strings.Count(rec.Email, "@") != 1 {
			t.Errorf("Expected exactly one @ in email, got %q", rec.Email)
		}
	}
}

func TestValidateClientRejectsMissingRequiredFields(t *testing.T) {
	form := ClientForm{Status: "active"}
	_, errs := ValidateClient(form)
	for _, field := range []string{"name", "kana", "email"} {
		if errs[field] == "" {
			t.Errorf("Expected error for %s", field)
		}
	}
}

func TestValidateClientRejectsUnknownStatus(t *testing.T) {
	form := validClientForm()
	form.Status = "paused"
	if _, errs := ValidateClient(form); errs["status"] == "" {
		t.Errorf("Expected status error, got %v", errs)
	}
}

func TestValidateClientRejectsInvalidEmail(t *testing.T) {
	for _, email := range []string{"", "not-an-email", "a@b@c"} {
		form := validClientForm()
		form.Email = email
		if _, errs := ValidateClient(form); errs["email"] == "" {
			t.Errorf("Expected email error for %q", email)
		}
	}
}

func TestValidateClientOptionalFields(t *testing.T) {
	form := validClientForm()
	form.Gender = "female"
	form.Birthday = "1990-04-01"
	form.Phone = "090-1234-5678"
	form.SessionType = "online"
	form.Notes = "  memo  "

	rec, errs := ValidateClient(form)
	if len(errs) != 0 {
		t.Fatalf("Expected no errors, got %v", errs)
	}
	if rec.Gender == nil || *rec.Gender != "female" {
		t.Errorf("Expected gender female")
	}
	if rec.Birthday == nil || rec.Birthday.Format("2006-01-02") != "1990-04-01" {
		t.Errorf("Expected birthday 1990-04-01")
	}
	if rec.Notes == nil || *rec.Notes != "memo" {
		t.Errorf("Expected trimmed notes, got %v", rec.Notes)
	}

	form.Gender = "unknown"
	if _, errs := ValidateClient(form); errs["gender"] == "" {
		t.Errorf("Expected gender error")
	}

	form.Gender = ""
	form.Birthday = "01/04/1990"
	if _, errs := ValidateClient(form); errs["birthday"] == "" {
		t.Errorf("Expected birthday error")
	}
}
