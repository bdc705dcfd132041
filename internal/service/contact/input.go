package contact

import (
	"net/mail"
	"strings"
	"time"

	"github.com/heartmarshall/ranch-records/internal/domain"
)

// SubmitInput is the contact form as sent by the client.
type SubmitInput struct {
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Email           string  `json:"email"`
	Phone           *string `json:"phone"`
	Address         *string `json:"address"`
	Subject         string  `json:"subject"`
	Message         string  `json:"message"`
	IsPropertyOwner bool    `json:"isPropertyOwner"`
}

// Validate checks all fields and collects all errors.
func (i SubmitInput) Validate() error {
	var errs []domain.FieldError

	required := []struct {
		field string
		value string
		max   int
	}{
		{"firstName", i.FirstName, 100},
		{"lastName", i.LastName, 100},
		{"email", i.Email, 254},
		{"subject", i.Subject, 200},
		{"message", i.Message, 5000},
	}
	for _, r := range required {
		v := strings.TrimSpace(r.value)
		if v == "" {
			errs = append(errs, domain.FieldError{Field: r.field, Message: "required"})
			continue
		}
		if len(v) > r.max {
			errs = append(errs, domain.FieldError{Field: r.field, Message: "too long"})
		}
	}

	if email := strings.TrimSpace(i.Email); email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i SubmitInput) submission(now time.Time) domain.ContactSubmission {
	return domain.ContactSubmission{
		FirstName:       strings.TrimSpace(i.FirstName),
		LastName:        strings.TrimSpace(i.LastName),
		Email:           strings.TrimSpace(i.Email),
		Phone:           trimOrNil(i.Phone),
		Address:         trimOrNil(i.Address),
		Subject:         strings.TrimSpace(i.Subject),
		Message:         strings.TrimSpace(i.Message),
		IsPropertyOwner: i.IsPropertyOwner,
		SubmissionDate:  now,
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
