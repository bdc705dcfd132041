package domain

import "time"

// BoardMember is one entry of the association's board directory.
type BoardMember struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// ContactSubmission is a write-only record of the contact form.
type ContactSubmission struct {
	ID              int64     `json:"id"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Email           string    `json:"email"`
	Phone           *string   `json:"phone"`
	Address         *string   `json:"address"`
	Subject         string    `json:"subject"`
	Message         string    `json:"message"`
	IsPropertyOwner bool      `json:"isPropertyOwner"`
	SubmissionDate  time.Time `json:"submissionDate"`
}

// NewsletterSubscription is unique per normalized email.
type NewsletterSubscription struct {
	ID               int64     `json:"id"`
	Email            string    `json:"email"`
	SubscriptionDate time.Time `json:"subscriptionDate"`
	JoinEmailChain   bool      `json:"joinEmailChain"`
}

// AccessPin is a passcode held in the external pin registry.
type AccessPin struct {
	ID          int64
	Pin         string
	AccessLevel AccessLevel
	Description string
	CreatedAt   time.Time
	ExpiresAt   *time.Time
}

// IsExpired reports whether the pin has an expiry strictly before now.
func (p AccessPin) IsExpired(now time.Time) bool {
	return p.ExpiresAt != nil && p.ExpiresAt.Before(now)
}
