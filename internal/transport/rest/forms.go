package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/ranch-records/internal/domain"
	"github.com/heartmarshall/ranch-records/internal/service/contact"
	"github.com/heartmarshall/ranch-records/internal/service/newsletter"
)

type contactService interface {
	Submit(ctx context.Context, input contact.SubmitInput) (*domain.ContactSubmission, error)
}

type newsletterService interface {
	Subscribe(ctx context.Context, input newsletter.SubscribeInput) (*domain.NewsletterSubscription, bool, error)
}

// FormsHandler serves the public contact and newsletter forms.
type FormsHandler struct {
	contact    contactService
	newsletter newsletterService
	log        *slog.Logger
}

func NewFormsHandler(contacts contactService, subscriptions newsletterService, logger *slog.Logger) *FormsHandler {
	return &FormsHandler{
		contact:    contacts,
		newsletter: subscriptions,
		log:        logger.With("handler", "forms"),
	}
}

type contactResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type subscriptionResponse struct {
	Message string `json:"message"`
	domain.NewsletterSubscription
}

// Contact handles POST /api/contact.
func (h *FormsHandler) Contact(w http.ResponseWriter, r *http.Request) {
	var input contact.SubmitInput
	if err := decodeJSON(w, r, &input); err != nil {
		h.formError(w, r, err)
		return
	}

	sub, err := h.contact.Submit(r.Context(), input)
	if err != nil {
		h.formError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, contactResponse{
		Message: "Contact form submitted successfully",
		ID:      sub.ID,
	})
}

// Newsletter handles POST /api/newsletter. Subscribing twice answers with
// the original subscription.
func (h *FormsHandler) Newsletter(w http.ResponseWriter, r *http.Request) {
	var input newsletter.SubscribeInput
	if err := decodeJSON(w, r, &input); err != nil {
		h.formError(w, r, err)
		return
	}

	sub, created, err := h.newsletter.Subscribe(r.Context(), input)
	if err != nil {
		h.formError(w, r, err)
		return
	}

	msg := "Subscribed to newsletter successfully"
	if !created {
		msg = "Already subscribed to newsletter"
	}
	writeJSON(w, http.StatusCreated, subscriptionResponse{Message: msg, NewsletterSubscription: *sub})
}

func (h *FormsHandler) formError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid form data", Errors: ve.Errors})
		return
	}
	handleError(h.log, w, r, err, "Submission")
}
