package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/raushankrgupta/portfolio-api/models"
	"github.com/raushankrgupta/portfolio-api/notify"
)

var contactForm = form{
	name:       "Contact",
	required:   []string{"name", "email"},
	missingMsg: "Name and email are required",
	successMsg: "Contact saved successfully!",
	failureMsg: "Failed to save contact.",
	build: func(f fields, now time.Time) (models.Record, error) {
		name, err := f.requiredText("name")
		if err != nil {
			return nil, err
		}
		email, err := f.requiredText("email")
		if err != nil {
			return nil, err
		}
		return models.Contact{Name: name, Email: email, CreatedAt: now}, nil
	},
	notice: func(rec models.Record) notify.Message {
		c := rec.(models.Contact)
		return notify.Message{
			Subject: "New contact request",
			Text:    fmt.Sprintf("%s <%s> left a contact request at %s.", c.Name, c.Email, c.CreatedAt.UTC().Format(time.RFC3339)),
		}
	},
}

// ContactHandler handles POST /api/contact
func (h *Handler) ContactHandler(w http.ResponseWriter, r *http.Request) {
	h.handleSubmission(w, r, contactForm)
}
