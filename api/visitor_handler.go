package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/raushankrgupta/portfolio-api/models"
	"github.com/raushankrgupta/portfolio-api/notify"
)

var visitorForm = form{
	name:       "Visitor",
	required:   []string{"name"},
	missingMsg: "Name is required",
	successMsg: "Visitor feedback saved successfully!",
	failureMsg: "Failed to save visitor feedback.",
	build: func(f fields, now time.Time) (models.Record, error) {
		name, err := f.requiredText("name")
		if err != nil {
			return nil, err
		}
		linkedin, err := f.optionalText("linkedin")
		if err != nil {
			return nil, err
		}
		feedback, err := f.optionalText("feedback")
		if err != nil {
			return nil, err
		}
		return models.Visitor{Name: name, LinkedIn: linkedin, Feedback: feedback, CreatedAt: now}, nil
	},
	notice: func(rec models.Record) notify.Message {
		v := rec.(models.Visitor)
		var b strings.Builder
		fmt.Fprintf(&b, "Visitor: %s\n", v.Name)
		if v.LinkedIn != nil {
			fmt.Fprintf(&b, "LinkedIn: %s\n", *v.LinkedIn)
		}
		if v.Feedback != nil {
			fmt.Fprintf(&b, "Feedback: %s\n", *v.Feedback)
		}
		return notify.Message{Subject: "New visitor feedback", Text: b.String()}
	},
}

// VisitorHandler handles POST /api/visitor. linkedin and feedback are optional.
func (h *Handler) VisitorHandler(w http.ResponseWriter, r *http.Request) {
	h.handleSubmission(w, r, visitorForm)
}
