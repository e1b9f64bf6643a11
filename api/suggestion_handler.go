package api

import (
	"net/http"
	"time"

	"github.com/raushankrgupta/portfolio-api/models"
	"github.com/raushankrgupta/portfolio-api/notify"
)

var suggestionForm = form{
	name:       "Suggestion",
	required:   []string{"suggestion"},
	missingMsg: "Suggestion is required",
	successMsg: "Suggestion saved successfully!",
	failureMsg: "Failed to save suggestion.",
	build: func(f fields, now time.Time) (models.Record, error) {
		suggestion, err := f.requiredText("suggestion")
		if err != nil {
			return nil, err
		}
		return models.Suggestion{Suggestion: suggestion, CreatedAt: now}, nil
	},
	notice: func(rec models.Record) notify.Message {
		return notify.Message{
			Subject: "New book suggestion",
			Text:    rec.(models.Suggestion).Suggestion,
		}
	},
}

// SuggestionHandler handles POST /api/suggestion
func (h *Handler) SuggestionHandler(w http.ResponseWriter, r *http.Request) {
	h.handleSubmission(w, r, suggestionForm)
}
