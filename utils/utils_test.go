package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestAddToLogMessage(t *testing.T) {
	var b strings.Builder
	AddToLogMessage(&b, "[Contact API]")
	AddToLogMessage(&b, "Contact saved")

	if got := b.String(); got != "[Contact API];\nContact saved;\n" {
		t.Errorf("unexpected trail %q", got)
	}
	if got := LogTrail(&b); got != "[Contact API]; Contact saved" {
		t.Errorf("LogTrail() = %q", got)
	}
}

func TestLogTrail_Empty(t *testing.T) {
	var b strings.Builder
	if got := LogTrail(&b); got != "" {
		t.Errorf("expected empty trail, got %q", got)
	}
}

func TestRespondError(t *testing.T) {
	var b strings.Builder
	rec := httptest.NewRecorder()

	RespondError(rec, &b, "Name is required", http.StatusBadRequest)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}
	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["error"] != "Name is required" {
		t.Errorf("unexpected body %v", resp)
	}
	if !strings.Contains(b.String(), "Name is required") {
		t.Error("message should be added to the log trail")
	}
}

func TestRespondMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondMessage(rec, http.StatusCreated, "Contact saved successfully!")

	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["message"] != "Contact saved successfully!" {
		t.Errorf("unexpected body %v", resp)
	}
}
