package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/raushankrgupta/portfolio-api/models"
	"github.com/raushankrgupta/portfolio-api/notify"
	"github.com/raushankrgupta/portfolio-api/utils"
)

// maxBodyBytes mirrors the usual 100kb JSON body limit
const maxBodyBytes = 100 << 10

var (
	errNotObject    = errors.New("request body must be a JSON object")
	errNotCoercible = errors.New("value cannot be stored as text")
)

// fields is a decoded JSON request body
type fields map[string]any

// form describes one submission endpoint. Every endpoint runs the same flow:
// decode, check required fields, build the record, insert once, respond.
type form struct {
	name       string
	required   []string
	missingMsg string
	successMsg string
	failureMsg string
	build      func(f fields, now time.Time) (models.Record, error)
	notice     func(rec models.Record) notify.Message
}

func (h *Handler) handleSubmission(w http.ResponseWriter, r *http.Request, fm form) {
	var logMessageBuilder strings.Builder
	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("[%s API]", fm.name))
	requestID := RequestIDFromContext(r.Context())
	defer func() {
		h.logger.Info(utils.LogTrail(&logMessageBuilder), slog.String("request_id", requestID))
	}()

	body, err := decodeBody(r)
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Invalid body: %v", err))
		utils.RespondError(w, &logMessageBuilder, fm.missingMsg, http.StatusBadRequest)
		return
	}

	for _, key := range fm.required {
		if !truthy(body[key]) {
			utils.RespondError(w, &logMessageBuilder, fm.missingMsg, http.StatusBadRequest)
			return
		}
	}

	rec, err := fm.build(body, h.now())
	if err != nil {
		h.saveFailed(w, &logMessageBuilder, fm, requestID, err)
		return
	}

	// a client hanging up must not abort a validated save
	id, err := h.store.Insert(context.WithoutCancel(r.Context()), rec.CollectionName(), rec)
	if err != nil {
		h.saveFailed(w, &logMessageBuilder, fm, requestID, err)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Saved to %s with id %s", rec.CollectionName(), id))
	utils.RespondMessage(w, http.StatusCreated, fm.successMsg)

	if fm.notice != nil {
		h.sendNotification(fm.notice(rec), requestID)
	}
}

// saveFailed logs the underlying error for operators and hides it from the caller
func (h *Handler) saveFailed(w http.ResponseWriter, logMessageBuilder *strings.Builder, fm form, requestID string, err error) {
	h.logger.Error(fmt.Sprintf("%s save error", fm.name),
		slog.String("request_id", requestID),
		slog.Any("error", err))
	utils.RespondError(w, logMessageBuilder, fm.failureMsg, http.StatusInternalServerError)
}

// decodeBody reads a JSON object body. An empty body decodes to no fields.
func decodeBody(r *http.Request) (fields, error) {
	if r.Body == nil {
		return fields{}, nil
	}
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(raw) > maxBodyBytes {
		return nil, fmt.Errorf("body larger than %d bytes", maxBodyBytes)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return fields{}, nil
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("parse body: %w", err)
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, errNotObject
	}
	return fields(obj), nil
}

// truthy treats missing, null, "", false, 0 and NaN as absent. Anything else
// counts as present, including whitespace-only strings.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0 && !math.IsNaN(t)
	default:
		return true
	}
}

// text converts a JSON scalar to the string that gets stored
func text(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case float64:
		return numberText(t), nil
	case bool:
		return strconv.FormatBool(t), nil
	default:
		return "", fmt.Errorf("%w: %T", errNotCoercible, v)
	}
}

// numberText formats a number the way JavaScript's String(n) does: plain
// decimal between 1e-6 and 1e21, exponent form ("1e+21", "1.5e-7") outside.
func numberText(n float64) string {
	if n == 0 {
		return "0"
	}
	if abs := math.Abs(n); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(n, 'e', -1, 64), "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + sign + digits
}

// requiredText converts a field that already passed the presence check
func (f fields) requiredText(key string) (string, error) {
	s, err := text(f[key])
	if err != nil {
		return "", fmt.Errorf("field %q: %w", key, err)
	}
	return s, nil
}

// optionalText returns nil for a missing or null field
func (f fields) optionalText(key string) (*string, error) {
	v, ok := f[key]
	if !ok || v == nil {
		return nil, nil
	}
	s, err := text(v)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", key, err)
	}
	return &s, nil
}
