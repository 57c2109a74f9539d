package waitlist

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/imsurajj/amsoft/pkg/apperror"
	"github.com/imsurajj/amsoft/pkg/logger"
)

// Handler handles waitlist HTTP requests
type Handler struct {
	svc *Service
	log *slog.Logger
}

// NewHandler creates a new waitlist handler
func NewHandler(svc *Service, log *slog.Logger) *Handler {
	return &Handler{
		svc: svc,
		log: log.With(logger.Scope("waitlist.handler")),
	}
}

// Submit records a waitlist signup
// POST /api/submit
func (h *Handler) Submit(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		SubmissionsTotal.WithLabelValues(OutcomeInvalid).Inc()
		// The body limit middleware fails the read with its own 413.
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return he
		}
		return apperror.NewBadRequest(MsgInvalidJSON).WithInternal(err)
	}

	req, err := DecodeSubmitRequest(body)
	if err != nil {
		SubmissionsTotal.WithLabelValues(OutcomeInvalid).Inc()
		return err
	}

	signup, err := Validate(req)
	if err != nil {
		SubmissionsTotal.WithLabelValues(OutcomeInvalid).Inc()
		h.log.Debug("signup rejected", slog.Any("reason", err))
		return err
	}

	h.log.Info("signup received",
		slog.String("name", signup.Name),
		slog.String("email", signup.Email),
	)

	if _, err := h.svc.Submit(c.Request().Context(), signup); err != nil {
		SubmissionsTotal.WithLabelValues(OutcomeFailed).Inc()
		h.log.Error("signup failed",
			slog.String("email", signup.Email),
			logger.Error(err),
		)
		return apperror.FromError(err)
	}

	SubmissionsTotal.WithLabelValues(OutcomeSuccess).Inc()
	return c.JSON(http.StatusOK, SubmitResponse{
		Success: true,
		Message: SuccessMessage,
	})
}

// DecodeSubmitRequest parses a submission body. Malformed JSON is a 400
// "Invalid JSON body". A body that is valid JSON but not an object yields a
// request with both fields unset; a field of a non-string type is left unset.
func DecodeSubmitRequest(body []byte) (SubmitRequest, error) {
	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return SubmitRequest{}, apperror.NewBadRequest(MsgInvalidJSON).WithInternal(err)
	}

	var req SubmitRequest
	obj, ok := raw.(map[string]any)
	if !ok {
		return req, nil
	}
	if name, ok := obj["name"].(string); ok {
		req.Name = &name
	}
	if email, ok := obj["email"].(string); ok {
		req.Email = &email
	}
	return req, nil
}
