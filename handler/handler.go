package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	"landing-site/internal/domain"
	"landing-site/internal/usecase"
)

const (
	correlationHeader = "X-Correlation-Id"

	LivenessText = "Contact API is running."

	messageInvalidBody      = "Invalid request body."
	messageInternal         = "Something went wrong. Please try again later."
	messageNotFound         = "Not found."
	messageMethodNotAllowed = "Method not allowed."

	maxBodyBytes = 64 << 10
)

type ContactUseCase interface {
	Submit(ctx context.Context, in usecase.SubmitInput) (usecase.SubmitOutput, error)
}

// Handler serves the contact endpoint both as an API Gateway proxy handler
// and as a plain http.Handler (see Routes).
type Handler struct {
	uc            ContactUseCase
	logger        *slog.Logger
	allowedOrigin string
}

type Option func(*Handler)

func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithAllowedOrigin sets Access-Control-Allow-Origin. Empty disables CORS headers.
func WithAllowedOrigin(origin string) Option {
	return func(h *Handler) {
		h.allowedOrigin = strings.TrimSpace(origin)
	}
}

type contactRequest struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

func NewHandler(uc ContactUseCase, opts ...Option) (*Handler, error) {
	if uc == nil {
		return nil, errors.New("handler: usecase must not be nil")
	}
	h := &Handler{
		uc:            uc,
		logger:        slog.Default(),
		allowedOrigin: "*",
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// Handle is the Lambda entry point.
func (h *Handler) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	correlationID := correlationIDFromHeaders(event.Headers)
	headers := h.baseHeaders(correlationID)

	switch {
	case event.HTTPMethod == http.MethodOptions:
		return events.APIGatewayProxyResponse{StatusCode: http.StatusNoContent, Headers: headers}, nil
	case event.Path == "/" && event.HTTPMethod == http.MethodGet:
		headers["Content-Type"] = "text/plain; charset=utf-8"
		return events.APIGatewayProxyResponse{StatusCode: http.StatusOK, Headers: headers, Body: LivenessText}, nil
	case event.Path == "/contact" && event.HTTPMethod == http.MethodPost:
		body := []byte(event.Body)
		if event.IsBase64Encoded {
			decoded, err := base64.StdEncoding.DecodeString(event.Body)
			if err != nil {
				return jsonResponse(headers, http.StatusBadRequest, failure(messageInvalidBody)), nil
			}
			body = decoded
		}
		status, result := h.contact(ctx, body, correlationID)
		return jsonResponse(headers, status, result), nil
	case event.Path == "/" || event.Path == "/contact":
		return jsonResponse(headers, http.StatusMethodNotAllowed, failure(messageMethodNotAllowed)), nil
	default:
		return jsonResponse(headers, http.StatusNotFound, failure(messageNotFound)), nil
	}
}

// contact decodes and submits one request body. A missing or empty body is
// treated as an empty object so it fails field validation.
func (h *Handler) contact(ctx context.Context, body []byte, correlationID string) (int, domain.ContactResult) {
	var req contactRequest
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			h.logger.InfoContext(ctx, "rejected contact request", "reason", "invalid_json", "correlation_id", correlationID, "err", err)
			return http.StatusBadRequest, failure(messageInvalidBody)
		}
	}

	out, err := h.uc.Submit(ctx, usecase.SubmitInput{
		Email:         req.Email,
		Message:       req.Message,
		CorrelationID: correlationID,
	})
	if err != nil {
		return h.mapError(ctx, err, correlationID)
	}
	return http.StatusOK, domain.ContactResult{Success: true, Message: out.Message}
}

func (h *Handler) mapError(ctx context.Context, err error, correlationID string) (int, domain.ContactResult) {
	if usecase.CodeOf(err) == usecase.ErrorInvalidInput {
		h.logger.InfoContext(ctx, "rejected contact request", "correlation_id", correlationID, "err", err)
		return http.StatusBadRequest, failure(usecase.MessageRequired)
	}
	h.logger.ErrorContext(ctx, "contact submission failed", "correlation_id", correlationID, "err", err)
	return http.StatusInternalServerError, failure(messageInternal)
}

func (h *Handler) baseHeaders(correlationID string) map[string]string {
	headers := map[string]string{correlationHeader: correlationID}
	if h.allowedOrigin != "" {
		headers["Access-Control-Allow-Origin"] = h.allowedOrigin
		headers["Access-Control-Allow-Methods"] = "GET, POST, OPTIONS"
		headers["Access-Control-Allow-Headers"] = "Content-Type, " + correlationHeader
		headers["Access-Control-Expose-Headers"] = correlationHeader
	}
	return headers
}

func jsonResponse(headers map[string]string, status int, result domain.ContactResult) events.APIGatewayProxyResponse {
	headers["Content-Type"] = "application/json"
	body, _ := json.Marshal(result)
	return events.APIGatewayProxyResponse{StatusCode: status, Headers: headers, Body: string(body)}
}

func failure(message string) domain.ContactResult {
	return domain.ContactResult{Success: false, Message: message}
}

// correlationIDFromHeaders looks the header up case-insensitively, as API
// Gateway passes header names through as the client sent them.
func correlationIDFromHeaders(headers map[string]string) string {
	for k, v := range headers {
		if strings.EqualFold(k, correlationHeader) {
			if v = strings.TrimSpace(v); v != "" {
				return v
			}
		}
	}
	return newCorrelationID()
}

var newCorrelationID = func() string {
	return uuid.NewString()
}
