package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"landing-site/internal/domain"
)

const (
	MessageSent     = "Your message has been sent successfully!"
	MessageRequired = "Email and message are required."
)

// Recorder persists an accepted submission somewhere durable.
type Recorder interface {
	SaveSubmission(ctx context.Context, rec domain.SubmissionRecord) error
}

// Screener reports whether a message looks like abuse.
type Screener interface {
	Moderate(ctx context.Context, input string) (bool, error)
}

type ContactService struct {
	logger   *slog.Logger
	recorder Recorder
	screener Screener
	now      func() time.Time
}

type Option func(*ContactService)

// WithRecorder adds a durable submission log next to the log stream.
func WithRecorder(r Recorder) Option {
	return func(s *ContactService) {
		s.recorder = r
	}
}

// WithScreener enables moderation screening. Flagged messages are still
// accepted; the record is marked instead.
func WithScreener(sc Screener) Option {
	return func(s *ContactService) {
		s.screener = sc
	}
}

type SubmitInput struct {
	Email         string
	Message       string
	CorrelationID string
}

type SubmitOutput struct {
	ID      string
	Message string
}

func NewContactService(logger *slog.Logger, opts ...Option) (*ContactService, error) {
	if logger == nil {
		return nil, errors.New("usecase: logger must not be nil")
	}
	s := &ContactService{
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Submit validates a contact form submission and records it. Both fields only
// need to be non-empty; no format checks are applied.
func (s *ContactService) Submit(ctx context.Context, in SubmitInput) (SubmitOutput, error) {
	if in.Email == "" || in.Message == "" {
		return SubmitOutput{}, newError(ErrorInvalidInput, "missing_field", nil)
	}

	rec := domain.SubmissionRecord{
		ID:            newUUID(),
		Email:         in.Email,
		Message:       in.Message,
		CorrelationID: in.CorrelationID,
		ReceivedAt:    s.now().UTC(),
		Flagged:       s.screen(ctx, in.Message),
	}

	s.logger.InfoContext(ctx, "new contact form submission",
		"id", rec.ID,
		"email", rec.Email,
		"message", rec.Message,
		"correlation_id", rec.CorrelationID,
		"flagged", rec.Flagged,
	)

	if s.recorder != nil {
		if err := s.recorder.SaveSubmission(ctx, rec); err != nil {
			return SubmitOutput{}, newError(ErrorInternal, "dynamodb_write_error", err)
		}
	}

	return SubmitOutput{ID: rec.ID, Message: MessageSent}, nil
}

func (s *ContactService) screen(ctx context.Context, message string) bool {
	if s.screener == nil {
		return false
	}
	flagged, err := s.screener.Moderate(ctx, message)
	if err != nil {
		s.logger.WarnContext(ctx, "moderation unavailable, accepting unscreened", "err", err)
		return false
	}
	return flagged
}

var newUUID = func() string {
	return uuid.NewString()
}
