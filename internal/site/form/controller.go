// Package form holds the contact form's client-side state and the submit
// round trip against the contact API.
package form

import (
	"context"
	"errors"
	"sync"

	"landing-site/internal/domain"
	"landing-site/internal/integrations/contactapi"
)

const (
	FeedbackSent        = "Thanks! Your message has been sent."
	FeedbackFailed      = "Something went wrong. Please try again."
	FeedbackUnreachable = "Unable to reach the server. Please check your connection and try again."
)

// Submitter sends a submission to the contact API.
type Submitter interface {
	Submit(ctx context.Context, sub domain.ContactSubmission) (contactapi.Response, error)
}

// State is what the form renders from.
type State struct {
	Email    string
	Message  string
	Loading  bool
	Success  bool
	Feedback string
}

// Controller drives one contact form. It does not guard against a second
// Submit while one is in flight.
type Controller struct {
	api      Submitter
	onChange func(State)

	mu    sync.Mutex
	state State
}

type Option func(*Controller)

// WithObserver registers fn to receive every state transition.
func WithObserver(fn func(State)) Option {
	return func(c *Controller) {
		c.onChange = fn
	}
}

func NewController(api Submitter, opts ...Option) (*Controller, error) {
	if api == nil {
		return nil, errors.New("form: submitter must not be nil")
	}
	c := &Controller{api: api}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) SetEmail(v string) {
	c.update(func(s *State) { s.Email = v })
}

func (c *Controller) SetMessage(v string) {
	c.update(func(s *State) { s.Message = v })
}

// Submit sends the current inputs and returns the resulting state. Loading is
// always false again when Submit returns.
func (c *Controller) Submit(ctx context.Context) State {
	var sub domain.ContactSubmission
	c.update(func(s *State) {
		s.Loading = true
		s.Success = false
		s.Feedback = ""
		sub = domain.ContactSubmission{Email: s.Email, Message: s.Message}
	})

	resp, err := c.api.Submit(ctx, sub)

	return c.update(func(s *State) {
		s.Loading = false
		var transportErr *contactapi.TransportError
		switch {
		case errors.As(err, &transportErr):
			s.Feedback = FeedbackUnreachable
		case err != nil:
			s.Feedback = FeedbackFailed
		case resp.OK():
			s.Success = true
			s.Email = ""
			s.Message = ""
			s.Feedback = orDefault(resp.Result.Message, FeedbackSent)
		default:
			s.Feedback = orDefault(resp.Result.Message, FeedbackFailed)
		}
	})
}

func (c *Controller) update(fn func(*State)) State {
	c.mu.Lock()
	fn(&c.state)
	snapshot := c.state
	c.mu.Unlock()

	if c.onChange != nil {
		c.onChange(snapshot)
	}
	return snapshot
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
