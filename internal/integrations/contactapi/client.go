package contactapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"landing-site/internal/domain"
)

// TransportError means no HTTP response was obtained from the API.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("contactapi: %s unreachable: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError means the API answered but the body was not a contact result.
type DecodeError struct {
	StatusCode int
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("contactapi: decode response (status %d): %v", e.StatusCode, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Response is the decoded reply of POST /contact.
type Response struct {
	StatusCode int
	Result     domain.ContactResult
}

// OK reports whether the API accepted the submission.
func (r Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300 && r.Result.Success
}

// Client posts contact submissions to the submission endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the default client. No timeout is set by default;
// callers bound requests through the context.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("contactapi: base url must not be empty")
	}
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) contactURL() string {
	return c.baseURL + "/contact"
}

// Submit sends one submission. Non-2xx replies are not errors: the decoded
// body is returned so the caller can show the server's message.
func (c *Client) Submit(ctx context.Context, sub domain.ContactSubmission) (Response, error) {
	body, err := json.Marshal(sub)
	if err != nil {
		return Response{}, fmt.Errorf("contactapi: marshal submission: %w", err)
	}

	url := c.contactURL()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("contactapi: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, &TransportError{URL: url, Err: err}
	}
	defer func() { _ = res.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(res.Body, 64<<10))
	if err != nil {
		return Response{}, &TransportError{URL: url, Err: err}
	}

	out := Response{StatusCode: res.StatusCode}
	if err := json.Unmarshal(raw, &out.Result); err != nil {
		return out, &DecodeError{StatusCode: res.StatusCode, Err: err}
	}
	return out, nil
}
