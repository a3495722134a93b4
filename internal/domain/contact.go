package domain

import "time"

// ContactSubmission is the email and message pair sent from the landing page
// contact form to the submission endpoint.
type ContactSubmission struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

// SubmissionRecord is the log entry written for an accepted submission.
type SubmissionRecord struct {
	ID            string
	Email         string
	Message       string
	CorrelationID string
	ReceivedAt    time.Time
	Flagged       bool
}

// ContactResult is the endpoint's response payload.
type ContactResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
