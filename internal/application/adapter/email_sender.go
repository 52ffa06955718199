// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// QueueCoachingDigestInput represents the input for queueing a coaching digest email.
type QueueCoachingDigestInput struct {
	UserEmail       string
	UserName        string
	TopCategory     string
	TopAmount       string
	Recommendations []string
	Insights        []string
	SavingsPotential string
}

// EmailService defines the interface for queueing emails.
type EmailService interface {
	// QueueCoachingDigest queues a coaching digest email for a user.
	QueueCoachingDigest(ctx context.Context, input QueueCoachingDigestInput) error
}
