package service

import (
	"context"
	"time"
)

// VerificationEvent asks the external notifier to deliver a verification link.
type VerificationEvent struct {
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	IssuedAt  time.Time `json:"issued_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishVerificationEvent hands a freshly issued token to the notifier
	PublishVerificationEvent(ctx context.Context, event *VerificationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
