// Package notify delivers best-effort operational email. Senders are
// fire-and-forget: a failed delivery is logged and never fails the
// operation that triggered it.
package notify

import "context"

// Message is a plain-text notification.
type Message struct {
	Subject string
	Body    string
}

// Notifier sends a message, honoring ctx for cancellation.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

// Nop discards every message. Used when SMTP is not configured.
type Nop struct{}

func (Nop) Send(ctx context.Context, msg Message) error { return nil }
