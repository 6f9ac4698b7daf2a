// Package notify is the outbound notification capability used by the public
// intake workflows. The log notifier is the default; Resend is used when an
// API key is configured.
package notify

import (
	"context"
	"log"
)

type Notification struct {
	To      string
	Subject string
	Body    string
}

type Notifier interface {
	Send(ctx context.Context, n Notification) error
}

// LogNotifier writes notifications to the server log instead of sending
// them anywhere.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (l *LogNotifier) Send(_ context.Context, n Notification) error {
	log.Printf("notification to=%s subject=%q", n.To, n.Subject)
	return nil
}
