// Package mail provides the outbound email transport.
package mail

import "context"

// Message is a single outbound email payload.
type Message struct {
	To      string
	From    string
	Subject string
	HTML    string

	// NoticeID correlates the message with application logs. Sent as the
	// X-Notice-Id header when set.
	NoticeID string
}

// Sender dispatches a message to the email provider. Success or failure of the
// send call is the only transport signal the application observes.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
