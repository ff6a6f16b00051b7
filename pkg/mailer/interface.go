// Package mailer sends transactional emails such as team invitations.
package mailer

import "context"

// Message is a rendered email.
type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Sender delivers messages.
//
//go:generate mockgen -package mockmailer -source=interface.go -destination=mock/mockmailer.go *
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
