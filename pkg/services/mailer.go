package services

import (
	"context"
	"fmt"
	"net/smtp"

	"cubita-site/pkg/config"
)

// Message is one outbound transactional email. From may carry a display
// name; the envelope sender is always the configured default address.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

// Mailer sends a single email, best effort, synchronously.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPMailer sends mail through the configured SMTP relay.
type SMTPMailer struct {
	host         string
	port         string
	user         string
	pass         string
	envelopeFrom string
}

func NewSMTPMailer() *SMTPMailer {
	return &SMTPMailer{
		host:         config.SMTPHost,
		port:         config.SMTPPort,
		user:         config.SMTPUser,
		pass:         config.SMTPPass,
		envelopeFrom: config.EmailFrom,
	}
}

func (m *SMTPMailer) Send(_ context.Context, msg Message) error {
	addr := m.host + ":" + m.port

	headers := fmt.Sprintf("From: %s\r\nTo: %s\r\n", msg.From, msg.To)
	if msg.ReplyTo != "" {
		headers += fmt.Sprintf("Reply-To: %s\r\n", msg.ReplyTo)
	}
	headers += fmt.Sprintf("Subject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n", msg.Subject)

	var auth smtp.Auth
	if m.pass != "" {
		auth = smtp.PlainAuth("", m.user, m.pass, m.host)
	}

	return smtp.SendMail(addr, auth, m.envelopeFrom, []string{msg.To}, []byte(headers+msg.HTML))
}
