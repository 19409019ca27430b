package mailer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"text/template"
	"time"

	"gopkg.in/mail.v2"
)

type SMTPMailer struct {
	fromEmail string
	fromName  string
	send      func(context.Context, *mail.Message) error
	backoff   time.Duration
}

func NewSMTPMailer(host string, port int, username, password, fromEmail, fromName string) (*SMTPMailer, error) {
	if host == "" {
		return nil, errors.New("smtp host is required")
	}
	if fromEmail == "" {
		return nil, errors.New("from email is required")
	}
	if fromName == "" {
		fromName = FromName
	}

	dialer := mail.NewDialer(host, port, username, password)
	dialer.Timeout = 10 * time.Second

	return &SMTPMailer{
		fromEmail: fromEmail,
		fromName:  fromName,
		send: func(ctx context.Context, m *mail.Message) error {
			return dialAndSend(ctx, dialer, m)
		},
		backoff:   time.Second,
	}, nil
}

// Send renders templateFile and delivers it, retrying with linear backoff
// until ctx is done. It returns the number of attempts made.
func (m *SMTPMailer) Send(ctx context.Context, templateFile, username, email string, data any) (int, error) {
	subject, body, err := Render(templateFile, data)
	if err != nil {
		return 0, err
	}

	msg := mail.NewMessage()
	msg.SetAddressHeader("From", m.fromEmail, m.fromName)
	msg.SetAddressHeader("To", email, username)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	var lastErr error
	for attempt := 1; attempt <= maxRetires; attempt++ {
		if err := ctx.Err(); err != nil {
			return attempt - 1, fmt.Errorf("email not sent: %w", err)
		}
		if lastErr = m.send(ctx, msg); lastErr == nil {
			return attempt, nil
		}
		if attempt == maxRetires {
			break
		}
		select {
		case <-ctx.Done():
			return attempt, fmt.Errorf("email not sent after %d attempts: %w", attempt, lastErr)
		case <-time.After(m.backoff * time.Duration(attempt)):
		}
	}
	return maxRetires, fmt.Errorf("failed to send email after %d attempts: %w", maxRetires, lastErr)
}

// dialAndSend returns as soon as ctx is done. The dial itself is bounded by
// the dialer timeout and finishes in the background.
func dialAndSend(ctx context.Context, d *mail.Dialer, msg *mail.Message) error {
	done := make(chan error, 1)
	go func() {
		done <- d.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Render executes the "subject" and "body" blocks of an embedded template.
func Render(templateFile string, data any) (string, string, error) {
	tmpl, err := template.ParseFS(FS, "templates/"+templateFile)
	if err != nil {
		return "", "", err
	}

	subject := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(subject, "subject", data); err != nil {
		return "", "", err
	}

	body := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(body, "body", data); err != nil {
		return "", "", err
	}

	return subject.String(), body.String(), nil
}
