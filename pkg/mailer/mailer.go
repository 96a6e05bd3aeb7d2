// Package mailer sends transactional email through Resend.
package mailer

import (
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

type Sender interface {
	Send(to, subject, html string) error
}

type ResendSender struct {
	client *resend.Client
	from   string
}

func NewResend(apiKey, from string) *ResendSender {
	return &ResendSender{client: resend.NewClient(apiKey), from: from}
}

func (s *ResendSender) Send(to, subject, html string) error {
	_, err := s.client.Emails.Send(&resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	})
	return err
}

// LogSender only logs. Used when no API key is configured.
type LogSender struct{ Log *zap.Logger }

func (s LogSender) Send(to, subject, _ string) error {
	s.Log.Info("email not sent, no provider configured", zap.String("to", to), zap.String("subject", subject))
	return nil
}

// New picks Resend when apiKey is set.
func New(apiKey, from string, log *zap.Logger) Sender {
	if apiKey == "" {
		return LogSender{Log: log}
	}
	return NewResend(apiKey, from)
}
