package mail

import (
	"errors"
	"strings"

	"gopkg.in/gomail.v2"
)

// ErrBadHeader is returned when a header field carries CR or LF. Such
// input is rejected outright, never stripped, so a crafted subject cannot
// smuggle extra headers into the message.
var ErrBadHeader = errors.New("invalid input")

// Mailer sends a single message to a list of recipients.
type Mailer interface {
	Send(from string, to []string, subject, body string) error
}

// SMTPMailer delivers mail over a plain SMTP dialer.
type SMTPMailer struct {
	dialer *gomail.Dialer
}

func NewSMTPMailer(host string, port int, username, password string) *SMTPMailer {
	return &SMTPMailer{dialer: gomail.NewDialer(host, port, username, password)}
}

func (m *SMTPMailer) Send(from string, to []string, subject, body string) error {
	if err := CheckHeader(from); err != nil {
		return err
	}
	if err := CheckHeader(subject); err != nil {
		return err
	}
	for _, addr := range to {
		if err := CheckHeader(addr); err != nil {
			return err
		}
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	return m.dialer.DialAndSend(msg)
}

// CheckHeader rejects values that would break out of their header line.
func CheckHeader(value string) error {
	if strings.ContainsAny(value, "\r\n") {
		return ErrBadHeader
	}
	return nil
}
