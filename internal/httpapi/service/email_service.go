package service

import (
	"context"
	"errors"
	"log/slog"

	"bookstore/internal/httpapi/repository"
	"bookstore/internal/mail"
)

var ErrNoRecipients = errors.New("no recipients resolved")

// EmailService sends the staff broadcast mail, from the acting user's own
// address, to the selected accounts.
type EmailService interface {
	Broadcast(ctx context.Context, senderID string, recipientIDs []string, subject, body string) error
}

type emailService struct {
	userRepo repository.UserRepository
	mailer   mail.Mailer
	logger   *slog.Logger
}

func NewEmailService(userRepo repository.UserRepository, mailer mail.Mailer, logger *slog.Logger) EmailService {
	return &emailService{userRepo: userRepo, mailer: mailer, logger: logger}
}

func (s *emailService) Broadcast(ctx context.Context, senderID string, recipientIDs []string, subject, body string) error {
	// reject header injection before touching the database
	if err := mail.CheckHeader(subject); err != nil {
		return err
	}

	sender, err := s.userRepo.FindByID(ctx, senderID)
	if err != nil {
		return err
	}

	addresses, err := s.userRepo.EmailsByIDs(ctx, recipientIDs)
	if err != nil {
		return err
	}
	if len(addresses) == 0 {
		return ErrNoRecipients
	}

	if err := s.mailer.Send(sender.Email, addresses, subject, body); err != nil {
		return err
	}
	s.logger.Info("broadcast mail sent", "sender", sender.Username, "recipients", len(addresses))
	return nil
}
