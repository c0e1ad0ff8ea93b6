package contact

import (
	"context"
	"errors"
	"regexp"
	"strings"
)

var (
	ErrNameRequired    = errors.New("name is required")
	ErrInvalidEmail    = errors.New("a valid email is required")
	ErrMessageRequired = errors.New("message is required")
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type Service struct {
	mailer Mailer
}

func NewService(mailer Mailer) *Service {
	return &Service{mailer: mailer}
}

func (s *Service) Submit(ctx context.Context, msg Message) error {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Message = strings.TrimSpace(msg.Message)

	if msg.Name == "" {
		return ErrNameRequired
	}
	if !emailPattern.MatchString(msg.Email) {
		return ErrInvalidEmail
	}
	if msg.Message == "" {
		return ErrMessageRequired
	}

	if msg.Subject == "" {
		msg.Subject = "New contact form submission"
	}

	return s.mailer.Send(ctx, msg)
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrNameRequired) ||
		errors.Is(err, ErrInvalidEmail) ||
		errors.Is(err, ErrMessageRequired)
}
