// Package impl is implementation of service interface.
package impl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/usly/internal/entities"
	"github.com/Decentr-net/usly/internal/service"
	"github.com/Decentr-net/usly/internal/storage"
)

// nolint:gochecknoglobals
var log = logrus.WithField("layer", "service").WithField("package", "impl")

// service ...
type srv struct {
	s storage.Storage
}

// New creates new instance of service.
func New(s storage.Storage) service.Service {
	return srv{
		s: s,
	}
}

func (s srv) SubmitFeedback(ctx context.Context, f *entities.Feedback) error {
	f.Message = strings.TrimSpace(f.Message)
	f.Type = strings.ToLower(strings.TrimSpace(f.Type))
	if f.Type == "" {
		f.Type = service.DefaultFeedbackType
	}

	switch {
	case f.Message == "":
		return fmt.Errorf("%w: message is empty", service.ErrInvalidFeedback)
	case utf8.RuneCountInString(f.Message) > service.MaxMessageLength:
		return fmt.Errorf("%w: message is longer than %d characters", service.ErrInvalidFeedback, service.MaxMessageLength)
	case len(f.Type) > service.MaxTypeLength:
		return fmt.Errorf("%w: type is too long", service.ErrInvalidFeedback)
	}

	if err := s.s.CreateFeedback(ctx, f); err != nil {
		return fmt.Errorf("failed to create feedback on s side: %w", err)
	}

	log.WithField("id", f.ID).WithField("type", f.Type).Info("feedback received")

	return nil
}

func (s srv) GetFeedback(ctx context.Context, id int64) (*entities.Feedback, error) {
	f, err := s.s.GetFeedback(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get feedback from s: %w", err)
	}

	return f, nil
}

func (s srv) ListFeedback(ctx context.Context, p service.ListFeedbackParams) ([]*entities.Feedback, error) {
	if p.Limit <= 0 {
		p.Limit = service.DefaultLimit
	}
	if p.Limit > service.MaxLimit {
		p.Limit = service.MaxLimit
	}

	ff, err := s.s.ListFeedback(ctx, storage.ListFeedbackParams{
		Type:   strings.ToLower(p.Type),
		Limit:  p.Limit,
		Before: p.Before,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback from s: %w", err)
	}

	return ff, nil
}
