// Package service contains interface for service business-logic.
package service

import (
	"context"
	"errors"

	"github.com/Decentr-net/usly/internal/entities"
)

//go:generate mockgen -destination=./mock/service.go -package=mock -source=service.go

// Feedback limits.
const (
	DefaultFeedbackType = "bug"
	MaxMessageLength    = 1000
	MaxTypeLength       = 32
	DefaultLimit        = 20
	MaxLimit            = 100
)

// ErrInvalidFeedback is returned when feedback doesn't pass validation.
var ErrInvalidFeedback = errors.New("invalid feedback")

// ErrNotFound is returned when requested feedback does not exist.
var ErrNotFound = errors.New("not found")

// ListFeedbackParams ...
type ListFeedbackParams struct {
	Type   string
	Limit  int
	Before int64
}

// Service ...
type Service interface {
	SubmitFeedback(ctx context.Context, f *entities.Feedback) error
	GetFeedback(ctx context.Context, id int64) (*entities.Feedback, error)
	ListFeedback(ctx context.Context, p ListFeedbackParams) ([]*entities.Feedback, error)
}
