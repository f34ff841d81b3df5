// Package storage contains a storage interface.
package storage

import (
	"context"
	"fmt"

	"github.com/Decentr-net/usly/internal/entities"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

// ErrNotFound ...
var ErrNotFound = fmt.Errorf("not found")

// Storage provides methods for interacting with database.
type Storage interface {
	CreateFeedback(ctx context.Context, f *entities.Feedback) error
	GetFeedback(ctx context.Context, id int64) (*entities.Feedback, error)
	ListFeedback(ctx context.Context, p ListFeedbackParams) ([]*entities.Feedback, error)
	Ping(ctx context.Context) error
}

// ListFeedbackParams ...
type ListFeedbackParams struct {
	// Type filters feedback by type when it is not empty.
	Type  string
	Limit int
	// Before sets a not-including upper bound for id.
	Before int64
}
