// Package postgres is implementation of storage interface.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/usly/internal/entities"
	"github.com/Decentr-net/usly/internal/storage"
)

var log = logrus.WithField("layer", "storage").WithField("package", "postgres") // nolint:gochecknoglobals

const checkViolation = "23514"

var errInvalidFeedback = errors.New("invalid feedback")

type pg struct {
	db *sqlx.DB
}

type feedbackDTO struct {
	ID        int64     `db:"id"`
	Type      string    `db:"type"`
	Message   string    `db:"message"`
	View      string    `db:"view"`
	Role      string    `db:"role"`
	IP        string    `db:"ip"`
	CreatedAt time.Time `db:"created_at"`
}

func (d feedbackDTO) toEntity() *entities.Feedback {
	return &entities.Feedback{
		ID:        d.ID,
		Type:      d.Type,
		Message:   d.Message,
		View:      d.View,
		Role:      d.Role,
		IP:        d.IP,
		CreatedAt: d.CreatedAt,
	}
}

// New creates new instance of pg.
func New(db *sql.DB) storage.Storage {
	return pg{
		db: sqlx.NewDb(db, "postgres"),
	}
}

func (s pg) CreateFeedback(ctx context.Context, f *entities.Feedback) error {
	dto := feedbackDTO{
		Type:    f.Type,
		Message: f.Message,
		View:    f.View,
		Role:    f.Role,
		IP:      f.IP,
	}

	query, args, err := s.db.BindNamed(`
			INSERT INTO feedback(type, message, view, role, ip)
			VALUES(:type, :message, :view, :role, :ip)
			RETURNING id, created_at
		`, dto)
	if err != nil {
		return fmt.Errorf("failed to bind: %w", err)
	}

	if err := s.db.QueryRowxContext(ctx, query, args...).Scan(&dto.ID, &dto.CreatedAt); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == checkViolation {
			return fmt.Errorf("%w: %s", errInvalidFeedback, err.Constraint)
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	f.ID = dto.ID
	f.CreatedAt = dto.CreatedAt.UTC()

	log.WithField("id", f.ID).Debug("feedback created")

	return nil
}

func (s pg) GetFeedback(ctx context.Context, id int64) (*entities.Feedback, error) {
	var dto feedbackDTO

	if err := sqlx.GetContext(ctx, s.db, &dto, `
			SELECT id, type, message, view, role, ip, created_at
			FROM feedback
			WHERE id = $1
		`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return dto.toEntity(), nil
}

func (s pg) ListFeedback(ctx context.Context, p storage.ListFeedbackParams) ([]*entities.Feedback, error) {
	var dd []feedbackDTO

	if err := sqlx.SelectContext(ctx, s.db, &dd, `
			SELECT id, type, message, view, role, ip, created_at
			FROM feedback
			WHERE ($1::TEXT = '' OR type = $1) AND ($2::BIGINT = 0 OR id < $2)
			ORDER BY id DESC
			LIMIT $3
		`, p.Type, p.Before, p.Limit,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Feedback, len(dd))
	for i, v := range dd {
		out[i] = v.toEntity()
	}

	return out, nil
}

func (s pg) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping postgres: %w", err)
	}
	return nil
}
