package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/tahir826/restweb/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ContactRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewContactRepo(db *dbpg.DB) *ContactRepository {
	return &ContactRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ContactRepository) Create(ctx context.Context, m *domain.ContactMessage) error {
	query := `INSERT INTO contact_messages (name, email, subject, message)
			  VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, m.Name, m.Email, m.Subject, m.Message)
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}

	return nil
}
