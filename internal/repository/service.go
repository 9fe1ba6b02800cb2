package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/tahir826/restweb/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ServiceRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewServiceRepo(db *dbpg.DB) *ServiceRepository {
	return &ServiceRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	query := `INSERT INTO services (image_path, name, description)
			  VALUES ($1, $2, $3)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, s.ImagePath, s.Name, s.Description)
	if err != nil {
		return fmt.Errorf("insert service: %w", err)
	}

	return nil
}

func (r *ServiceRepository) List(ctx context.Context) ([]*domain.Service, error) {
	query := `SELECT id, image_path, name, description, created_at
			  FROM services`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	var res []*domain.Service
	for rows.Next() {
		var s domain.Service
		if err = rows.Scan(&s.ID, &s.ImagePath, &s.Name, &s.Description, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		res = append(res, &s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate services: %w", err)
	}

	if len(res) == 0 {
		return nil, domain.ErrNoServices
	}

	return res, nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM services WHERE id = $1`

	result, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete service rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrServiceNotFound
	}

	return nil
}
