package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/tahir826/restweb/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type TeamMemberRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTeamMemberRepo(db *dbpg.DB) *TeamMemberRepository {
	return &TeamMemberRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *TeamMemberRepository) Create(ctx context.Context, m *domain.TeamMember) error {
	query := `INSERT INTO team_members (image_path, name, designation, description)
			  VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, m.ImagePath, m.Name, m.Designation, m.Description)
	if err != nil {
		return fmt.Errorf("insert team member: %w", err)
	}

	return nil
}

func (r *TeamMemberRepository) List(ctx context.Context) ([]*domain.TeamMember, error) {
	query := `SELECT id, image_path, name, designation, description, created_at
			  FROM team_members`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	defer rows.Close()

	var res []*domain.TeamMember
	for rows.Next() {
		var m domain.TeamMember
		if err = rows.Scan(&m.ID, &m.ImagePath, &m.Name, &m.Designation, &m.Description, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan team member: %w", err)
		}
		res = append(res, &m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate team members: %w", err)
	}

	if len(res) == 0 {
		return nil, domain.ErrNoTeamMembers
	}

	return res, nil
}

func (r *TeamMemberRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM team_members WHERE id = $1`

	result, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("delete team member: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete team member rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrTeamMemberNotFound
	}

	return nil
}
