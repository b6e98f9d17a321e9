package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"foundation/internal/domain"
)

// ProjectRepositoryPG implements domain.ProjectRepository backed by
// PostgreSQL.
type ProjectRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewProjectRepository creates a new project repo.
func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepositoryPG {
	return &ProjectRepositoryPG{pool: pool}
}

// Create inserts a new foundation project.
func (r *ProjectRepositoryPG) Create(ctx context.Context, p *domain.Project) error {
	row := r.pool.QueryRow(ctx, `
INSERT INTO projects (id, title, description, image_url)
VALUES ($1, $2, $3, $4)
RETURNING created_at, updated_at;
`, p.ID, p.Title, p.Description, p.ImageURL)

	if err := row.Scan(&p.CreatedAt, &p.UpdatedAt); err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// GetByID fetches a project by UUID.
func (r *ProjectRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	row := r.pool.QueryRow(ctx, `SELECT id, title, description, image_url, created_at, updated_at FROM projects WHERE id = $1`, id)
	var p domain.Project
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// ListRecent returns projects newest-first.
func (r *ProjectRepositoryPG) ListRecent(ctx context.Context, limit, offset int) ([]domain.Project, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, title, description, image_url, created_at, updated_at
FROM projects
ORDER BY created_at DESC
LIMIT $1 OFFSET $2;
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Project
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}
