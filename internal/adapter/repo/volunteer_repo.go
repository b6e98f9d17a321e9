package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"foundation/internal/domain"
)

// VolunteerRepositoryPG implements domain.VolunteerRepository backed by
// PostgreSQL.
type VolunteerRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewVolunteerRepository creates a new volunteer repo.
func NewVolunteerRepository(pool *pgxpool.Pool) *VolunteerRepositoryPG {
	return &VolunteerRepositoryPG{pool: pool}
}

// Create inserts a new volunteer signup.
func (r *VolunteerRepositoryPG) Create(ctx context.Context, v *domain.Volunteer) error {
	row := r.pool.QueryRow(ctx, `
INSERT INTO volunteers (id, full_name, email, phone, availability, message, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING created_at;
`, v.ID, v.FullName, v.Email, v.Phone, v.Availability, v.Message, v.IsActive)

	if err := row.Scan(&v.CreatedAt); err != nil {
		return fmt.Errorf("insert volunteer: %w", err)
	}
	return nil
}

// ListRecent returns volunteers newest-first.
func (r *VolunteerRepositoryPG) ListRecent(ctx context.Context, limit, offset int) ([]domain.Volunteer, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, full_name, email, phone, availability, message, is_active, created_at
FROM volunteers
ORDER BY created_at DESC
LIMIT $1 OFFSET $2;
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Volunteer
	for rows.Next() {
		var v domain.Volunteer
		if err := rows.Scan(&v.ID, &v.FullName, &v.Email, &v.Phone, &v.Availability, &v.Message, &v.IsActive, &v.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, rows.Err()
}

// SetActive toggles the administrative is_active flag.
func (r *VolunteerRepositoryPG) SetActive(ctx context.Context, id string, active bool) error {
	tag, err := r.pool.Exec(ctx, `UPDATE volunteers SET is_active = $2 WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("update volunteer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
