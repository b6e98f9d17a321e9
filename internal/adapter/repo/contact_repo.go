package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"foundation/internal/domain"
)

// ContactMessageRepositoryPG implements domain.ContactMessageRepository
// backed by PostgreSQL.
type ContactMessageRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewContactMessageRepository creates a new contact message repo.
func NewContactMessageRepository(pool *pgxpool.Pool) *ContactMessageRepositoryPG {
	return &ContactMessageRepositoryPG{pool: pool}
}

// Create inserts a new contact message. submitted_at is set by the store
// and never updated afterwards.
func (r *ContactMessageRepositoryPG) Create(ctx context.Context, msg *domain.ContactMessage) error {
	row := r.pool.QueryRow(ctx, `
INSERT INTO contact_messages (id, name, email, subject, message)
VALUES ($1, $2, $3, $4, $5)
RETURNING submitted_at;
`, msg.ID, msg.Name, msg.Email, msg.Subject, msg.Message)

	if err := row.Scan(&msg.SubmittedAt); err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}

// ListRecent returns contact messages newest-first.
func (r *ContactMessageRepositoryPG) ListRecent(ctx context.Context, limit, offset int) ([]domain.ContactMessage, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, name, email, subject, message, submitted_at
FROM contact_messages
ORDER BY submitted_at DESC
LIMIT $1 OFFSET $2;
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.ContactMessage
	for rows.Next() {
		var m domain.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.SubmittedAt); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}
