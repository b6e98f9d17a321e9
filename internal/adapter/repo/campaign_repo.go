package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"foundation/internal/domain"
)

// CampaignRepositoryPG implements domain.CampaignRepository backed by
// PostgreSQL. Amounts cross the boundary as int64 minor units and are
// stored as NUMERIC(12,2) major units; the conversion happens in SQL.
type CampaignRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository creates a new campaign repo.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepositoryPG {
	return &CampaignRepositoryPG{pool: pool}
}

// Create inserts a new campaign owned by c.OwnerID.
func (r *CampaignRepositoryPG) Create(ctx context.Context, c *domain.Campaign) error {
	row := r.pool.QueryRow(ctx, `
INSERT INTO campaigns (id, owner_id, title, description, goal_amount, raised_amount)
VALUES ($1, $2, $3, $4, $5::bigint::numeric / 100, 0)
RETURNING created_at;
`, c.ID, c.OwnerID, c.Title, c.Description, c.GoalAmount)

	if err := row.Scan(&c.CreatedAt); err != nil {
		return fmt.Errorf("insert campaign: %w", err)
	}
	return nil
}

// GetByID fetches a campaign by UUID.
func (r *CampaignRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, owner_id, title, description, (goal_amount * 100)::bigint, (raised_amount * 100)::bigint, created_at
FROM campaigns
WHERE id = $1;
`, id)
	return scanCampaign(row)
}

// ListRecent returns campaigns newest-first.
func (r *CampaignRepositoryPG) ListRecent(ctx context.Context, limit, offset int) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, owner_id, title, description, (goal_amount * 100)::bigint, (raised_amount * 100)::bigint, created_at
FROM campaigns
ORDER BY created_at DESC
LIMIT $1 OFFSET $2;
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Campaign
	for rows.Next() {
		var c domain.Campaign
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Title, &c.Description, &c.GoalAmount, &c.RaisedAmount, &c.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var c domain.Campaign
	if err := row.Scan(&c.ID, &c.OwnerID, &c.Title, &c.Description, &c.GoalAmount, &c.RaisedAmount, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}
