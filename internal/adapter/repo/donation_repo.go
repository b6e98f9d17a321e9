package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"foundation/internal/domain"
)

// DonationRepositoryPG implements domain.DonationRepository backed by
// PostgreSQL.
type DonationRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewDonationRepository creates a new donation repo.
func NewDonationRepository(pool *pgxpool.Pool) *DonationRepositoryPG {
	return &DonationRepositoryPG{pool: pool}
}

// Create inserts a new donation record in pending state.
func (r *DonationRepositoryPG) Create(ctx context.Context, d *domain.Donation) error {
	row := r.pool.QueryRow(ctx, `
INSERT INTO donations (id, user_id, campaign_id, amount, currency, order_id, status, donor_country)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING created_at;
`, d.ID, d.UserID, d.CampaignID, d.Amount, d.Currency, d.OrderID, d.Status, d.DonorCountry)

	if err := row.Scan(&d.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert donation: %w", err)
	}
	return nil
}

// GetByOrderID fetches a donation by its gateway order handle.
func (r *DonationRepositoryPG) GetByOrderID(ctx context.Context, orderID string) (*domain.Donation, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, user_id, campaign_id, amount, currency, order_id, status, donor_country, created_at
FROM donations
WHERE order_id = $1;
`, orderID)

	var d domain.Donation
	if err := row.Scan(&d.ID, &d.UserID, &d.CampaignID, &d.Amount, &d.Currency, &d.OrderID, &d.Status, &d.DonorCountry, &d.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// ConfirmPaid transitions a pending donation to paid and credits the target
// campaign's raised_amount in the same transaction, so a confirmation that
// fails partway leaves the donation pending and retryable. Already-paid
// donations return ErrConflict, keeping gateway callbacks idempotent.
func (r *DonationRepositoryPG) ConfirmPaid(ctx context.Context, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin confirm: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
UPDATE donations SET status = 'paid' WHERE id = $1 AND status = 'pending';
`, id)
	if err != nil {
		return fmt.Errorf("update donation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConflict
	}

	// Affects no rows when the donation is not tied to a campaign.
	if _, err := tx.Exec(ctx, `
UPDATE campaigns c
SET raised_amount = c.raised_amount + d.amount::numeric / 100
FROM donations d
WHERE d.id = $1 AND c.id = d.campaign_id;
`, id); err != nil {
		return fmt.Errorf("credit campaign: %w", err)
	}

	return tx.Commit(ctx)
}

// ListRecent returns donations newest-first.
func (r *DonationRepositoryPG) ListRecent(ctx context.Context, limit int) ([]domain.Donation, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, user_id, campaign_id, amount, currency, order_id, status, donor_country, created_at
FROM donations
ORDER BY created_at DESC
LIMIT $1;
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Donation
	for rows.Next() {
		var d domain.Donation
		if err := rows.Scan(&d.ID, &d.UserID, &d.CampaignID, &d.Amount, &d.Currency, &d.OrderID, &d.Status, &d.DonorCountry, &d.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

// TotalPaid sums all paid donations in minor units.
func (r *DonationRepositoryPG) TotalPaid(ctx context.Context) (int64, error) {
	row := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM donations WHERE status = 'paid'`)
	var total int64
	if err := row.Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
