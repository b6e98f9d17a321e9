package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"foundation/internal/domain"
)

// NewsRepositoryPG implements domain.NewsRepository backed by PostgreSQL.
type NewsRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewNewsRepository creates a new news repo.
func NewNewsRepository(pool *pgxpool.Pool) *NewsRepositoryPG {
	return &NewsRepositoryPG{pool: pool}
}

// Create inserts a new news article. A slug collision at the storage layer
// is reported as domain.ErrConflict.
func (r *NewsRepositoryPG) Create(ctx context.Context, n *domain.News) error {
	row := r.pool.QueryRow(ctx, `
INSERT INTO news (id, title, slug, content, link)
VALUES ($1, $2, $3, $4, $5)
RETURNING created_at;
`, n.ID, n.Title, n.Slug, n.Content, n.Link)

	if err := row.Scan(&n.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert news: %w", err)
	}
	return nil
}

// GetBySlug fetches one article by its unique slug.
func (r *NewsRepositoryPG) GetBySlug(ctx context.Context, slug string) (*domain.News, error) {
	row := r.pool.QueryRow(ctx, `SELECT id, title, slug, content, link, created_at FROM news WHERE slug = $1`, slug)
	var n domain.News
	if err := row.Scan(&n.ID, &n.Title, &n.Slug, &n.Content, &n.Link, &n.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

// SlugTaken reports whether an article with the slug already exists.
func (r *NewsRepositoryPG) SlugTaken(ctx context.Context, slug string) (bool, error) {
	row := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM news WHERE slug = $1)`, slug)
	var taken bool
	if err := row.Scan(&taken); err != nil {
		return false, err
	}
	return taken, nil
}

// ListRecent returns articles newest-first.
func (r *NewsRepositoryPG) ListRecent(ctx context.Context, limit, offset int) ([]domain.News, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, title, slug, content, link, created_at
FROM news
ORDER BY created_at DESC
LIMIT $1 OFFSET $2;
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.News
	for rows.Next() {
		var n domain.News
		if err := rows.Scan(&n.ID, &n.Title, &n.Slug, &n.Content, &n.Link, &n.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	return items, rows.Err()
}
