package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"foundation/internal/domain"
)

// MediaRepositoryPG implements domain.MediaRepository backed by PostgreSQL.
// Every media-centre entity lists newest-first.
type MediaRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewMediaRepository creates a new media repo.
func NewMediaRepository(pool *pgxpool.Pool) *MediaRepositoryPG {
	return &MediaRepositoryPG{pool: pool}
}

// CreatePodcast inserts a new podcast episode.
func (r *MediaRepositoryPG) CreatePodcast(ctx context.Context, p *domain.Podcast) error {
	row := r.pool.QueryRow(ctx, `
INSERT INTO podcasts (id, title, description, link)
VALUES ($1, $2, $3, $4)
RETURNING created_at;
`, p.ID, p.Title, p.Description, p.Link)
	if err := row.Scan(&p.CreatedAt); err != nil {
		return fmt.Errorf("insert podcast: %w", err)
	}
	return nil
}

// ListPodcasts returns podcasts newest-first.
func (r *MediaRepositoryPG) ListPodcasts(ctx context.Context, limit, offset int) ([]domain.Podcast, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, title, description, link, created_at
FROM podcasts
ORDER BY created_at DESC
LIMIT $1 OFFSET $2;
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Podcast
	for rows.Next() {
		var p domain.Podcast
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Link, &p.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

// CreateVideo inserts a new video entry.
func (r *MediaRepositoryPG) CreateVideo(ctx context.Context, v *domain.Video) error {
	row := r.pool.QueryRow(ctx, `
INSERT INTO videos (id, title, url)
VALUES ($1, $2, $3)
RETURNING created_at;
`, v.ID, v.Title, v.URL)
	if err := row.Scan(&v.CreatedAt); err != nil {
		return fmt.Errorf("insert video: %w", err)
	}
	return nil
}

// ListVideos returns videos newest-first.
func (r *MediaRepositoryPG) ListVideos(ctx context.Context, limit, offset int) ([]domain.Video, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, title, url, created_at
FROM videos
ORDER BY created_at DESC
LIMIT $1 OFFSET $2;
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Video
	for rows.Next() {
		var v domain.Video
		if err := rows.Scan(&v.ID, &v.Title, &v.URL, &v.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, rows.Err()
}

// CreatePressClipping inserts a new press clipping.
func (r *MediaRepositoryPG) CreatePressClipping(ctx context.Context, p *domain.PressClipping) error {
	row := r.pool.QueryRow(ctx, `
INSERT INTO press_clippings (id, title, image_url)
VALUES ($1, $2, $3)
RETURNING created_at;
`, p.ID, p.Title, p.ImageURL)
	if err := row.Scan(&p.CreatedAt); err != nil {
		return fmt.Errorf("insert press clipping: %w", err)
	}
	return nil
}

// ListPressClippings returns press clippings newest-first.
func (r *MediaRepositoryPG) ListPressClippings(ctx context.Context, limit, offset int) ([]domain.PressClipping, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, title, image_url, created_at
FROM press_clippings
ORDER BY created_at DESC
LIMIT $1 OFFSET $2;
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.PressClipping
	for rows.Next() {
		var p domain.PressClipping
		if err := rows.Scan(&p.ID, &p.Title, &p.ImageURL, &p.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

// CreateEventPhoto inserts a new event photo.
func (r *MediaRepositoryPG) CreateEventPhoto(ctx context.Context, p *domain.EventPhoto) error {
	row := r.pool.QueryRow(ctx, `
INSERT INTO event_photos (id, image_url)
VALUES ($1, $2)
RETURNING created_at;
`, p.ID, p.ImageURL)
	if err := row.Scan(&p.CreatedAt); err != nil {
		return fmt.Errorf("insert event photo: %w", err)
	}
	return nil
}

// ListEventPhotos returns event photos newest-first.
func (r *MediaRepositoryPG) ListEventPhotos(ctx context.Context, limit, offset int) ([]domain.EventPhoto, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, image_url, created_at
FROM event_photos
ORDER BY created_at DESC
LIMIT $1 OFFSET $2;
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.EventPhoto
	for rows.Next() {
		var p domain.EventPhoto
		if err := rows.Scan(&p.ID, &p.ImageURL, &p.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

// CreateReview inserts a new review.
func (r *MediaRepositoryPG) CreateReview(ctx context.Context, rv *domain.Review) error {
	row := r.pool.QueryRow(ctx, `
INSERT INTO reviews (id, title, image_url, video_url)
VALUES ($1, $2, $3, $4)
RETURNING created_at;
`, rv.ID, rv.Title, rv.ImageURL, rv.VideoURL)
	if err := row.Scan(&rv.CreatedAt); err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

// ListReviews returns reviews newest-first.
func (r *MediaRepositoryPG) ListReviews(ctx context.Context, limit, offset int) ([]domain.Review, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, title, image_url, video_url, created_at
FROM reviews
ORDER BY created_at DESC
LIMIT $1 OFFSET $2;
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Review
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.Title, &rv.ImageURL, &rv.VideoURL, &rv.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, rv)
	}
	return items, rows.Err()
}
