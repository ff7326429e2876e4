package repository

import (
	"context"

	"jurisight/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TagRepo interface {
	GetBySlug(ctx context.Context, slug string) (*models.Tag, error)
	Create(ctx context.Context, name, slug string) (*models.Tag, error)
	List(ctx context.Context) ([]*models.Tag, error)
}

type tagRepo struct{ db *pgxpool.Pool }

func NewTagRepo(db *pgxpool.Pool) TagRepo { return &tagRepo{db: db} }

func (r *tagRepo) GetBySlug(ctx context.Context, slug string) (*models.Tag, error) {
	const q = `SELECT id, name, slug, created_at FROM tags WHERE slug = $1`
	var t models.Tag
	if err := r.db.QueryRow(ctx, q, slug).Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tagRepo) Create(ctx context.Context, name, slug string) (*models.Tag, error) {
	const q = `INSERT INTO tags (name, slug) VALUES ($1, $2) RETURNING id, name, slug, created_at`
	var t models.Tag
	if err := r.db.QueryRow(ctx, q, name, slug).Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tagRepo) List(ctx context.Context) ([]*models.Tag, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, slug, created_at FROM tags ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Tag
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}
