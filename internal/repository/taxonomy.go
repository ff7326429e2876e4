package repository

import (
	"context"

	"jurisight/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TaxonomyRepo struct {
	db *pgxpool.Pool
}

func NewTaxonomyRepo(db *pgxpool.Pool) *TaxonomyRepo { return &TaxonomyRepo{db: db} }

func (r *TaxonomyRepo) CreateSection(ctx context.Context, s *models.Section) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO sections (slug, title, description, position, is_active) VALUES ($1,$2,$3,$4,$5) RETURNING id`,
		s.Slug, s.Title, s.Description, s.Position, s.IsActive,
	).Scan(&id)
	return id, err
}

func (r *TaxonomyRepo) UpdateSection(ctx context.Context, s *models.Section) error {
	_, err := r.db.Exec(ctx,
		`UPDATE sections SET slug=$1, title=$2, description=$3, position=$4, is_active=$5, updated_at=now() WHERE id=$6`,
		s.Slug, s.Title, s.Description, s.Position, s.IsActive, s.ID,
	)
	return err
}

func (r *TaxonomyRepo) DeleteSection(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM sections WHERE id=$1`, id)
	return err
}

func (r *TaxonomyRepo) GetSection(ctx context.Context, id int64) (*models.Section, error) {
	const q = `SELECT id, slug, title, description, position, is_active, created_at, updated_at FROM sections WHERE id=$1`
	var s models.Section
	err := r.db.QueryRow(ctx, q, id).Scan(
		&s.ID, &s.Slug, &s.Title, &s.Description, &s.Position, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListSections returns active sections with their published-article counts.
func (r *TaxonomyRepo) ListSections(ctx context.Context) ([]models.SectionWithCount, error) {
	const q = `
		SELECT s.id, s.slug, s.title, s.description, s.position, s.is_active, s.created_at, s.updated_at,
		       COUNT(a.id) FILTER (WHERE a.status = 'PUBLISHED') AS articles_count
		FROM sections s
		LEFT JOIN articles a ON a.section_id = s.id
		WHERE s.is_active = TRUE
		GROUP BY s.id
		ORDER BY s.position, s.id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.SectionWithCount
	for rows.Next() {
		var item models.SectionWithCount
		s := &item.Section
		if err := rows.Scan(
			&s.ID, &s.Slug, &s.Title, &s.Description, &s.Position, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
			&item.ArticlesCount,
		); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}
