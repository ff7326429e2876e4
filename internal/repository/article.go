package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"jurisight/internal/models"
	"jurisight/internal/workflow"
)

type ArticleRepo interface {
	Create(ctx context.Context, a *models.Article) (*models.Article, error)
	GetByID(ctx context.Context, id int64) (*models.Article, error)
	GetDetail(ctx context.Context, id int64) (*models.ArticleDetail, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*models.Article, error)
	ListDashboard(ctx context.Context, authorID *int64, limit, offset int) ([]*models.Article, error)
	ListPublished(ctx context.Context, sectionID *int64, tagSlug string, limit, offset int) ([]*models.Article, error)
	Update(ctx context.Context, a *models.Article) error
	Delete(ctx context.Context, id int64) error
	SetTags(ctx context.Context, articleID int64, tagIDs []int64) error
	GetTagNames(ctx context.Context, articleID int64) ([]string, error)
	DeleteTagLinks(ctx context.Context, articleID int64) error
	DeleteCitations(ctx context.Context, articleID int64) error
	DeleteSourceLinks(ctx context.Context, articleID int64) error
	AddViews(ctx context.Context, id int64, delta int64) error
	CountByStatus(ctx context.Context) (map[workflow.Status]int, error)
	TotalViews(ctx context.Context) (int64, error)
}

type articleRepo struct{ db *pgxpool.Pool }

func NewArticleRepo(db *pgxpool.Pool) ArticleRepo { return &articleRepo{db: db} }

const articleColumns = `id, slug, title, dek, body, featured_image, reading_time, section_id,
	status, published_at, scheduled_at, is_featured, featured_at, is_top_news, top_news_at,
	author_id, views, created_at, updated_at`

func scanArticle(row interface{ Scan(dest ...any) error }) (*models.Article, error) {
	var a models.Article
	var status string
	if err := row.Scan(
		&a.ID, &a.Slug, &a.Title, &a.Dek, &a.Body, &a.FeaturedImage, &a.ReadingTime, &a.SectionID,
		&status, &a.PublishedAt, &a.ScheduledAt, &a.IsFeatured, &a.FeaturedAt, &a.IsTopNews, &a.TopNewsAt,
		&a.AuthorID, &a.Views, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	a.Status = workflow.Status(status)
	return &a, nil
}

func (r *articleRepo) Create(ctx context.Context, a *models.Article) (*models.Article, error) {
	q := fmt.Sprintf(`
		INSERT INTO articles (slug, title, dek, body, featured_image, reading_time, section_id, status, author_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING %s`, articleColumns)

	return scanArticle(r.db.QueryRow(ctx, q,
		a.Slug, a.Title, a.Dek, a.Body, a.FeaturedImage, a.ReadingTime, a.SectionID, string(a.Status), a.AuthorID,
	))
}

func (r *articleRepo) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	q := fmt.Sprintf(`SELECT %s FROM articles WHERE id=$1`, articleColumns)
	return scanArticle(r.db.QueryRow(ctx, q, id))
}

func (r *articleRepo) GetDetail(ctx context.Context, id int64) (*models.ArticleDetail, error) {
	const q = `
		SELECT a.id, a.slug, a.title, a.dek, a.body, a.featured_image, a.reading_time, a.section_id,
		       a.status, a.published_at, a.scheduled_at, a.is_featured, a.featured_at, a.is_top_news, a.top_news_at,
		       a.author_id, a.views, a.created_at, a.updated_at,
		       u.id, u.full_name, u.email, u.role,
		       s.id, s.slug, s.title, s.description, s.position, s.is_active, s.created_at, s.updated_at
		FROM articles a
		JOIN users u ON u.id = a.author_id
		JOIN sections s ON s.id = a.section_id
		WHERE a.id = $1`

	var d models.ArticleDetail
	var status, authorRole string
	err := r.db.QueryRow(ctx, q, id).Scan(
		&d.ID, &d.Slug, &d.Title, &d.Dek, &d.Body, &d.FeaturedImage, &d.ReadingTime, &d.SectionID,
		&status, &d.PublishedAt, &d.ScheduledAt, &d.IsFeatured, &d.FeaturedAt, &d.IsTopNews, &d.TopNewsAt,
		&d.AuthorID, &d.Views, &d.CreatedAt, &d.UpdatedAt,
		&d.Author.ID, &d.Author.FullName, &d.Author.Email, &authorRole,
		&d.Section.ID, &d.Section.Slug, &d.Section.Title, &d.Section.Description,
		&d.Section.Position, &d.Section.IsActive, &d.Section.CreatedAt, &d.Section.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	d.Status = workflow.Status(status)
	d.Author.Role = workflow.Role(authorRole)

	d.Tags, err = r.GetTagNames(ctx, id)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *articleRepo) GetPublishedBySlug(ctx context.Context, slug string) (*models.Article, error) {
	q := fmt.Sprintf(`SELECT %s FROM articles WHERE slug=$1 AND status='PUBLISHED'`, articleColumns)
	return scanArticle(r.db.QueryRow(ctx, q, slug))
}

func (r *articleRepo) ListDashboard(ctx context.Context, authorID *int64, limit, offset int) ([]*models.Article, error) {
	q := fmt.Sprintf(`SELECT %s FROM articles`, articleColumns)
	args := []interface{}{}
	i := 1

	if authorID != nil {
		q += fmt.Sprintf(" WHERE author_id = $%d", i)
		args = append(args, *authorID)
		i++
	}
	q += fmt.Sprintf(" ORDER BY updated_at DESC LIMIT $%d OFFSET $%d", i, i+1)
	args = append(args, limit, offset)

	return r.list(ctx, q, args...)
}

func (r *articleRepo) ListPublished(ctx context.Context, sectionID *int64, tagSlug string, limit, offset int) ([]*models.Article, error) {
	q := fmt.Sprintf(`SELECT %s FROM articles`, articleColumns)
	where := []string{"status = 'PUBLISHED'"}
	args := []interface{}{}
	i := 1

	if sectionID != nil {
		where = append(where, fmt.Sprintf("section_id = $%d", i))
		args = append(args, *sectionID)
		i++
	}
	if tagSlug != "" {
		where = append(where, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM article_tags at JOIN tags t ON t.id = at.tag_id
			WHERE at.article_id = articles.id AND t.slug = $%d
		)`, i))
		args = append(args, tagSlug)
		i++
	}

	q += " WHERE " + strings.Join(where, " AND ")
	q += fmt.Sprintf(" ORDER BY published_at DESC LIMIT $%d OFFSET $%d", i, i+1)
	args = append(args, limit, offset)

	return r.list(ctx, q, args...)
}

func (r *articleRepo) list(ctx context.Context, q string, args ...interface{}) ([]*models.Article, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *articleRepo) Update(ctx context.Context, a *models.Article) error {
	const q = `
		UPDATE articles
		SET slug=$1,
		    title=$2,
		    dek=$3,
		    body=$4,
		    featured_image=$5,
		    reading_time=$6,
		    section_id=$7,
		    status=$8,
		    published_at=$9,
		    scheduled_at=$10,
		    is_featured=$11,
		    featured_at=$12,
		    is_top_news=$13,
		    top_news_at=$14,
		    updated_at=NOW()
		WHERE id=$15`
	_, err := r.db.Exec(ctx, q,
		a.Slug, a.Title, a.Dek, a.Body, a.FeaturedImage, a.ReadingTime, a.SectionID,
		string(a.Status), a.PublishedAt, a.ScheduledAt,
		a.IsFeatured, a.FeaturedAt, a.IsTopNews, a.TopNewsAt, a.ID,
	)
	return err
}

func (r *articleRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, "DELETE FROM articles WHERE id=$1", id)
	return err
}

func (r *articleRepo) SetTags(ctx context.Context, articleID int64, tagIDs []int64) error {
	if _, err := r.db.Exec(ctx, "DELETE FROM article_tags WHERE article_id=$1", articleID); err != nil {
		return err
	}
	for _, tagID := range tagIDs {
		if _, err := r.db.Exec(ctx,
			"INSERT INTO article_tags (article_id, tag_id) VALUES ($1,$2) ON CONFLICT DO NOTHING",
			articleID, tagID,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *articleRepo) GetTagNames(ctx context.Context, articleID int64) ([]string, error) {
	const q = `
		SELECT t.name FROM tags t
		JOIN article_tags at ON at.tag_id = t.id
		WHERE at.article_id = $1
		ORDER BY t.name`
	rows, err := r.db.Query(ctx, q, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *articleRepo) DeleteTagLinks(ctx context.Context, articleID int64) error {
	_, err := r.db.Exec(ctx, "DELETE FROM article_tags WHERE article_id=$1", articleID)
	return err
}

func (r *articleRepo) DeleteCitations(ctx context.Context, articleID int64) error {
	_, err := r.db.Exec(ctx, "DELETE FROM article_citations WHERE article_id=$1", articleID)
	return err
}

func (r *articleRepo) DeleteSourceLinks(ctx context.Context, articleID int64) error {
	_, err := r.db.Exec(ctx, "DELETE FROM article_source_links WHERE article_id=$1", articleID)
	return err
}

func (r *articleRepo) AddViews(ctx context.Context, id int64, delta int64) error {
	_, err := r.db.Exec(ctx, "UPDATE articles SET views = views + $2 WHERE id = $1", id, delta)
	return err
}

func (r *articleRepo) CountByStatus(ctx context.Context) (map[workflow.Status]int, error) {
	rows, err := r.db.Query(ctx, "SELECT status, COUNT(*) FROM articles GROUP BY status")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[workflow.Status]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		out[workflow.Status(status)] = count
	}
	return out, rows.Err()
}

func (r *articleRepo) TotalViews(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, "SELECT COALESCE(SUM(views), 0) FROM articles").Scan(&total)
	return total, err
}
