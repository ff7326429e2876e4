package repository

import (
	"context"

	"jurisight/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CommentRepo interface {
	Create(ctx context.Context, c *models.EditorialComment) (*models.EditorialComment, error)
	ListByArticle(ctx context.Context, articleID int64, includeInternal bool) ([]*models.EditorialComment, error)
	DeleteExternalByArticle(ctx context.Context, articleID int64) (int64, error)
	DeleteByArticle(ctx context.Context, articleID int64) error
}

type commentRepo struct{ db *pgxpool.Pool }

func NewCommentRepo(db *pgxpool.Pool) CommentRepo { return &commentRepo{db: db} }

func (r *commentRepo) Create(ctx context.Context, c *models.EditorialComment) (*models.EditorialComment, error) {
	const q = `
		INSERT INTO editorial_comments (article_id, author_id, body, is_internal)
		VALUES ($1,$2,$3,$4)
		RETURNING id, created_at`
	if err := r.db.QueryRow(ctx, q, c.ArticleID, c.AuthorID, c.Body, c.IsInternal).
		Scan(&c.ID, &c.CreatedAt); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *commentRepo) ListByArticle(ctx context.Context, articleID int64, includeInternal bool) ([]*models.EditorialComment, error) {
	q := `
		SELECT id, article_id, author_id, body, is_internal, created_at
		FROM editorial_comments
		WHERE article_id = $1`
	if !includeInternal {
		q += ` AND is_internal = FALSE`
	}
	q += ` ORDER BY created_at`

	rows, err := r.db.Query(ctx, q, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.EditorialComment
	for rows.Next() {
		var c models.EditorialComment
		if err := rows.Scan(&c.ID, &c.ArticleID, &c.AuthorID, &c.Body, &c.IsInternal, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// DeleteExternalByArticle removes the author-visible revision requests and
// keeps the internal reviewer notes.
func (r *commentRepo) DeleteExternalByArticle(ctx context.Context, articleID int64) (int64, error) {
	tag, err := r.db.Exec(ctx,
		"DELETE FROM editorial_comments WHERE article_id = $1 AND is_internal = FALSE", articleID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *commentRepo) DeleteByArticle(ctx context.Context, articleID int64) error {
	_, err := r.db.Exec(ctx, "DELETE FROM editorial_comments WHERE article_id = $1", articleID)
	return err
}
