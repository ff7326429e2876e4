package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type NewsletterRepo interface {
	Subscribe(ctx context.Context, email string) error
	Unsubscribe(ctx context.Context, email string) error
	GetAllSubscribedEmails(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int, error)
}

type newsletterRepo struct{ db *pgxpool.Pool }

func NewNewsletterRepo(db *pgxpool.Pool) NewsletterRepo { return &newsletterRepo{db: db} }

func (r *newsletterRepo) Subscribe(ctx context.Context, email string) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO newsletter_subscribers (email) VALUES ($1) ON CONFLICT (email) DO NOTHING`, email)
	return err
}

func (r *newsletterRepo) Unsubscribe(ctx context.Context, email string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM newsletter_subscribers WHERE email = $1`, email)
	return err
}

func (r *newsletterRepo) GetAllSubscribedEmails(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT email FROM newsletter_subscribers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, err
		}
		emails = append(emails, email)
	}
	return emails, rows.Err()
}

func (r *newsletterRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM newsletter_subscribers`).Scan(&n)
	return n, err
}
