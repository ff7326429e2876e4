package repository

import (
	"context"

	"jurisight/internal/logger"
	"jurisight/internal/models"
	"jurisight/internal/workflow"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	IsEmailTaken(ctx context.Context, email string) (bool, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) error
	IsUserActive(ctx context.Context, userID int64) (bool, error)
	SaveRefreshToken(ctx context.Context, userID int64, token string) error
	IsRefreshTokenValid(ctx context.Context, userID int64, token string) (bool, error)
	DeleteRefreshToken(ctx context.Context, userID int64, token string) error
	DeleteExpiredRefreshTokens(ctx context.Context) error
	CountByRole(ctx context.Context) (map[workflow.Role]int, error)
}

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepo(db *pgxpool.Pool) UserRepo {
	return &userRepo{db: db}
}

const userColumns = `id, email, full_name, password_hash, role, is_active, created_at, updated_at`

func (r *userRepo) CreateUser(ctx context.Context, user *models.User) error {
	logger.Log.Info("creating user (repo)", zap.String("email", user.Email))
	const q = `
		INSERT INTO users (email, full_name, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	return r.db.QueryRow(ctx, q,
		user.Email,
		user.FullName,
		user.PasswordHash,
		string(user.Role),
		user.IsActive,
	).Scan(&user.ID)
}

func (r *userRepo) IsEmailTaken(ctx context.Context, email string) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`
	var exists bool
	err := r.db.QueryRow(ctx, q, email).Scan(&exists)
	if err != nil {
		logger.Log.Error("email uniqueness check failed (repo)", zap.Error(err))
	}
	return exists, err
}

func (r *userRepo) scanUser(row interface{ Scan(dest ...any) error }) (*models.User, error) {
	var u models.User
	var role string
	if err := row.Scan(
		&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	u.Role = workflow.Role(role)
	return &u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanUser(r.db.QueryRow(ctx, q, email))
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRow(ctx, q, id))
}

func (r *userRepo) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	q := `SELECT ` + userColumns + ` FROM users ORDER BY created_at`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.User
	for rows.Next() {
		u, err := r.scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *userRepo) UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) error {
	logger.Log.Info("updating user (repo)", zap.Int64("user_id", id))
	const q = `
		UPDATE users
		SET full_name = COALESCE($2, full_name),
		    role      = COALESCE($3, role),
		    is_active = COALESCE($4, is_active),
		    updated_at = NOW()
		WHERE id = $1`
	_, err := r.db.Exec(ctx, q, id, req.FullName, req.Role, req.IsActive)
	return err
}

func (r *userRepo) IsUserActive(ctx context.Context, userID int64) (bool, error) {
	const q = `SELECT is_active FROM users WHERE id = $1`
	var active bool
	err := r.db.QueryRow(ctx, q, userID).Scan(&active)
	return active, err
}

func (r *userRepo) SaveRefreshToken(ctx context.Context, userID int64, token string) error {
	const q = `INSERT INTO refresh_tokens (user_id, token) VALUES ($1, $2)`
	_, err := r.db.Exec(ctx, q, userID, token)
	if err != nil {
		logger.Log.Error("saving refresh token failed (repo)", zap.Error(err))
	}
	return err
}

func (r *userRepo) IsRefreshTokenValid(ctx context.Context, userID int64, token string) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM refresh_tokens WHERE user_id = $1 AND token = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, q, userID, token).Scan(&exists)
	return exists, err
}

func (r *userRepo) DeleteRefreshToken(ctx context.Context, userID int64, token string) error {
	const q = `DELETE FROM refresh_tokens WHERE user_id = $1 AND token = $2`
	_, err := r.db.Exec(ctx, q, userID, token)
	return err
}

func (r *userRepo) DeleteExpiredRefreshTokens(ctx context.Context) error {
	const q = `DELETE FROM refresh_tokens WHERE created_at < NOW() - INTERVAL '30 days'`
	_, err := r.db.Exec(ctx, q)
	return err
}

func (r *userRepo) CountByRole(ctx context.Context) (map[workflow.Role]int, error) {
	rows, err := r.db.Query(ctx, "SELECT role, COUNT(*) FROM users GROUP BY role")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[workflow.Role]int)
	for rows.Next() {
		var role string
		var count int
		if err := rows.Scan(&role, &count); err != nil {
			return nil, err
		}
		out[workflow.Role(role)] = count
	}
	return out, rows.Err()
}
