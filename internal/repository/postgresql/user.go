package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kintai-cloud/kintai-backend-go/internal/domain/user"
	"github.com/kintai-cloud/kintai-backend-go/internal/pkg/database"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	querier := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (id, email, password_hash, employee_name, role, google_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`

	err := querier.QueryRow(ctx, query,
		u.ID, u.Email, u.PasswordHash, u.EmployeeName, string(u.Role), u.GoogleID,
	).Scan(&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.User{}, user.ErrEmailExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	querier := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, password_hash, employee_name, role, google_id, created_at, updated_at
		FROM users
		WHERE id = $1`

	return r.scanUser(querier.QueryRow(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	querier := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, password_hash, employee_name, role, google_id, created_at, updated_at
		FROM users
		WHERE email = $1`

	return r.scanUser(querier.QueryRow(ctx, query, email))
}

func (r *userRepository) scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	var role string
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.EmployeeName, &role, &u.GoogleID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to scan user: %w", err)
	}
	u.Role = user.Role(role)
	return u, nil
}
