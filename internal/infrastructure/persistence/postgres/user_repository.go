package postgres

import (
	"context"

	"thexempt/internal/database"
	"thexempt/internal/domain/user"

	"github.com/google/uuid"
)

const userColumns = `id, email, password_hash, name, bio, role, reputation_points, badges, created_at, updated_at`

type UserRepository struct {
	db database.DB
}

func NewUserRepository(db database.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(ctx context.Context, u user.User) error {
	role := u.Role
	if role == "" {
		role = user.RoleMember
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, name, bio, role) VALUES ($1, $2, $3, $4, $5, $6)`,
		u.ID, u.Email, u.PasswordHash, u.Name, u.Bio, role,
	)
	return err
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// UpdateUser writes the editable profile fields. Reputation is owned by the
// contribution repository and is never written here.
func (r *UserRepository) UpdateUser(ctx context.Context, u user.User) error {
	n, err := r.db.Exec(ctx,
		`UPDATE users SET email = $1, password_hash = $2, name = $3, bio = $4, updated_at = now() WHERE id = $5`,
		u.Email, u.PasswordHash, u.Name, u.Bio, u.ID,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return user.ErrNotFound
	}
	return nil
}

func scanUser(row database.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Bio, &u.Role,
		&u.ReputationPoints, &u.Badges, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if database.IsNoRows(err) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	if u.Badges == nil {
		u.Badges = []string{}
	}
	return u, nil
}
