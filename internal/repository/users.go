package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/grampanchayat/internal/model"
	"github.com/deppfellow/grampanchayat/internal/server"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const usersTable = "users"

type UserRepository struct {
	db dbtx
}

func NewUserRepository(s *server.Server) *UserRepository {
	return &UserRepository{db: poolOf(s)}
}

func (r *UserRepository) ListUsers(ctx context.Context) ([]model.User, error) {
	return collectAll[model.User](ctx, r.db, usersTable,
		`SELECT * FROM users ORDER BY created_at DESC`)
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return collectOne[model.User](ctx, r.db, usersTable,
		`SELECT * FROM users WHERE id = $1`, id)
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return collectOne[model.User](ctx, r.db, usersTable,
		`SELECT * FROM users WHERE LOWER(email) = LOWER($1)`, email)
}

// CreateUser inserts a user. passwordHash must already be hashed.
func (r *UserRepository) CreateUser(ctx context.Context, email, passwordHash string, role model.Role, permissions []string) (*model.User, error) {
	return collectOne[model.User](ctx, r.db, usersTable, `
		INSERT INTO users (email, password, role, permissions)
		VALUES (@email, @password, @role, @permissions)
		RETURNING *`,
		pgx.NamedArgs{
			"email":       email,
			"password":    passwordHash,
			"role":        role,
			"permissions": permissions,
		})
}

// UserUpdate lists the columns UpdateUser may change. Nil fields are kept.
type UserUpdate struct {
	Email        *string
	Role         *model.Role
	Permissions  []string
	IsActive     *bool
	PasswordHash *string
}

func (r *UserRepository) UpdateUser(ctx context.Context, id uuid.UUID, u UserUpdate) (*model.User, error) {
	var permissions any
	if u.Permissions != nil {
		permissions = u.Permissions
	}

	return collectOne[model.User](ctx, r.db, usersTable, `
		UPDATE users SET
			email = COALESCE(@email, email),
			role = COALESCE(@role, role),
			permissions = COALESCE(@permissions, permissions),
			is_active = COALESCE(@is_active, is_active),
			password = COALESCE(@password, password)
		WHERE id = @id
		RETURNING *`,
		pgx.NamedArgs{
			"id":          id,
			"email":       u.Email,
			"role":        u.Role,
			"permissions": permissions,
			"is_active":   u.IsActive,
			"password":    u.PasswordHash,
		})
}

func (r *UserRepository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	_, err := deleteByID[model.User](ctx, r.db, usersTable, id)
	return err
}

func (r *UserRepository) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET last_login = CURRENT_TIMESTAMP WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	return nil
}

// GrantAllIfEmpty gives the user with email the wildcard permission when it
// has none. It reports whether a row changed.
func (r *UserRepository) GrantAllIfEmpty(ctx context.Context, email string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET permissions = '["*"]'::jsonb
		WHERE LOWER(email) = LOWER($1) AND (permissions IS NULL OR permissions = '[]'::jsonb)`,
		email)
	if err != nil {
		return false, fmt.Errorf("failed to grant admin permissions: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
