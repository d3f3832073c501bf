package service

import (
	"context"
	"errors"
	"strings"

	"github.com/deppfellow/grampanchayat/internal/config"
	"github.com/deppfellow/grampanchayat/internal/errs"
	"github.com/deppfellow/grampanchayat/internal/model"
	"github.com/deppfellow/grampanchayat/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type userRepository interface {
	authUserRepository
	ListUsers(ctx context.Context) ([]model.User, error)
	CreateUser(ctx context.Context, email, passwordHash string, role model.Role, permissions []string) (*model.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	GrantAllIfEmpty(ctx context.Context, email string) (bool, error)
}

type welcomeEnqueuer interface {
	EnqueueWelcomeEmail(ctx context.Context, to, role string) error
}

type UserService struct {
	repo    userRepository
	welcome welcomeEnqueuer
	admin   config.AdminConfig
	logger  *zerolog.Logger
}

// NewUserService builds the user service. welcome may be nil, in which case
// no account-created emails are sent.
func NewUserService(repo userRepository, welcome welcomeEnqueuer, admin config.AdminConfig, logger *zerolog.Logger) *UserService {
	return &UserService{repo: repo, welcome: welcome, admin: admin, logger: logger}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func userExistsError() error {
	code := "USER_ALREADY_EXISTS"
	return errs.NewBadRequestError("User with this email already exists", true, &code, nil, nil)
}

func (s *UserService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.repo.GetUserByID(ctx, id)
}

func (s *UserService) CreateUser(ctx context.Context, p *model.CreateUserPayload) (*model.User, error) {
	email := normalizeEmail(p.Email)

	_, err := s.repo.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, userExistsError()
	case !errors.Is(err, pgx.ErrNoRows):
		return nil, err
	}

	role := p.Role
	if role == "" {
		role = model.RoleEditor
	}

	hash, err := hashPassword(p.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.CreateUser(ctx, email, hash, role, model.DefaultPermissions(role, p.Permissions))
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("user_id", user.ID.String()).
		Str("role", string(user.Role)).
		Msg("user created")

	if s.welcome != nil {
		if err := s.welcome.EnqueueWelcomeEmail(ctx, user.Email, string(user.Role)); err != nil {
			s.logger.Warn().Err(err).Str("user_id", user.ID.String()).Msg("failed to enqueue welcome email")
		}
	}

	return user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, p *model.UpdateUserPayload) (*model.User, error) {
	existing, err := s.repo.GetUserByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	update := repository.UserUpdate{
		Role:     p.Role,
		IsActive: p.IsActive,
	}

	if p.Email != nil {
		email := normalizeEmail(*p.Email)
		update.Email = &email
	}

	role := existing.Role
	if p.Role != nil {
		role = *p.Role
	}
	switch {
	case p.Permissions != nil:
		update.Permissions = model.DefaultPermissions(role, p.Permissions)
	case role == model.RoleAdmin && len(existing.Permissions) == 0:
		update.Permissions = []string{string(model.TaskAll)}
	}

	if p.Password != nil {
		hash, err := hashPassword(*p.Password)
		if err != nil {
			return nil, err
		}
		update.PasswordHash = &hash
	}

	user, err := s.repo.UpdateUser(ctx, p.ID, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID.String()).Msg("user updated")
	return user, nil
}

// DeleteUser removes id on behalf of actorID. Users cannot delete themselves.
func (s *UserService) DeleteUser(ctx context.Context, actorID, id uuid.UUID) error {
	if actorID == id {
		return errs.NewBadRequestError("Cannot delete your own account", true, nil, nil, nil)
	}

	if err := s.repo.DeleteUser(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", id.String()).Str("deleted_by", actorID.String()).Msg("user deleted")
	return nil
}

// EnsureAdmin creates the bootstrap admin account, or grants the wildcard
// permission to an existing one that has none. It reports whether a user was created.
func (s *UserService) EnsureAdmin(ctx context.Context) (bool, error) {
	email := normalizeEmail(s.admin.Email)
	if email == "" || s.admin.Password == "" {
		s.logger.Warn().Msg("admin credentials not configured, skipping admin bootstrap")
		return false, nil
	}

	_, err := s.repo.GetUserByEmail(ctx, email)
	if err == nil {
		granted, err := s.repo.GrantAllIfEmpty(ctx, email)
		if err != nil {
			return false, err
		}
		if granted {
			s.logger.Info().Str("email", email).Msg("granted all permissions to existing admin")
		}
		return false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return false, err
	}

	hash, err := hashPassword(s.admin.Password)
	if err != nil {
		return false, err
	}

	user, err := s.repo.CreateUser(ctx, email, hash, model.RoleAdmin, []string{string(model.TaskAll)})
	if err != nil {
		return false, err
	}

	s.logger.Info().Str("user_id", user.ID.String()).Str("email", email).Msg("admin user created")
	return true, nil
}
