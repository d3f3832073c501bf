package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/deppfellow/grampanchayat/internal/config"
	"github.com/deppfellow/grampanchayat/internal/errs"
	"github.com/deppfellow/grampanchayat/internal/model"
	"github.com/deppfellow/grampanchayat/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

const passwordCost = bcrypt.DefaultCost

type authUserRepository interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	TouchLastLogin(ctx context.Context, id uuid.UUID) error
	UpdateUser(ctx context.Context, id uuid.UUID, u repository.UserUpdate) (*model.User, error)
}

// Claims are the JWT claims issued at login.
type Claims struct {
	ID   uuid.UUID  `json:"id"`
	Role model.Role `json:"role"`
	jwt.RegisteredClaims
}

type AuthService struct {
	users  authUserRepository
	cfg    config.AuthConfig
	logger *zerolog.Logger
	now    func() time.Time
}

func NewAuthService(cfg config.AuthConfig, users authUserRepository, logger *zerolog.Logger) *AuthService {
	return &AuthService{
		users:  users,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

func invalidCredentials() error {
	return errs.NewUnauthorizedError("Invalid credentials", true)
}

// IssueToken signs an HS256 access token for u.
func (s *AuthService) IssueToken(u *model.User) (string, error) {
	now := s.now()
	claims := Claims{
		ID:   u.ID,
		Role: u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			Subject:   u.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// ParseToken verifies signature, issuer and expiry of an access token.
func (s *AuthService) ParseToken(token string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte(s.cfg.JWTSecret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.cfg.Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// Authenticate resolves a bearer token to an active user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	claims, err := s.ParseToken(token)
	if err != nil {
		s.logger.Debug().Err(err).Msg("rejected access token")
		return nil, errs.NewUnauthorizedError("Invalid or expired token", true)
	}

	user, err := s.users.GetUserByID(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewUnauthorizedError("User not found", true)
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, errs.NewUnauthorizedError("Account is disabled", true)
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, p *model.LoginPayload) (*model.LoginResponse, error) {
	user, err := s.users.GetUserByEmail(ctx, p.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, invalidCredentials()
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, invalidCredentials()
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(p.Password)); err != nil {
		return nil, invalidCredentials()
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return nil, err
	}

	if err := s.users.TouchLastLogin(ctx, user.ID); err != nil {
		s.logger.Warn().Err(err).Str("user_id", user.ID.String()).Msg("failed to record last login")
	} else {
		now := s.now()
		user.LastLogin = &now
	}

	s.logger.Info().Str("user_id", user.ID.String()).Str("role", string(user.Role)).Msg("user logged in")

	return &model.LoginResponse{Token: token, User: user}, nil
}

func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	return s.users.GetUserByID(ctx, userID)
}

func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, p *model.ChangePasswordPayload) error {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(p.CurrentPassword)); err != nil {
		return errs.NewBadRequestError("Current password is incorrect", true, nil, nil, nil)
	}

	hash, err := hashPassword(p.NewPassword)
	if err != nil {
		return err
	}

	if _, err := s.users.UpdateUser(ctx, userID, repository.UserUpdate{PasswordHash: &hash}); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", userID.String()).Msg("password changed")
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
