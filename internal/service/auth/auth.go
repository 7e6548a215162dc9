package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lionscars-service/internal/domain/user"
	xerrors "lionscars-service/internal/pkg/errors"
	"lionscars-service/internal/pkg/jwt"
	"lionscars-service/internal/pkg/session"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles console logins and account management. Passwords are
// stored as bcrypt hashes only.
type AuthService struct {
	users    user.Repository
	tokens   *jwt.Manager
	sessions *session.Manager
	limiter  *session.RateLimiter
	logger   *zap.Logger
}

func NewAuthService(users user.Repository, tokens *jwt.Manager, sessions *session.Manager, limiter *session.RateLimiter, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:    users,
		tokens:   tokens,
		sessions: sessions,
		limiter:  limiter,
		logger:   logger,
	}
}

// Login checks credentials and opens a session. Bad credentials and unknown
// usernames are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, ip string, req *user.LoginRequest) (*user.LoginResponse, error) {
	if s.limiter != nil {
		allowed, err := s.limiter.CheckLoginAttempt(ctx, ip, req.Username)
		if err != nil {
			s.logger.Warn("login rate limiter unavailable", zap.Error(err))
		} else if !allowed {
			return nil, xerrors.ErrRateLimited
		}
	}

	u, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			return nil, xerrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, xerrors.ErrUnauthorized
	}

	token, jti, err := s.tokens.Generate(u.ID, u.Username, u.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	if s.sessions != nil {
		sess := &session.SessionData{
			JTI:       jti,
			UserID:    u.ID,
			Username:  u.Username,
			Role:      u.Role,
			IPAddress: ip,
			LoginAt:   time.Now(),
			ExpiresAt: time.Now().Add(s.tokens.TTL()),
		}
		if err := s.sessions.CreateSession(ctx, sess); err != nil {
			return nil, fmt.Errorf("failed to open session: %w", err)
		}
	}
	if s.limiter != nil {
		if err := s.limiter.ResetLoginAttempts(ctx, ip, req.Username); err != nil {
			s.logger.Warn("failed to reset login attempts", zap.Error(err))
		}
	}

	s.logger.Info("user logged in", zap.String("username", u.Username), zap.String("role", u.Role))
	return &user.LoginResponse{Token: token, Username: u.Username, Role: u.Role}, nil
}

// ValidateToken verifies a token and checks that its session is still live.
func (s *AuthService) ValidateToken(ctx context.Context, token string) (*jwt.Claims, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, xerrors.ErrUnauthorized
	}
	if s.sessions != nil {
		if _, err := s.sessions.GetSession(ctx, claims.UserID, claims.ID); err != nil {
			return nil, xerrors.ErrSessionExpired
		}
	}
	return claims, nil
}

// Logout revokes the current session.
func (s *AuthService) Logout(ctx context.Context, userID int64, jti string) error {
	if s.sessions == nil {
		return nil
	}
	return s.sessions.DeleteSession(ctx, userID, jti)
}

// ListUsers returns all console accounts.
func (s *AuthService) ListUsers(ctx context.Context) ([]user.User, error) {
	return s.users.List(ctx)
}

// CreateUser registers a console account with a hashed password. Role
// defaults to vendedor.
func (s *AuthService) CreateUser(ctx context.Context, req *user.CreateUserRequest) (*user.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, fmt.Errorf("username is required: %w", xerrors.ErrValidation)
	}
	role := req.Role
	if role == "" {
		role = user.RoleSeller
	}
	if role != user.RoleAdmin && role != user.RoleSeller {
		return nil, fmt.Errorf("unknown role %q: %w", role, xerrors.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &user.User{Username: username, PasswordHash: string(hash), Role: role}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	s.logger.Info("user created", zap.String("username", username), zap.String("role", role))
	return u, nil
}

// DeleteUser removes a console account.
func (s *AuthService) DeleteUser(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}
