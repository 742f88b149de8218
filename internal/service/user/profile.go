package user

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/kotoba-backend/internal/domain"
	"github.com/heartmarshall/kotoba-backend/pkg/ctxutil"
)

// TokenResult is a freshly issued bearer token.
type TokenResult struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *domain.User
}

// GetProfile returns the learner attached to ctx.
func (s *Service) GetProfile(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}
	return u, nil
}

// CreateUser registers a learner.
func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	u, err := s.users.Create(ctx, &domain.User{Name: input.Name})
	if err != nil {
		return nil, fmt.Errorf("user.CreateUser: %w", err)
	}

	s.log.InfoContext(ctx, "user created", slog.String("user_id", u.ID.String()))
	return u, nil
}

// IssueToken signs an access token for an existing learner.
func (s *Service) IssueToken(ctx context.Context, userID uuid.UUID) (*TokenResult, error) {
	if userID == uuid.Nil {
		return nil, domain.NewValidationError("user_id", "required")
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.IssueToken: %w", err)
	}

	token, expiresAt, err := s.tokens.GenerateAccessToken(u.ID, u.Name)
	if err != nil {
		return nil, fmt.Errorf("user.IssueToken: %w", err)
	}

	s.log.InfoContext(ctx, "token issued",
		slog.String("user_id", u.ID.String()),
		slog.Time("expires_at", expiresAt),
	)
	return &TokenResult{AccessToken: token, ExpiresAt: expiresAt, User: u}, nil
}
