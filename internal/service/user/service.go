package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/kotoba-backend/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
}

type tokenIssuer interface {
	GenerateAccessToken(userID uuid.UUID, name string) (string, time.Time, error)
}

// Service manages learner accounts and their bearer tokens.
type Service struct {
	log    *slog.Logger
	users  userRepo
	tokens tokenIssuer
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo, tokens tokenIssuer) *Service {
	return &Service{
		log:    logger.With("service", "user"),
		users:  users,
		tokens: tokens,
	}
}
