package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/kotoba-backend/internal/domain"
)

type userService interface {
	GetProfile(ctx context.Context) (*domain.User, error)
}

// UserHandler serves the learner's own profile.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "users")}
}

type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Me handles GET /api/me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetProfile(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, userResponse{ID: u.ID.String(), Name: u.Name, CreatedAt: u.CreatedAt})
}
