package rest

import (
	"net/http"

	"github.com/heartmarshall/kotoba-backend/internal/transport/middleware"
)

// Routes holds the handlers mounted by NewRouter.
type Routes struct {
	Health *HealthHandler
	Quiz   *QuizHandler
	Words  *WordHandler
	Users  *UserHandler
}

// NewRouter registers every endpoint on a ServeMux. Probes are public; the
// /api tree is wrapped with authed, which must establish the learner.
func NewRouter(routes Routes, authed middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", routes.Health.Live)
	mux.HandleFunc("GET /ready", routes.Health.Ready)
	mux.HandleFunc("GET /health", routes.Health.Health)

	api := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, authed(h))
	}

	api("GET /api/me", routes.Users.Me)

	api("GET /api/quiz/next", routes.Quiz.Next)
	api("POST /api/quiz/answer", routes.Quiz.Answer)
	api("GET /api/quiz/statistics", routes.Quiz.Statistics)
	api("POST /api/quiz/recompute", routes.Quiz.Recompute)

	api("POST /api/words", routes.Words.Create)
	api("GET /api/words", routes.Words.Search)
	api("GET /api/words/{id}", routes.Words.Get)

	return mux
}
