package app

import (
	"fmt"
	"log/slog"

	"github.com/heartmarshall/kotoba-backend/internal/adapter/postgres"
	"github.com/heartmarshall/kotoba-backend/internal/adapter/postgres/example"
	"github.com/heartmarshall/kotoba-backend/internal/adapter/postgres/history"
	"github.com/heartmarshall/kotoba-backend/internal/adapter/postgres/learnedword"
	"github.com/heartmarshall/kotoba-backend/internal/adapter/postgres/meaning"
	"github.com/heartmarshall/kotoba-backend/internal/adapter/postgres/question"
	userrepo "github.com/heartmarshall/kotoba-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/kotoba-backend/internal/adapter/postgres/word"
	"github.com/heartmarshall/kotoba-backend/internal/auth"
	"github.com/heartmarshall/kotoba-backend/internal/config"
	"github.com/heartmarshall/kotoba-backend/internal/service/dictionary"
	"github.com/heartmarshall/kotoba-backend/internal/service/quiz"
	"github.com/heartmarshall/kotoba-backend/internal/service/user"
)

// Database is what the repositories and the transaction manager need from
// a connection pool. *pgxpool.Pool satisfies it.
type Database interface {
	postgres.Querier
	postgres.Beginner
}

// Services is the wired application shared by the HTTP server and kotobactl.
type Services struct {
	Quiz       *quiz.Service
	Dictionary *dictionary.Service
	Users      *user.Service
	Tokens     *auth.JWTManager
}

// NewServices builds every repository and service on top of db.
func NewServices(cfg *config.Config, db Database, logger *slog.Logger) (*Services, error) {
	txm := postgres.NewTxManager(db)

	words := word.New(db)
	generators := quiz.NewRegistry(quiz.NewKanaGenerator(cfg.Quiz.NumOptions))

	quizSvc, err := quiz.NewService(
		logger,
		words,
		learnedword.New(db),
		question.New(db),
		history.New(db),
		postgres.NewUserLocker(),
		txm,
		generators,
		quiz.NewLockedRand(cfg.Quiz.Seed),
		cfg.Domain(),
	)
	if err != nil {
		return nil, fmt.Errorf("build quiz service: %w", err)
	}

	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	return &Services{
		Quiz:       quizSvc,
		Dictionary: dictionary.NewService(logger, words, meaning.New(db), example.New(db), txm),
		Users:      user.NewService(logger, userrepo.New(db), tokens),
		Tokens:     tokens,
	}, nil
}
