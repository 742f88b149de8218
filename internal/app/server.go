package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/kotoba-backend/internal/config"
	"github.com/heartmarshall/kotoba-backend/internal/transport/middleware"
	"github.com/heartmarshall/kotoba-backend/internal/transport/rest"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// NewHandler assembles the routes and the middleware stack. The returned
// stop func releases background resources held by the middleware.
func NewHandler(cfg *config.Config, svc *Services, db pinger, logger *slog.Logger) (http.Handler, func()) {
	mux := rest.NewRouter(rest.Routes{
		Health: rest.NewHealthHandler(db, BuildVersion()),
		Quiz:   rest.NewQuizHandler(svc.Quiz, logger),
		Words:  rest.NewWordHandler(svc.Dictionary, logger),
		Users:  rest.NewUserHandler(svc.Users, logger),
	}, middleware.RequireUser)

	stack := []middleware.Middleware{
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(svc.Tokens),
	}

	stop := func() {}
	if cfg.RateLimit.Enabled {
		rl := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		stack = append(stack, rl.Limit(cfg.RateLimit.PerMinute))
		stop = rl.Stop
	}

	return middleware.Chain(stack...)(mux), stop
}

// Serve runs srv until ctx is cancelled, then drains in-flight requests for
// at most cfg.ShutdownTimeout.
func Serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("http server shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func newHTTPServer(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}
