package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rocketscienceinc/triangles-backend/internal/entity"
	"github.com/rocketscienceinc/triangles-backend/internal/service"
)

const (
	requestTimeout  = 30 * time.Second
	shutdownTimeout = 5 * time.Second
)

type gamePlayService interface {
	GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error)
	GetOrCreateGame(ctx context.Context, playerID string, opts service.GameOptions) (*entity.Game, error)
	GetGameByID(ctx context.Context, gameID string) (*entity.Game, error)
	MakeTurn(ctx context.Context, playerID string, from, to entity.Dot) (*entity.Game, error)
	History(ctx context.Context, playerID string, limit int) ([]*entity.Match, error)
}

type advisorService interface {
	SuggestMove(ctx context.Context, req service.AdviceRequest) (*entity.Move, error)
}

type Server struct {
	logger *slog.Logger
	router *chi.Mux

	gamePlay gamePlayService
	advisor  advisorService
}

func New(logger *slog.Logger, gamePlay gamePlayService, advisor advisorService) *Server {
	that := &Server{
		logger:   logger.With("component", "rest"),
		router:   chi.NewRouter(),
		gamePlay: gamePlay,
		advisor:  advisor,
	}

	that.router.Use(middleware.RequestID)
	that.router.Use(middleware.RealIP)
	that.router.Use(middleware.Recoverer)
	that.router.Use(middleware.Timeout(requestTimeout))
	that.router.Use(jsonContentType)

	that.router.Get("/ping", that.ping)
	that.router.Post("/get_move", that.getMove)

	that.router.Post("/players", that.createPlayer)
	that.router.Get("/players/{id}/matches", that.playerMatches)

	that.router.Route("/games", func(r chi.Router) {
		r.Post("/", that.createGame)
		r.Get("/{id}", that.getGame)
		r.Post("/{id}/turns", that.makeTurn)
	})

	return that
}

func (that *Server) Router() http.Handler {
	return that.router
}

// Start - serves until ctx is done, then shuts down gracefully.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: requestTimeout + time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}
