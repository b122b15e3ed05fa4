package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/quicknote/quicknote-go/internal/config"
	"github.com/quicknote/quicknote-go/internal/handler"
	"github.com/quicknote/quicknote-go/internal/middleware"
	"github.com/quicknote/quicknote-go/internal/repository"
	"github.com/quicknote/quicknote-go/internal/service"
	"github.com/quicknote/quicknote-go/internal/view"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	renderer, err := view.New()
	if err != nil {
		slog.Error("template parsing failed", "error", err)
		os.Exit(1)
	}

	// The app is useless without its store: fail fast instead of
	// serving with auth and notes disabled.
	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := repository.RunMigrations(context.Background(), db); err != nil {
		slog.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	noteRepo := repository.NewNoteRepository(db)

	authService := service.NewAuthService(userRepo, cfg.SessionSecret)
	noteService := service.NewNoteService(noteRepo)

	authHandler := handler.NewAuthHandler(authService, renderer)
	noteHandler := handler.NewNoteHandler(noteService, renderer)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recover(renderer))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/auth/login", http.StatusFound)
	})

	r.Handle("/static/*", view.StaticHandler())

	r.Route("/auth", func(r chi.Router) {
		r.Get("/register", authHandler.HandleRegisterForm)
		r.Post("/register", authHandler.HandleRegister)
		r.Get("/login", authHandler.HandleLoginForm)
		r.Post("/login", authHandler.HandleLogin)
		r.Get("/logout", authHandler.HandleLogout)
	})

	r.Route("/notes", func(r chi.Router) {
		r.Use(middleware.RequireAuth(userRepo, cfg.SessionSecret))
		r.Get("/dashboard", noteHandler.HandleDashboard)
		r.Post("/create", noteHandler.HandleCreate)
		r.Post("/update/{id}", noteHandler.HandleUpdate)
		r.Post("/delete/{id}", noteHandler.HandleDelete)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		renderer.Render(w, http.StatusNotFound, "error", view.ErrorData{
			Title:   "Page Not Found",
			Message: "The page you are looking for does not exist.",
			Code:    http.StatusNotFound,
		})
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
