package main

import (
	"log"
	"net/http"
	"time"

	"croner/backend/internal/config"
	"croner/backend/internal/events"
	"croner/backend/internal/handlers"
	"croner/backend/internal/metrics"
	"croner/backend/internal/models"
	"croner/backend/internal/repositories"
	"croner/backend/internal/routers"
	"croner/backend/internal/tokens"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"gorm.io/driver/postgres"
)

func main() {
	cfg := config.Load()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Workspace{},
		&models.Test{},
		&models.Invitation{},
		&models.Color{},
	)
	if err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	publisher := events.NewPublisher(cfg.RedisAddr, logger)
	defer publisher.Close()

	tokenHandler := tokens.New(cfg.JWTSecret, cfg.TokenTTL)

	usersHandler := &handlers.UsersHandler{
		Repo:   &repositories.UsersRepository{DB: db, Logger: logger},
		Tokens: tokenHandler,
		Events: publisher,
	}
	workspacesHandler := &handlers.WorkspacesHandler{
		Repo:   &repositories.WorkspacesRepository{DB: db, Logger: logger},
		Tokens: tokenHandler,
		Events: publisher,
	}
	testsHandler := &handlers.TestsHandler{
		Repo:   &repositories.TestsRepository{DB: db, Logger: logger},
		Tokens: tokenHandler,
		Events: publisher,
	}
	invitationsHandler := &handlers.InvitationsHandler{
		Repo:   &repositories.InvitationsRepository{DB: db, Logger: logger},
		Tokens: tokenHandler,
		Events: publisher,
	}
	colorsHandler := &handlers.ColorsHandler{
		Repo:   &repositories.ColorsRepository{DB: db, Logger: logger},
		Tokens: tokenHandler,
		Events: publisher,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer, middleware.Timeout(60*time.Second))
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.Write([]byte("ok")) })
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	routers.UserRoutes(r, usersHandler)
	routers.WorkspaceRoutes(r, workspacesHandler, tokenHandler)
	routers.TestRoutes(r, testsHandler, tokenHandler)
	routers.InvitationRoutes(r, invitationsHandler)
	routers.ColorRoutes(r, colorsHandler)

	addr := ":" + cfg.Port
	logger.Info("server listening", zap.String("addr", addr))
	log.Fatal(http.ListenAndServe(addr, r))
}
