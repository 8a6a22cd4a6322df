package cmd

import (
	"accountd/internal/config"
	"accountd/internal/core"
	"accountd/internal/db"
	"accountd/internal/http/handler"
	"accountd/internal/http/handler/middleware"
	"accountd/internal/http/payload"
	"accountd/internal/http/server"
	"accountd/internal/repository"
	"accountd/pkg/jwt"
	"accountd/pkg/log"
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("accountd", zapcore.InfoLevel)

	cfg, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.New(cfg.Database.Driver, cfg.Database.DSN(), cfg.Database.LogLevel)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(cfg.JWT.Secret))

	// repository
	repo := repository.NewUserRepository(dbConn)

	if cfg.Database.AutoMigrate {
		passwordHash := ""
		if cfg.Superuser.Password != "" {
			passwordHash, err = core.HashPassword(cfg.Superuser.Password)
			if err != nil {
				logger.Errorw("failed to hash superuser password", "error", err)
				return err
			}
		}

		err = repo.MigrateAndSeed(context.Background(),
			cfg.Superuser.Username,
			cfg.Superuser.Email,
			passwordHash)
		if err != nil {
			logger.Errorw("failed to migrate and seed database", "error", err)
			return err
		}
	}

	// accounts service
	accounts := core.NewAccounts(logger, repo, jwtService, cfg.JWT.ExpireHours)

	// handler
	usersHlr := handler.NewUserHandler(
		logger,
		payload.DecodeValidator{},
		accounts)

	// register routes
	mux := http.NewServeMux()
	mux.HandleFunc(handler.CreateUser, usersHlr.HandleCreateUser)
	mux.HandleFunc(handler.GetUser, usersHlr.HandleGetUser)
	mux.HandleFunc(handler.ListUsers, usersHlr.HandleListUsers)
	mux.HandleFunc(handler.Login, usersHlr.HandleLogin)
	mux.HandleFunc(handler.Health, usersHlr.HandleHealth)

	// middleware
	hdlr := middleware.NewCORSMiddleware(cfg.CORS.AllowedOrigins).CORS(mux)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	srv := server.NewHTTP(logger, hdlr, addr, cfg.Server.ReadTimeout, cfg.Server.WriteTimeout)
	return run(srv)
}

func run(srv *server.HTTPServer) error {
	// block until the listener fails or a shutdown signal arrives
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	errChan := srv.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	if sdErr := srv.Shutdown(); sdErr != nil && err == http.ErrServerClosed {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
