package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"todoapi/internal/config"
	"todoapi/internal/core"
	"todoapi/internal/db"
	"todoapi/internal/http/handler"
	"todoapi/internal/http/handler/middleware"
	"todoapi/internal/http/payload"
	"todoapi/internal/http/server"
	"todoapi/internal/repository"
	"todoapi/pkg/jwt"
	"todoapi/pkg/log"
	"todoapi/pkg/password"

	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("todoapi", zapcore.InfoLevel)
	defer func() { _ = logger.Sync() }()

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL, logger)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// repository
	repo := repository.NewTodoRepository(dbConn)

	err = repo.Migrate()
	if err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// jwt service
	jwtService, err := jwt.NewJWTService([]byte(config.JWTSecret))
	if err != nil {
		logger.Errorw("failed to create jwt service", "error", err)
		return err
	}

	// services
	authService := core.NewAuthService(
		logger,
		repo,
		jwtService,
		password.NewBcryptHasher(config.BcryptCost),
		config.TokenTTL)
	todoService := core.NewTodoService(logger, repo)

	// handler
	todoHlr := handler.NewTodoHandler(
		logger,
		payload.Decoder{},
		authService,
		todoService)

	// register routes
	mux := http.NewServeMux()
	todoHlr.Routes(mux)

	// middleware
	hdlr := middleware.NewRecoverMiddleware(logger).Recover(mux)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer signal.Stop(sig)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if sdErr != nil && (err == nil || errors.Is(err, http.ErrServerClosed)) {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}
