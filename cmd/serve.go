package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"droscher.com/BreweryDirectory/configs"
	"droscher.com/BreweryDirectory/pkg/repository"
	"droscher.com/BreweryDirectory/pkg/seed"
	"droscher.com/BreweryDirectory/pkg/server"
)

const (
	timeout         = 5 * time.Second
	shutdownTimeout = 10 * time.Second
)

type ServeCmd struct {
	ConfigFile string `default:".BreweryDirectory.toml" help:"Path to config file" short:"c"`
}

func (s *ServeCmd) Run(cmdContext *Context) error {
	logConfig := zap.NewProductionConfig()
	if cmdContext.Debug {
		logConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loader, err := newLoader(conf, repo, logger)
	if err != nil {
		return err
	}

	// A failed seed leaves an empty store; the server still starts.
	if err := loader.Run(ctx); err != nil {
		if errors.Is(err, seed.ErrUpstreamFetch) {
			logger.Warn("starting with an empty database: upstream unavailable", zap.Error(err))
		} else {
			logger.Warn("starting without seed data", zap.Error(err))
		}
	}

	handler := server.NewRouter(server.NewBreweryServer(repo, logger), conf.Server)

	svr := &http.Server{
		Addr:              fmt.Sprintf(":%d", conf.Server.Port),
		ReadHeaderTimeout: timeout,
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
	}

	return listenAndServe(ctx, svr, logger)
}

func listenAndServe(ctx context.Context, svr *http.Server, logger *zap.Logger) error {
	serveErr := make(chan error, 1)

	go func() {
		logger.Info("starting server", zap.String("address", svr.Addr))
		serveErr <- svr.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to start server", zap.Error(err))

			return err
		}

		return nil
	case <-ctx.Done():
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return svr.Shutdown(shutdownCtx)
	}
}
