package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"droscher.com/Foodgram/configs"
	"droscher.com/Foodgram/pkg/media"
	"droscher.com/Foodgram/pkg/repository"
	"droscher.com/Foodgram/pkg/server"
)

const (
	timeout         = 5 * time.Second
	shutdownTimeout = 15 * time.Second
)

type ServeCmd struct {
	ConfigFile string `default:".Foodgram.toml" help:"Path to config file" short:"c"`
}

func (s *ServeCmd) Run(cliContext *Context) error {
	logConfig := zap.NewProductionConfig()
	if cliContext.Debug {
		logConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	store, err := media.Open(ctx, conf, logger)
	if err != nil {
		logger.Error("error opening media store", zap.Error(err))

		return err
	}

	handler := server.NewServer(conf, repo, store, logger).Handler()

	svr := &http.Server{
		Addr:              fmt.Sprintf(":%d", conf.Server.Port),
		ReadHeaderTimeout: timeout,
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := svr.Shutdown(shutdownCtx); err != nil {
			logger.Error("error shutting down server", zap.Error(err))
		}
	}()

	logger.Info("starting server", zap.String("address", svr.Addr), zap.String("media", conf.Media.Backend))

	err = svr.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("failed to start server", zap.Error(err))

		return err
	}

	return nil
}
