package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/VladKvetkin/takeaway/internal/config"
	"github.com/VladKvetkin/takeaway/internal/logger"
	"github.com/VladKvetkin/takeaway/internal/server"
	"github.com/VladKvetkin/takeaway/internal/storage"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	os.Exit(start())
}

func start() int {
	config, err := config.NewConfig()
	if err != nil {
		zap.L().Info("error create config", zap.Error(err))
		return 1
	}

	log, err := logger.New(config.LogLevel)
	if err != nil {
		zap.L().Info("error create logger", zap.Error(err))
		return 1
	}

	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	sqlStorage, err := storage.Open(ctx, storage.Options{
		DatabaseURI: config.DatabaseURI,
		SSL:         config.DatabaseSSL,
		Reset:       config.ResetDB,
	})
	if err != nil {
		zap.L().Info("error failed to open storage", zap.Error(err))
		return 1
	}

	defer sqlStorage.Close()

	server := server.NewServer(config, sqlStorage)

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		if err := server.Start(); err != nil {
			zap.L().Info("error starting server", zap.Error(err))
			return err
		}

		return nil
	})

	eg.Go(func() error {
		<-ctx.Done()

		if err := server.Stop(); err != nil {
			zap.L().Info("error stopping server", zap.Error(err))
			return err
		}

		return nil
	})

	if err := eg.Wait(); err != nil {
		return 1
	}

	return 0
}
