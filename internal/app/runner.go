package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"shiphub/internal/logx"
	"shiphub/internal/transport/kafka"
)

const shutdownTimeout = 15 * time.Second

// MustRun starts the HTTP API using the provided DI container and blocks
// until the container context is cancelled.
func MustRun(container *dig.Container) {
	if err := run(container); err != nil {
		switch {
		case errors.Is(err, context.Canceled):
			log.Println("shutdown requested, exiting")
			return
		case errors.Is(err, context.DeadlineExceeded):
			log.Println("startup aborted: startup timeout exceeded")
			return
		default:
			log.Fatalf("run error: %v", err)
		}
	}
}

func run(container *dig.Container) error {
	return container.Invoke(serve)
}

func serve(
	ctx context.Context,
	server *http.Server,
	pool *pgxpool.Pool,
	publisher *kafka.Publisher,
	logger logx.Logger,
) error {
	defer closeResources(logger, pool, publisher)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("shiphub listening", logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down shiphub")
	shCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shCtx); err != nil {
		logger.Error("graceful shutdown error", logx.Err(err))
		if cerr := server.Close(); cerr != nil {
			logger.Error("server close error", logx.Err(cerr))
		}
	}
	return nil
}

func closeResources(logger logx.Logger, pool *pgxpool.Pool, publisher *kafka.Publisher) {
	if err := publisher.Close(); err != nil {
		logger.Error("kafka producer close error", logx.Err(err))
	}
	if pool != nil {
		pool.Close()
	}
	_ = logger.Sync()
}
