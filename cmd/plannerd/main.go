// Command plannerd serves the planning HTTP API: POST /v1/plan for
// one-shot queries, and a POST /v1/sessions + WebSocket stream pair for
// sessions a client steers with live robot-location and map-change
// updates.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/arclab-robotics/gridsearch/pkg/httpapi"
	"github.com/arclab-robotics/gridsearch/pkg/logger"
)

var useRateLimit = flag.Bool("rate_limit", true, "throttle requests per client IP")

func main() {
	flag.Parse()

	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := httpapi.LoadConfig()
	svc := httpapi.NewService(log)
	handler := httpapi.NewRouter(log, svc, *useRateLimit)
	srv := httpapi.New(ctx, handler, cfg)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		log.Info("plannerd listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-egCtx.Done()
		return nil
	})

	sig := gracefulShutdown()
	log.Info("plannerd stopping", zap.String("signal", sig.String()))
	cancel()
	_ = srv.Shutdown(context.Background())

	if err := eg.Wait(); err != nil {
		log.Error("plannerd exited with error", zap.Error(err))
	}
}

func gracefulShutdown() os.Signal {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	return <-sigCh
}
