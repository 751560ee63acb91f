package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"
	"golang.org/x/sync/errgroup"

	"landshop/internal/config"
	"landshop/internal/domain/service/trade"
	"landshop/internal/infrastructure/gateway"
	"landshop/internal/infrastructure/persistence"
	"landshop/internal/infrastructure/remote"
	"landshop/internal/transport/console"
	"landshop/pkg/contextx"
	"landshop/pkg/logx"
	"landshop/pkg/metrics"
	"landshop/pkg/probe"
)

const (
	appName    = "landshop"
	appVersion = "v0.1.0"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(log)

	if err := run(ctx, log, cancel); err != nil {
		log.Error("application failed", logx.Error(err))
		os.Exit(1)
	}

	log.Info("application stopped")
}

func run(ctx context.Context, log *slog.Logger, cancel context.CancelFunc) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}

	// Startup is fatal without a valid access credential.
	tokens := persistence.NewTokenStore(cfg.Storage.TokenFile)
	token, err := tokens.Obtain(os.Stdin, os.Stdout)
	if err != nil {
		return fmt.Errorf("obtain access token: %w", err)
	}

	items, err := persistence.NewItemStore(cfg.Storage.ItemsFile)
	if err != nil {
		return fmt.Errorf("load items: %w", err)
	}

	trades, err := persistence.NewTradeStore(cfg.Storage.TradesFile)
	if err != nil {
		return fmt.Errorf("load trades: %w", err)
	}

	log.Info("stores loaded",
		slog.Int("items", len(items.All())),
		slog.Int("trades", len(trades.All())),
	)

	remoteClient := remote.NewClient(cfg.Remote.BaseURL, token)

	coordinator := trade.NewCoordinator(remoteClient, items, trades).
		WithScanRadius(cfg.Remote.ScanRadius)

	gatewayClient := gateway.NewClient(cfg.Gateway.URL, token, coordinator).
		WithReconnectDelay(cfg.Gateway.ReconnectDelay)

	ctx = contextx.WithLogger(ctx, log)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		if err := gatewayClient.Run(groupCtx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("gateway: %w", err)
		}
		return nil
	})

	if cfg.Ops.ProbeAddress != "" {
		probeServer := probe.NewServer(cfg.Ops.ProbeAddress, probe.Options{
			Name:    appName,
			Version: appVersion,
		})

		group.Go(func() error {
			return probeServer.Run(groupCtx)
		})
	}

	if cfg.Ops.MetricsAddress != "" {
		metricsServer := metrics.NewPrometheusServer(cfg.Ops.MetricsAddress)

		group.Go(func() error {
			return metricsServer.Run(groupCtx)
		})
	}

	if err := console.New(items, os.Stdin, os.Stdout).Run(groupCtx); err != nil &&
		!errors.Is(err, context.Canceled) {
		log.Error("console stopped", logx.Error(err))
	}

	// qu was typed or stdin closed: stop the background units and wait for
	// the gateway loop to fully exit before reporting shutdown.
	cancel()

	if err := group.Wait(); err != nil {
		return err
	}

	log.Info("shutdown complete")

	return nil
}
