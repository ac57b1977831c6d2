package app

import (
	"context"

	"github.com/sann404/sannmusic/internal/cache"
	"github.com/sann404/sannmusic/internal/client/api"
	"github.com/sann404/sannmusic/internal/config"
	"github.com/sann404/sannmusic/internal/gateway"
	"github.com/sann404/sannmusic/internal/logger"
	"github.com/sann404/sannmusic/internal/metadata"
	"github.com/sann404/sannmusic/internal/server"
	"github.com/sann404/sannmusic/internal/service/library"
)

// components holds the wired application graph shared by the commands.
type components struct {
	store          *metadata.StoreImpl
	cache          *cache.Store
	client         *api.ClientImpl
	gateway        *gateway.Gateway
	service        *library.ServiceImpl
	audioPartition *cache.Partition
}

// buildComponents initializes the shared component graph. The returned
// cleanup function closes the metadata store.
func buildComponents(ctx context.Context, cfg *config.Config) (*components, func(), error) {
	store := metadata.NewStore(cfg.DatabasePath)
	if err := store.Open(ctx); err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if err := store.Close(); err != nil {
			logger.Warnf(ctx, "Failed to close metadata store: %v", err)
		}
	}

	cacheStore, err := cache.NewStore(cfg.CacheDir)
	if err != nil {
		cleanup()

		return nil, nil, err
	}

	manifest, err := gateway.LoadShellManifest(cfg.ShellManifestPath)
	if err != nil {
		cleanup()

		return nil, nil, err
	}

	gw, err := gateway.NewGateway(cfg, cacheStore, manifest)
	if err != nil {
		cleanup()

		return nil, nil, err
	}

	apiClient, err := api.NewClient(cfg)
	if err != nil {
		cleanup()

		return nil, nil, err
	}

	// Once the gateway activates, the client's same-origin requests are
	// served through the content cache.
	gw.RegisterClient(apiClient.HTTPClient())

	audioPartition, err := cacheStore.Partition(gateway.AudioPartitionName, cfg.AudioCacheVersion)
	if err != nil {
		cleanup()

		return nil, nil, err
	}

	service := library.NewService(cfg, store, apiClient, gw, audioPartition)

	return &components{
		store:          store,
		cache:          cacheStore,
		client:         apiClient,
		gateway:        gw,
		service:        service,
		audioPartition: audioPartition,
	}, cleanup, nil
}

// ExecuteServeCommand runs the gateway and the control API until the
// context is cancelled or either component fails.
func ExecuteServeCommand(ctx context.Context, cfg *config.Config) {
	app, cleanup, err := buildComponents(ctx, cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize application: %v", err)
	}

	defer cleanup()

	controlServer := server.NewServer(cfg, app.service, app.client, app.gateway, app.gateway.State)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errs := make(chan error, 2)

	go func() {
		errs <- app.gateway.Run(runCtx)
	}()

	go func() {
		errs <- controlServer.Run(runCtx)
	}()

	select {
	case err = <-errs:
	case <-ctx.Done():
	}

	if err != nil {
		logger.Fatalf(ctx, "Application stopped with error: %v", err)
	}

	// Let the other component shut down before closing the stores.
	cancel()
	<-errs

	logger.Info(ctx, "Application stopped")
}
