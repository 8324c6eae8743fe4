package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	apiv1alpha1 "github.com/tinkertools/tinker-api/internal/api/tinkertools/v1alpha1"
	"github.com/tinkertools/tinker-api/internal/config"
	"github.com/tinkertools/tinker-api/internal/errors"
	"github.com/tinkertools/tinker-api/internal/handlers/tinkertools/v1alpha1"
	"github.com/tinkertools/tinker-api/internal/orchestrators/compatibility"
	"github.com/tinkertools/tinker-api/internal/orchestrators/items"
	"github.com/tinkertools/tinker-api/internal/orchestrators/profiles"
	"github.com/tinkertools/tinker-api/internal/pkg/clock"
	"github.com/tinkertools/tinker-api/internal/pkg/idgen"
	"github.com/tinkertools/tinker-api/internal/repositories/itemcache"
	itemsrepo "github.com/tinkertools/tinker-api/internal/repositories/items"
	profilesrepo "github.com/tinkertools/tinker-api/internal/repositories/profiles"
	"github.com/tinkertools/tinker-api/internal/telemetry"
)

var (
	grpcPort int
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the TinkerTools API gRPC server with all configured services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides config)")
}

func runServer(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if grpcPort != 0 {
		cfg.Server.Port = grpcPort
	}

	slog.SetDefault(slog.New(cfg.Log.Handler()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			slog.Warn("Failed to flush traces", "error", err)
		}
	}()

	store, err := openStore(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Warn("Failed to close item store", "error", err)
		}
	}()

	handler, cleanup, err := buildHandler(ctx, cfg, store)
	if err != nil {
		return err
	}
	defer cleanup()

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := newGRPCServer()
	apiv1alpha1.RegisterTinkerServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(apiv1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting",
			"port", cfg.Server.Port,
			"storage", cfg.Storage.Driver,
			"redis", cfg.Redis.Enabled)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// buildHandler wires repositories and orchestrators. Without Redis the item
// store is used uncached and profile methods are unavailable.
func buildHandler(ctx context.Context, cfg *config.Config, store itemsrepo.Store) (*v1alpha1.Handler, func(), error) {
	cleanup := func() {}
	var itemRepo itemsrepo.Repository = store
	var profileService profiles.Service

	if cfg.Redis.Enabled {
		redisClient, err := connectRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		cleanup = func() {
			_ = redisClient.Close() // nolint:errcheck // safe to ignore in cleanup
		}

		itemRepo, err = itemcache.New(&itemcache.Config{
			Client: redisClient,
			Next:   store,
			TTL:    cfg.Redis.CacheTTL,
		})
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to create item cache: %w", err)
		}

		profileRepo, err := profilesrepo.NewRedis(&profilesrepo.RedisConfig{Client: redisClient})
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to create profile repository: %w", err)
		}

		profileService, err = profiles.NewOrchestrator(&profiles.Config{
			ProfileRepo: profileRepo,
			IDGenerator: idgen.NewUUID(profiles.IDPrefix),
			Clock:       clock.New(),
		})
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to create profile service: %w", err)
		}
	}

	itemService, err := items.NewOrchestrator(&items.Config{ItemRepo: itemRepo})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create item service: %w", err)
	}

	compatibilityService, err := compatibility.NewOrchestrator(&compatibility.Config{
		ItemService:    itemService,
		ProfileService: profileService,
		Parallelism:    cfg.Evaluation.Parallelism,
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create compatibility service: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		ItemService:          itemService,
		ProfileService:       profileService,
		CompatibilityService: compatibilityService,
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create handler: %w", err)
	}

	return handler, cleanup, nil
}

func newGRPCServer() *grpc.Server {
	logger := grpc_logging.LoggerFunc(logFunc)
	logOpts := []grpc_logging.Option{
		grpc_logging.WithLogOnEvents(grpc_logging.FinishCall),
	}
	recoveryOpts := []grpc_recovery.Option{
		grpc_recovery.WithRecoveryHandlerContext(recoverPanic),
	}

	return grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(logger, logOpts...),
			grpc_recovery.UnaryServerInterceptor(recoveryOpts...),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(logger, logOpts...),
			grpc_recovery.StreamServerInterceptor(recoveryOpts...),
		),
	)
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Default().Log(ctx, slog.Level(level), msg, fields...)
}

func recoverPanic(ctx context.Context, p any) error {
	slog.ErrorContext(ctx, "Recovered from panic in handler", "panic", p)
	return errors.ToGRPCError(errors.Internal("internal error"))
}
