package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/rpg-sheet/internal/handlers/roster/v1alpha1"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/roster"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
)

var (
	grpcPort    int
	serverFlags storeFlags
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long: `Start the roster gRPC server. The stored sheet is loaded on startup;
changes are kept in memory until a client calls SaveSheet.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (env RPG_SHEET_GRPC_PORT, default 50051)")
	serverFlags.register(serverCmd)
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, &serverFlags)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.GRPCPort = grpcPort
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	repo, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	engine, err := buildEngine(cfg, dice.DefaultRoller)
	if err != nil {
		return err
	}

	bus := events.NewBus()
	subscribeCheckLogger(bus)

	rosterService, err := roster.NewOrchestrator(&roster.Config{
		Engine:    engine,
		SheetRepo: repo,
		EventBus:  bus,
		Clock:     clock.New(),
		SheetID:   cfg.SheetID,
	})
	if err != nil {
		return fmt.Errorf("failed to create roster service: %w", err)
	}

	loaded, err := rosterService.LoadSheet(ctx, &roster.LoadSheetInput{})
	if err != nil {
		return fmt.Errorf("failed to load sheet: %w", err)
	}
	slog.InfoContext(ctx, "sheet ready",
		"sheet_id", cfg.SheetID,
		"loaded", loaded.Loaded,
		"characters", len(loaded.Sheet.Characters),
	)

	rosterHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		RosterService: rosterService,
	})
	if err != nil {
		return fmt.Errorf("failed to create roster handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	logger := interceptorLogger(slog.Default())
	recovery := grpc_recovery.WithRecoveryHandlerContext(recoverPanic)
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(logger),
			grpc_recovery.UnaryServerInterceptor(recovery),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(logger),
			grpc_recovery.StreamServerInterceptor(recovery),
		),
	)

	v1alpha1.RegisterRosterServiceServer(srv, rosterHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.GRPCPort, "store", cfg.Store)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down gRPC server")
		healthServer.Shutdown()
		return shutdown(srv, cfg.ShutdownTimeout)
	case err := <-errChan:
		return err
	}
}

func shutdown(srv *grpc.Server, timeout time.Duration) error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-shutdownCtx.Done():
		slog.Warn("graceful shutdown timeout exceeded, forcing stop")
		srv.Stop()
	case <-stopped:
		slog.Info("server stopped gracefully")
	}
	return nil
}

// interceptorLogger adapts slog to the middleware logger. The middleware
// levels share slog's numeric values.
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}

func recoverPanic(ctx context.Context, p any) error {
	slog.ErrorContext(ctx, "recovered from panic", "panic", p)
	return status.Error(codes.Internal, "internal error")
}

// subscribeCheckLogger records every resolved check at debug level
func subscribeCheckLogger(bus events.EventBus) {
	logResolved := func(ctx context.Context, e events.Event) error {
		result, _ := e.Context().Get(roster.EventKeyResult)
		slog.DebugContext(ctx, "check event",
			"event", e.Type(),
			"source", e.Source().GetID(),
			"result", result,
		)
		return nil
	}
	bus.SubscribeFunc(roster.EventSkillCheckResolved, 0, logResolved)
	bus.SubscribeFunc(roster.EventPartySkillCheckResolved, 0, logResolved)
}
