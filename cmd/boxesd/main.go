package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	boxespb "github.com/teerapat-ng/docbox/gen/proto/boxes/v1"
	"github.com/teerapat-ng/docbox/internal/async"
	"github.com/teerapat-ng/docbox/internal/boxes"
	"github.com/teerapat-ng/docbox/internal/common"
	"github.com/teerapat-ng/docbox/internal/export"
	"github.com/teerapat-ng/docbox/internal/extract"
	"github.com/teerapat-ng/docbox/internal/pipeline"
	"github.com/teerapat-ng/docbox/internal/repository"
	"github.com/teerapat-ng/docbox/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("database open failed", "error", err)
		os.Exit(1)
	}
	defer repository.Close(client, pool, logger)

	if err := repository.HealthCheck(ctx, pool, 3*time.Second, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}
	if err := client.Schema.Create(ctx); err != nil {
		logger.Error("schema migration failed", "error", err)
		os.Exit(1)
	}

	businesses := repository.NewBusinessRepository(client, logger)
	boxRepo := repository.NewBoxRepository(client, logger)
	documents := repository.NewDocumentRepository(client, logger)
	extractions := repository.NewExtractionRepository(client, logger)
	overrides := repository.NewOverrideRepository(client, logger)

	views := boxes.NewService(boxRepo, extractions, overrides, logger)
	exporter := export.NewService(boxRepo, views, logger)

	reader := extract.NewHTTPReader(cfg.Reader, logger)
	processor := pipeline.NewProcessor(reader, boxRepo, documents, extractions, logger)
	queue := async.NewReaderQueue(processor, logger,
		async.WithWorkers(cfg.Reader.Workers),
		async.WithJobTimeout(cfg.Reader.Timeout+30*time.Second),
	)

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	svc := server.NewBoxesService(businesses, boxRepo, documents, extractions, views, processor, exporter, queue, logger)
	boxespb.RegisterBoxesServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	queue.Shutdown(shutdownCtx)
	grpcServer.GracefulStop()
	logger.Info("stopped")
}
