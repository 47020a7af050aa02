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
	"google.golang.org/grpc/health/grpc_health_v1"

	v1 "github.com/obratech/obras-tracker/gen/proto/obras/v1"
	"github.com/obratech/obras-tracker/internal/async"
	"github.com/obratech/obras-tracker/internal/blob"
	"github.com/obratech/obras-tracker/internal/common"
	"github.com/obratech/obras-tracker/internal/export"
	"github.com/obratech/obras-tracker/internal/extract"
	"github.com/obratech/obras-tracker/internal/linker"
	"github.com/obratech/obras-tracker/internal/ocr"
	"github.com/obratech/obras-tracker/internal/parser"
	"github.com/obratech/obras-tracker/internal/pipeline"
	repo "github.com/obratech/obras-tracker/internal/repository"
	"github.com/obratech/obras-tracker/internal/resolve"
	svc "github.com/obratech/obras-tracker/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	visionClient, err := ocr.NewVisionClient(ctx, logger)
	if err != nil {
		logger.Error("failed to create vision client", "error", err)
		os.Exit(1)
	}
	defer visionClient.Close()

	store, err := blob.NewGCSStore(ctx, cfg.Blob, logger)
	if err != nil {
		logger.Error("failed to create blob store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	suppliersRepo := repo.NewSupplierRepository(entc, logger)
	materialsRepo := repo.NewMaterialRepository(entc, logger)
	stagesRepo := repo.NewStageRepository(entc, logger)
	linksRepo := repo.NewStageMaterialRepository(entc, logger)
	documentsRepo := repo.NewBudgetDocumentRepository(entc, logger)
	jobsRepo := repo.NewIngestJobRepository(entc, logger)

	processor := pipeline.NewProcessor(
		extract.NewOCRExtractor(visionClient, cfg.OCR, logger),
		parser.NewParser(logger),
		resolve.NewResolver(materialsRepo, logger),
		linker.NewLinker(linksRepo, stagesRepo, logger),
		suppliersRepo,
		documentsRepo,
		jobsRepo,
		store,
		logger,
	)

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(6),
		async.WithQueueSize(512),
		async.WithProcessTimeout(3*time.Minute),
	)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	v1.RegisterIngestionServiceServer(grpcServer, svc.NewIngestionService(processor, queue, logger))
	v1.RegisterCatalogServiceServer(grpcServer, svc.NewCatalogService(suppliersRepo, materialsRepo, stagesRepo, linksRepo, logger))
	v1.RegisterExportServiceServer(grpcServer, svc.NewExportService(export.NewService(stagesRepo, linksRepo, materialsRepo, logger), logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	logger.Info("obras-tracker listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
