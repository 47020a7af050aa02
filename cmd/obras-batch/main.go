package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/obratech/obras-tracker/internal/async"
	"github.com/obratech/obras-tracker/internal/blob"
	"github.com/obratech/obras-tracker/internal/common"
	"github.com/obratech/obras-tracker/internal/extract"
	"github.com/obratech/obras-tracker/internal/intake"
	"github.com/obratech/obras-tracker/internal/linker"
	"github.com/obratech/obras-tracker/internal/ocr"
	"github.com/obratech/obras-tracker/internal/parser"
	"github.com/obratech/obras-tracker/internal/pipeline"
	repo "github.com/obratech/obras-tracker/internal/repository"
	"github.com/obratech/obras-tracker/internal/resolve"
)

// obras-batch ingests a directory of budget PDFs for one supplier and
// stage, optionally staying alive to watch the directory for new drops.
func main() {
	var (
		dir        = flag.String("dir", "", "directory of budget PDFs")
		supplierID = flag.String("supplier", "", "supplier UUID")
		projectID  = flag.String("project", "", "project UUID")
		stageID    = flag.String("stage", "", "stage UUID")
		ownerID    = flag.String("owner", "", "owner UUID")
		watch      = flag.Bool("watch", false, "keep watching the directory for new files")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	target, ok := parseTarget(*supplierID, *projectID, *stageID, *ownerID, logger)
	if !ok || *dir == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

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

	materialsRepo := repo.NewMaterialRepository(entc, logger)
	stagesRepo := repo.NewStageRepository(entc, logger)
	linksRepo := repo.NewStageMaterialRepository(entc, logger)

	processor := pipeline.NewProcessor(
		extract.NewOCRExtractor(visionClient, cfg.OCR, logger),
		parser.NewParser(logger),
		resolve.NewResolver(materialsRepo, logger),
		linker.NewLinker(linksRepo, stagesRepo, logger),
		repo.NewSupplierRepository(entc, logger),
		repo.NewBudgetDocumentRepository(entc, logger),
		repo.NewIngestJobRepository(entc, logger),
		store,
		logger,
	)

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(4),
		async.WithProcessTimeout(3*time.Minute),
	)
	fsIntake := intake.NewFSIntake(queue, logger)

	stats, err := fsIntake.EnqueueDirectory(ctx, target, *dir, true)
	if err != nil {
		logger.Error("directory intake failed", "dir", *dir, "error", err)
		os.Exit(1)
	}
	logger.Info("directory intake complete",
		"scanned", stats.Scanned, "matched", stats.Matched,
		"enqueued", stats.Enqueued, "failed", stats.Failed)

	if *watch {
		evCh, errCh, err := intake.StartWatcher(ctx, intake.WatchConfig{
			Roots:    []string{*dir},
			Debounce: 2 * time.Second,
		})
		if err != nil {
			logger.Error("failed to start watcher", "error", err)
			os.Exit(1)
		}
		logger.Info("watching for new budget documents", "dir", *dir)

	loop:
		for {
			select {
			case <-ctx.Done():
				break loop
			case path, open := <-evCh:
				if !open {
					break loop
				}
				if err := fsIntake.EnqueuePath(ctx, target, path); err != nil {
					logger.Warn("failed to enqueue dropped document", "path", path, "error", err)
				}
			case werr, open := <-errCh:
				if open && werr != nil {
					logger.Warn("watcher error", "error", werr)
				}
			}
		}
	}

	queue.Shutdown(context.Background())
}

func parseTarget(supplier, project, stage, owner string, logger *slog.Logger) (intake.Target, bool) {
	parse := func(v, name string) (uuid.UUID, bool) {
		id, err := uuid.Parse(v)
		if err != nil {
			logger.Error("invalid UUID flag", "flag", name, "value", v)
			return uuid.Nil, false
		}
		return id, true
	}

	supplierID, ok := parse(supplier, "supplier")
	if !ok {
		return intake.Target{}, false
	}
	projectID, ok := parse(project, "project")
	if !ok {
		return intake.Target{}, false
	}
	stageID, ok := parse(stage, "stage")
	if !ok {
		return intake.Target{}, false
	}
	ownerID, ok := parse(owner, "owner")
	if !ok {
		return intake.Target{}, false
	}
	return intake.Target{
		SupplierID: supplierID,
		ProjectID:  projectID,
		StageID:    stageID,
		OwnerID:    ownerID,
	}, true
}
