package intake

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/obratech/obras-tracker/internal/async"
	"github.com/obratech/obras-tracker/internal/entity"
	"github.com/obratech/obras-tracker/internal/pipeline"
)

// Target names the supplier, project and stage a dropped document belongs
// to. Batch intake processes one drop directory per target.
type Target struct {
	SupplierID uuid.UUID
	ProjectID  uuid.UUID
	StageID    uuid.UUID
	OwnerID    uuid.UUID
}

// DirStats summarizes one directory scan.
type DirStats struct {
	Scanned  uint32
	Matched  uint32
	Enqueued uint32
	Failed   uint32
}

// FSIntake reads budget documents from the local filesystem and hands them
// to the ingestion queue.
type FSIntake struct {
	queue  async.Queue
	logger *slog.Logger
}

func NewFSIntake(queue async.Queue, logger *slog.Logger) *FSIntake {
	return &FSIntake{
		queue:  queue,
		logger: logger,
	}
}

// EnqueuePath reads one PDF and queues it for ingestion.
func (i *FSIntake) EnqueuePath(ctx context.Context, target Target, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return err
	}

	req := pipeline.Request{
		Document: entity.RawDocument{
			Bytes:       data,
			ContentType: "application/pdf",
			Filename:    filepath.Base(abs),
		},
		SupplierID: target.SupplierID,
		ProjectID:  target.ProjectID,
		StageID:    target.StageID,
		OwnerID:    target.OwnerID,
	}
	return i.queue.Enqueue(ctx, async.Job{Request: req})
}

// EnqueueDirectory walks root, skips hidden entries if requested, and
// queues every PDF found. Per-file failures are logged and counted, not
// fatal.
func (i *FSIntake) EnqueueDirectory(ctx context.Context, target Target, root string, skipHidden bool) (DirStats, error) {
	var stats DirStats
	if strings.TrimSpace(root) == "" {
		return stats, os.ErrNotExist
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			stats.Failed++
			i.logger.Warn("skipping unreadable path", "path", path, "error", walkErr)
			return nil
		}
		if skipHidden && IsHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !IsPDF(path) {
			return nil
		}
		stats.Matched++

		if err := i.EnqueuePath(ctx, target, path); err != nil {
			stats.Failed++
			i.logger.Warn("failed to enqueue document", "path", path, "error", err)
			return nil
		}
		stats.Enqueued++
		return nil
	})
	if err != nil {
		return stats, err
	}
	return stats, nil
}

// IsPDF checks the file extension; content-type enforcement happens again
// in the pipeline.
func IsPDF(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".pdf")
}

// IsHidden checks if a file or directory is hidden (starts with '.').
func IsHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}
