package intake

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obratech/obras-tracker/internal/async"
)

type captureQueue struct {
	jobs []async.Job
}

func (q *captureQueue) Enqueue(_ context.Context, job async.Job) error {
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *captureQueue) Shutdown(context.Context) {}

func TestIsPDF(t *testing.T) {
	assert.True(t, IsPDF("orcamento.pdf"))
	assert.True(t, IsPDF("ORCAMENTO.PDF"))
	assert.False(t, IsPDF("foto.png"))
	assert.False(t, IsPDF("orcamento"))
}

func TestIsHidden(t *testing.T) {
	assert.True(t, IsHidden("/tmp/.DS_Store"))
	assert.True(t, IsHidden(".cache"))
	assert.False(t, IsHidden("/tmp/orcamento.pdf"))
}

func TestEnqueueDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.pdf"), []byte("%PDF-1.4 a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.pdf"), []byte("%PDF-1.4 b"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notas.txt"), []byte("skip"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden.pdf"), []byte("skip"), 0o644))

	queue := &captureQueue{}
	i := NewFSIntake(queue, slog.Default())

	target := Target{
		SupplierID: uuid.New(),
		ProjectID:  uuid.New(),
		StageID:    uuid.New(),
		OwnerID:    uuid.New(),
	}
	stats, err := i.EnqueueDirectory(context.Background(), target, dir, true)
	require.NoError(t, err)

	assert.Equal(t, uint32(2), stats.Matched)
	assert.Equal(t, uint32(2), stats.Enqueued)
	assert.Equal(t, uint32(0), stats.Failed)
	require.Len(t, queue.jobs, 2)

	job := queue.jobs[0]
	assert.Equal(t, "application/pdf", job.Request.Document.ContentType)
	assert.Equal(t, target.SupplierID, job.Request.SupplierID)
	assert.NotEmpty(t, job.Request.Document.Bytes)
}
