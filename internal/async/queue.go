package async

import (
	"context"
	"time"

	"github.com/obratech/obras-tracker/internal/pipeline"
)

// Job wraps one ingestion request for background processing.
type Job struct {
	Request     pipeline.Request
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
