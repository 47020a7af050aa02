package extract

import (
	"context"
	"log/slog"
	"time"

	"github.com/obratech/obras-tracker/constants"
	"github.com/obratech/obras-tracker/internal/common"
	"github.com/obratech/obras-tracker/internal/entity"
	"github.com/obratech/obras-tracker/internal/ocr"
)

// TextExtractionResult carries the recognized text of one document.
type TextExtractionResult struct {
	Text     string
	Format   string
	Language string
	Duration time.Duration
}

// TextExtractor turns an uploaded document into plain text. Unsupported
// media types and recognition failures are both fatal for the run: there is
// nothing downstream stages could do without text.
type TextExtractor interface {
	Extract(ctx context.Context, doc entity.RawDocument) (TextExtractionResult, error)
}

type ocrExtractor struct {
	client ocr.Client
	cfg    common.OCRConfig
	logger *slog.Logger
}

func NewOCRExtractor(client ocr.Client, cfg common.OCRConfig, logger *slog.Logger) TextExtractor {
	return &ocrExtractor{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

func (e *ocrExtractor) Extract(ctx context.Context, doc entity.RawDocument) (TextExtractionResult, error) {
	format := constants.MapContentTypeToFormat(doc.ContentType)
	if format == "" {
		e.logger.Warn("rejected document with unsupported media type",
			"content_type", doc.ContentType, "filename", doc.Filename)
		return TextExtractionResult{}, common.NewAppError("UNSUPPORTED_FORMAT",
			"only PDF documents are accepted", common.ErrUnsupportedFormat)
	}

	ctx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	start := time.Now()
	text, err := e.client.RecognizeText(ctx, doc.Bytes, e.cfg.LanguageHint)
	if err != nil {
		e.logger.Error("text recognition failed", "filename", doc.Filename, "error", err)
		return TextExtractionResult{}, common.NewAppError("EXTRACTION_FAILURE",
			"could not read text from document", common.ErrExtractionFailed)
	}

	return TextExtractionResult{
		Text:     text,
		Format:   format,
		Language: e.cfg.LanguageHint,
		Duration: time.Since(start),
	}, nil
}
