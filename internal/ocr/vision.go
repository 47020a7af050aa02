package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	vision "cloud.google.com/go/vision/v2/apiv1"
	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	"google.golang.org/api/option"
)

// Client recognizes the text of a scanned document image or PDF page.
type Client interface {
	RecognizeText(ctx context.Context, content []byte, languageHint string) (string, error)
	Close() error
}

type visionClient struct {
	annotator *vision.ImageAnnotatorClient
	logger    *slog.Logger
}

func NewVisionClient(ctx context.Context, logger *slog.Logger, opts ...option.ClientOption) (Client, error) {
	annotator, err := vision.NewImageAnnotatorClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating vision client: %w", err)
	}
	return &visionClient{
		annotator: annotator,
		logger:    logger,
	}, nil
}

func (c *visionClient) RecognizeText(ctx context.Context, content []byte, languageHint string) (string, error) {
	if len(content) == 0 {
		return "", nil
	}

	req := &visionpb.AnnotateImageRequest{
		Image: &visionpb.Image{Content: content},
		Features: []*visionpb.Feature{
			{Type: visionpb.Feature_DOCUMENT_TEXT_DETECTION},
		},
	}
	if languageHint != "" {
		req.ImageContext = &visionpb.ImageContext{LanguageHints: []string{languageHint}}
	}

	resp, err := c.annotator.BatchAnnotateImages(ctx, &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{req},
	})
	if err != nil {
		return "", fmt.Errorf("vision annotate: %w", err)
	}
	if resp == nil || len(resp.Responses) == 0 || resp.Responses[0] == nil {
		return "", nil
	}

	r0 := resp.Responses[0]
	if r0.Error != nil && r0.Error.Message != "" {
		return "", fmt.Errorf("vision annotate: %s", r0.Error.Message)
	}
	if r0.FullTextAnnotation == nil {
		return "", nil
	}

	text := strings.TrimSpace(r0.FullTextAnnotation.Text)
	c.logger.Debug("document text recognized", "chars", len(text))
	return text, nil
}

func (c *visionClient) Close() error {
	if c.annotator == nil {
		return nil
	}
	return c.annotator.Close()
}
