package extract

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obratech/obras-tracker/internal/common"
	"github.com/obratech/obras-tracker/internal/entity"
)

type fakeOCRClient struct {
	text  string
	err   error
	calls int
	hint  string
}

func (f *fakeOCRClient) RecognizeText(_ context.Context, _ []byte, languageHint string) (string, error) {
	f.calls++
	f.hint = languageHint
	return f.text, f.err
}

func (f *fakeOCRClient) Close() error { return nil }

func testConfig() common.OCRConfig {
	return common.OCRConfig{LanguageHint: "pt", Timeout: 5 * time.Second}
}

func TestExtractRejectsUnsupportedFormat(t *testing.T) {
	client := &fakeOCRClient{}
	e := NewOCRExtractor(client, testConfig(), slog.Default())

	_, err := e.Extract(context.Background(), entity.RawDocument{
		Bytes:       []byte("not a pdf"),
		ContentType: "image/png",
		Filename:    "photo.png",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnsupportedFormat)
	// Rejection happens before any recognition call.
	assert.Equal(t, 0, client.calls)
}

func TestExtractWrapsOCRFailure(t *testing.T) {
	client := &fakeOCRClient{err: errors.New("deadline exceeded")}
	e := NewOCRExtractor(client, testConfig(), slog.Default())

	_, err := e.Extract(context.Background(), entity.RawDocument{
		Bytes:       []byte("%PDF-1.4"),
		ContentType: "application/pdf",
		Filename:    "orcamento.pdf",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrExtractionFailed)
	assert.Equal(t, 1, client.calls)
}

func TestExtractPassesLanguageHint(t *testing.T) {
	client := &fakeOCRClient{text: "ORCAMENTO N 1234"}
	e := NewOCRExtractor(client, testConfig(), slog.Default())

	res, err := e.Extract(context.Background(), entity.RawDocument{
		Bytes:       []byte("%PDF-1.4"),
		ContentType: "application/pdf; charset=binary",
		Filename:    "orcamento.pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, "ORCAMENTO N 1234", res.Text)
	assert.Equal(t, "PDF", res.Format)
	assert.Equal(t, "pt", client.hint)
}
