package extract

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"clausescan/internal/domain/entity"
)

type stubFetcher struct {
	text string
	err  error
}

func (s *stubFetcher) FetchText(_ context.Context, _ string) (string, error) {
	return s.text, s.err
}

type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) Extract(_ io.Reader) (string, error) {
	return s.text, s.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestService_FromText(t *testing.T) {
	svc := NewService(&stubFetcher{}, &stubExtractor{}, testLogger())

	doc := svc.FromText("some pasted terms")

	assert.Equal(t, "some pasted terms", doc.RawText)
	assert.Equal(t, "pasted_text", doc.SourceLabel)
	assert.Equal(t, entity.SourceText, doc.SourceKind)
}

func TestService_FromText_Empty(t *testing.T) {
	svc := NewService(&stubFetcher{}, &stubExtractor{}, testLogger())

	doc := svc.FromText("")

	assert.Empty(t, doc.RawText)
	assert.Equal(t, entity.SourceText, doc.SourceKind)
}

func TestService_FromFile(t *testing.T) {
	svc := NewService(&stubFetcher{}, &stubExtractor{text: "file contents"}, testLogger())

	doc := svc.FromFile(context.Background(), strings.NewReader("ignored"), "terms.txt")

	assert.Equal(t, "file contents", doc.RawText)
	assert.Equal(t, "terms.txt", doc.SourceLabel)
	assert.Equal(t, entity.SourceFile, doc.SourceKind)
}

func TestService_FromFile_ExtractionFailure(t *testing.T) {
	svc := NewService(&stubFetcher{}, &stubExtractor{err: errors.New("bad encoding")}, testLogger())

	doc := svc.FromFile(context.Background(), strings.NewReader(""), "broken.bin")

	assert.Empty(t, doc.RawText, "failed extraction degrades to an empty document")
	assert.Equal(t, "broken.bin", doc.SourceLabel)
	assert.Equal(t, entity.SourceFile, doc.SourceKind)
}

func TestService_FromURL(t *testing.T) {
	svc := NewService(&stubFetcher{text: "page text"}, &stubExtractor{}, testLogger())

	doc := svc.FromURL(context.Background(), "https://example.com/terms")

	assert.Equal(t, "page text", doc.RawText)
	assert.Equal(t, "https://example.com/terms", doc.SourceLabel)
	assert.Equal(t, entity.SourceURL, doc.SourceKind)
}

func TestService_FromURL_FetchFailure(t *testing.T) {
	svc := NewService(&stubFetcher{err: errors.New("connection refused")}, &stubExtractor{}, testLogger())

	doc := svc.FromURL(context.Background(), "https://down.example.com")

	assert.Empty(t, doc.RawText, "failed fetch degrades to an empty document")
	assert.Equal(t, "https://down.example.com", doc.SourceLabel)
	assert.Equal(t, entity.SourceURL, doc.SourceKind)
}
