// Package extract turns request inputs (uploaded file, URL, or raw text)
// into a Document for analysis. Extraction failures degrade to an empty
// document instead of erroring: the pipeline downstream reports "no text
// extracted" through its structured empty result, mirroring how a person
// pasting a bad link still expects a well-formed response.
package extract

import (
	"context"
	"io"
	"log/slog"

	"clausescan/internal/domain/entity"
	"clausescan/internal/observability/metrics"
)

// ContentFetcher fetches a page and returns its readable plain text.
type ContentFetcher interface {
	FetchText(ctx context.Context, url string) (string, error)
}

// FileExtractor decodes an uploaded document into plain text.
type FileExtractor interface {
	Extract(r io.Reader) (string, error)
}

// Service resolves the three input sources into documents.
type Service struct {
	fetcher   ContentFetcher
	extractor FileExtractor
	logger    *slog.Logger
}

// NewService builds the extraction service.
func NewService(fetcher ContentFetcher, extractor FileExtractor, logger *slog.Logger) *Service {
	return &Service{fetcher: fetcher, extractor: extractor, logger: logger}
}

// FromFile extracts text from an uploaded file. Decode failures yield an
// empty document labeled with the filename.
func (s *Service) FromFile(ctx context.Context, r io.Reader, filename string) entity.Document {
	doc := entity.Document{SourceLabel: filename, SourceKind: entity.SourceFile}

	text, err := s.extractor.Extract(r)
	if err != nil {
		metrics.RecordExtractionFailure(string(entity.SourceFile))
		s.logger.Warn("file extraction failed",
			slog.String("filename", filename),
			slog.String("error", err.Error()))
		return doc
	}
	doc.RawText = text
	return doc
}

// FromURL fetches the page at url and extracts its text. Fetch failures
// (bad URL, unreachable host, SSRF block, unreadable page) yield an empty
// document labeled with the URL.
func (s *Service) FromURL(ctx context.Context, url string) entity.Document {
	doc := entity.Document{SourceLabel: url, SourceKind: entity.SourceURL}

	text, err := s.fetcher.FetchText(ctx, url)
	if err != nil {
		metrics.RecordExtractionFailure(string(entity.SourceURL))
		s.logger.Warn("url extraction failed",
			slog.String("url", url),
			slog.String("error", err.Error()))
		return doc
	}
	doc.RawText = text
	return doc
}

// FromText wraps raw pasted text in a document. It never fails; empty
// input simply produces an empty document.
func (s *Service) FromText(text string) entity.Document {
	return entity.Document{
		RawText:     text,
		SourceLabel: "pasted_text",
		SourceKind:  entity.SourceText,
	}
}
