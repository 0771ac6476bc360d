// Package analyze exposes the document analysis pipeline over HTTP.
package analyze

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"clausescan/internal/domain/entity"
	"clausescan/internal/handler/http/respond"
	"clausescan/internal/observability/logging"
	usecase "clausescan/internal/usecase/analyze"
	"clausescan/internal/usecase/extract"
)

// maxMultipartMemory bounds the in-memory portion of multipart parsing;
// larger uploads spill to temp files.
const maxMultipartMemory = 32 << 20

// Handler serves POST /summarizer. The request carries exactly one input
// in a multipart form: an uploaded file, a url field, or a text_body
// field. When several are present, file wins over url, url over text.
type Handler struct {
	Extractor *extract.Service
	Analyzer  *usecase.Service
	Logger    *slog.Logger
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := logging.WithRequestID(r.Context(), h.Logger)

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		// Accept ordinary form encodings too; only fail when nothing
		// parseable arrived at all.
		if parseErr := r.ParseForm(); parseErr != nil {
			respond.SafeError(w, http.StatusBadRequest, errors.New("invalid form data"))
			return
		}
	}

	doc, ok := h.resolveInput(r)
	if !ok {
		respond.JSON(w, http.StatusOK, newEmptyResponse("", entity.ErrNoInput.Error()))
		return
	}

	includeRaw, _ := strconv.ParseBool(r.FormValue("include_raw"))

	result, err := h.Analyzer.Analyze(r.Context(), doc)
	if err != nil {
		if errors.Is(err, entity.ErrNoTextExtracted) {
			respond.JSON(w, http.StatusOK, newEmptyResponse(doc.SourceLabel, entity.ErrNoTextExtracted.Error()))
			return
		}
		logger.Error("analysis failed",
			slog.String("source", doc.SourceLabel),
			slog.String("error", err.Error()))
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, newSummaryResponse(result, includeRaw))
}

// resolveInput extracts a document from whichever input the request
// carries. The second return is false when the request carried none.
func (h *Handler) resolveInput(r *http.Request) (entity.Document, bool) {
	if file, header, err := r.FormFile("file"); err == nil {
		defer func() { _ = file.Close() }()
		return h.Extractor.FromFile(r.Context(), file, header.Filename), true
	}

	if url := r.FormValue("url"); url != "" {
		return h.Extractor.FromURL(r.Context(), url), true
	}

	if text := r.FormValue("text_body"); text != "" {
		return h.Extractor.FromText(text), true
	}

	return entity.Document{}, false
}
