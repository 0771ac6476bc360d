package analyze

import (
	"log/slog"
	"net/http"

	usecase "clausescan/internal/usecase/analyze"
	"clausescan/internal/usecase/extract"
)

// Register wires the analysis endpoint onto the mux.
func Register(mux *http.ServeMux, extractor *extract.Service, analyzer *usecase.Service, logger *slog.Logger) {
	h := &Handler{Extractor: extractor, Analyzer: analyzer, Logger: logger}
	// Equivalent of the "POST /summarizer" method pattern; Go 1.21's
	// ServeMux does not support method patterns.
	mux.Handle("/summarizer", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		h.ServeHTTP(w, r)
	}))
}
