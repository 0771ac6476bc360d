package analyze

import (
	usecase "clausescan/internal/usecase/analyze"
)

// SummaryResponse is the JSON body returned by POST /summarizer. Field
// names are part of the public contract consumed by the frontend; the
// mixed camelCase / snake_case is historical and deliberate.
type SummaryResponse struct {
	Title            string         `json:"title"`
	Summary          string         `json:"summary"`
	KeyPoints        []string       `json:"keyPoints"`
	RiskLevel        string         `json:"riskLevel"`
	ReadingTime      string         `json:"readingTime"`
	ImportantClauses []string       `json:"importantClauses"`
	RawExtracted     *string        `json:"raw_extracted"`
	Metadata         map[string]any `json:"metadata"`
}

// riskDetails is the risk breakdown embedded in response metadata.
type riskDetails struct {
	Score int      `json:"score"`
	Level string   `json:"level"`
	Found []string `json:"found"`
}

// newSummaryResponse maps a pipeline result to the wire format. Slices are
// never null on the wire: the frontend iterates them unconditionally.
func newSummaryResponse(result usecase.Result, includeRaw bool) SummaryResponse {
	resp := SummaryResponse{
		Title:            result.Title,
		Summary:          result.Summary,
		KeyPoints:        emptyIfNil(result.KeyPoints),
		RiskLevel:        string(result.Risk.Level),
		ReadingTime:      result.ReadingTime,
		ImportantClauses: emptyIfNil(result.ImportantClauses),
		Metadata: map[string]any{
			"chunks":     result.ChunkCount,
			"word_count": result.WordCount,
			"risk_details": riskDetails{
				Score: result.Risk.Score,
				Level: string(result.Risk.Level),
				Found: emptyIfNil(result.Risk.Found),
			},
			"clauses_found_count": result.ClauseCounts,
		},
	}
	if includeRaw {
		resp.RawExtracted = &result.Normalized
	}
	return resp
}

// newEmptyResponse is the structured result for requests that yielded no
// analyzable text. Always HTTP 200: a bad document is a valid outcome,
// reported through metadata rather than an error status.
func newEmptyResponse(title, errMsg string) SummaryResponse {
	return SummaryResponse{
		Title:            title,
		Summary:          "",
		KeyPoints:        []string{},
		RiskLevel:        "low",
		ReadingTime:      "0",
		ImportantClauses: []string{},
		Metadata:         map[string]any{"error": errMsg},
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
