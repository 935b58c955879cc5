// internal/tools/retrieve-docs/models.go
package retrievedocs

import "encoding/json"

// Chunk is one unit of retrieved text with its relevance score, as
// returned to the MCP caller.
type Chunk struct {
	ID    string  `json:"id"`
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

// SearchRequest is the body POSTed to the OpenAI Responses API. Built once
// per invocation and immutable thereafter.
type SearchRequest struct {
	Model   string       `json:"model"`
	Input   string       `json:"input"`
	Include []string     `json:"include"`
	Tools   []SearchTool `json:"tools"`
}

type SearchTool struct {
	Type           string   `json:"type"`
	VectorStoreIDs []string `json:"vector_store_ids"`
	MaxNumResults  int      `json:"max_num_results"`
}

func newSearchRequest(vectorStoreID, question string) *SearchRequest {
	return &SearchRequest{
		Model:   modelID,
		Input:   question,
		Include: []string{"file_search_call.results"},
		Tools: []SearchTool{{
			Type:           "file_search",
			VectorStoreIDs: []string{vectorStoreID},
			MaxNumResults:  maxNumResults,
		}},
	}
}

// searchResponse mirrors the Responses API envelope. Output items are
// heterogeneous; only file_search_call items carry results.
type searchResponse struct {
	Output []outputItem `json:"output"`
}

// Results stays raw so one malformed list skips a single item rather than
// failing the whole response decode.
type outputItem struct {
	Type    string          `json:"type"`
	Results json.RawMessage `json:"results"`
}

type resultItem struct {
	ID    string  `json:"id"`
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}
