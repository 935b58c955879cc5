// internal/tools/retrieve-docs/normalizer.go
package retrievedocs

import (
	"encoding/json"

	"github.com/google/uuid"
)

const fileSearchCallType = "file_search_call"

// normalizeOutput flattens file_search_call output items into a single
// chunk list, preserving result order across items and within each item.
// Items of other types and malformed result lists are skipped; a missing
// id gets a generated display token, missing text/score get zero values.
func normalizeOutput(output []outputItem) []Chunk {
	chunks := []Chunk{}
	for _, item := range output {
		if item.Type != fileSearchCallType || len(item.Results) == 0 {
			continue
		}
		var results []resultItem
		if err := json.Unmarshal(item.Results, &results); err != nil {
			continue
		}
		for _, r := range results {
			id := r.ID
			if id == "" {
				id = "chunk-" + uuid.NewString()
			}
			chunks = append(chunks, Chunk{ID: id, Text: r.Text, Score: r.Score})
		}
	}
	return chunks
}
