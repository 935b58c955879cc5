// internal/tools/retrieve-docs/executor.go
package retrievedocs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// attempt issues one Responses API call bounded by ctx. Exactly one of the
// return values is non-nil. A non-2xx response is handed back with its body
// unread; the classifier owns that read.
func (h *Handler) attempt(ctx context.Context, searchReq *SearchRequest) ([]Chunk, *attemptFailure) {
	payload, err := json.Marshal(searchReq)
	if err != nil {
		return nil, &attemptFailure{err: err}
	}

	req, err := http.NewRequest(http.MethodPost, h.config.APIBaseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, &attemptFailure{err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+h.config.APIKey)
	req.Header.Set("OpenAI-Beta", "responses=v1")

	resp, err := h.client.Do(ctx, req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded || errors.Is(err, context.DeadlineExceeded) {
			return nil, &attemptFailure{timeout: true}
		}
		return nil, &attemptFailure{err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &attemptFailure{resp: resp}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &attemptFailure{err: err}
	}

	if h.config.Debug {
		h.logger.Debug("raw responses payload", map[string]interface{}{
			"body": string(body),
		})
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &attemptFailure{err: err}
	}

	return normalizeOutput(parsed.Output), nil
}
