// internal/tools/retrieve-docs/handler.go
package retrievedocs

import (
	"context"
	"time"

	mcperrors "docsearch-mcp/internal/common/errors"
	commonhttp "docsearch-mcp/internal/common/http"
	"docsearch-mcp/internal/common/logger"
	"docsearch-mcp/internal/common/metrics"
	"docsearch-mcp/internal/common/observability"
)

const ToolName = "retrieveDocs"

type Handler struct {
	config *Config
	client *commonhttp.Client
	obs    *observability.Observability
	logger logger.Logger
}

func NewHandler(config *Config, client *commonhttp.Client, obs *observability.Observability, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		client: client,
		obs:    obs,
		logger: log.With(map[string]interface{}{
			"tool": ToolName,
		}),
	}
}

// Retrieve drives up to MaxAttempts sequential upstream calls and produces
// exactly one of: a normalized chunk list, or a structured McpError.
// Transient failures (rate limit, upstream 5xx, network, timeout) back off
// and retry; anything else stops immediately.
func (h *Handler) Retrieve(ctx context.Context, question string) ([]Chunk, *mcperrors.McpError) {
	start := time.Now()
	searchReq := newSearchRequest(h.config.VectorStoreID, question)

	// The loop body always returns on the last attempt index; there is no
	// fall-through state.
	for i := 0; ; i++ {
		chunks, mcpErr := h.runAttempt(ctx, searchReq)

		if elapsed := time.Since(start); elapsed > h.config.SlowThreshold {
			h.logger.Warn("retrieval running long", map[string]interface{}{
				"attempt":   i,
				"elapsedMs": elapsed.Milliseconds(),
			})
		}

		if mcpErr == nil {
			metrics.RetrievalAttempts.WithLabelValues("success").Inc()
			h.logger.Info("retrieval succeeded", map[string]interface{}{
				"attempt":    i,
				"chunkCount": len(chunks),
				"elapsedMs":  time.Since(start).Milliseconds(),
			})
			return chunks, nil
		}

		metrics.RetrievalAttempts.WithLabelValues("failure").Inc()

		if i >= h.config.MaxAttempts-1 || !mcperrors.IsRetryable(mcpErr.Code) {
			h.logger.Error("retrieval failed", map[string]interface{}{
				"attempt":   i,
				"errorCode": string(mcpErr.Code),
				"error":     mcpErr.Message,
			})
			return nil, mcpErr
		}

		delay := backoffDelay(i, h.config.BackoffBase, h.config.BackoffJitter)
		h.logger.Warn("transient failure, backing off", map[string]interface{}{
			"attempt":   i,
			"errorCode": string(mcpErr.Code),
			"delayMs":   delay.Milliseconds(),
		})

		select {
		case <-ctx.Done():
			h.logger.Warn("invocation cancelled during backoff", map[string]interface{}{
				"attempt": i,
			})
			return nil, mcpErr
		case <-time.After(delay):
		}
	}
}

// runAttempt wraps one attempt in its own deadline. The deadline cancels
// only this attempt's call, never the overall invocation; classification
// happens before the attempt context is released so the classifier can
// still read the response body.
func (h *Handler) runAttempt(ctx context.Context, searchReq *SearchRequest) ([]Chunk, *mcperrors.McpError) {
	attemptCtx, cancel := context.WithTimeout(ctx, h.config.AttemptTimeout)
	defer cancel()

	chunks, failure := h.attempt(attemptCtx, searchReq)
	if failure != nil {
		return nil, h.classify(failure)
	}
	return chunks, nil
}
