// internal/tools/retrieve-docs/tool.go
package retrievedocs

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	mcperrors "docsearch-mcp/internal/common/errors"
	"docsearch-mcp/internal/common/metrics"
	"docsearch-mcp/internal/common/validation"
)

const argumentsSchema = `{
	"type": "object",
	"properties": {
		"question": {
			"type": "string",
			"minLength": 1,
			"description": "Natural-language question to search the document store for"
		}
	},
	"required": ["question"],
	"additionalProperties": false
}`

// Tool returns the MCP tool definition for retrieveDocs.
func Tool() mcp.Tool {
	return mcp.NewTool(ToolName,
		mcp.WithDescription("Search the configured vector store for document chunks relevant to a natural-language question. Returns a JSON array of {id, text, score} objects ranked by relevance."),
		mcp.WithString("question",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("Natural-language question to search the document store for"),
		),
	)
}

// HandleToolCall validates the arguments, runs the retrieval pipeline and
// serializes the outcome: a JSON chunk array on success, a structured
// {code, message, details} payload on failure. Stack traces stay in the
// logs, never in the returned value.
func (h *Handler) HandleToolCall(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	args := req.GetArguments()
	result, err := validation.ValidateInput(args, argumentsSchema)
	if err != nil {
		h.logger.Error("argument schema unusable", map[string]interface{}{"error": err.Error()})
		return mcp.NewToolResultError(mcperrors.NewInternalError("argument validation failed", nil).JSON()), nil
	}
	if !result.Valid {
		h.logger.Warn("invalid arguments", map[string]interface{}{"reason": result.FirstError()})
		return mcp.NewToolResultError("question must be a non-empty string"), nil
	}

	question, _ := args["question"].(string)
	h.logger.Info("processing question", map[string]interface{}{
		"questionLength": len(question),
	})

	chunks, mcpErr := h.Retrieve(ctx, question)

	outcome := "success"
	if mcpErr != nil {
		outcome = "failure"
	}
	elapsed := time.Since(start)
	metrics.RetrievalsTotal.WithLabelValues(outcome).Inc()
	metrics.RetrievalDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
	h.obs.RecordRetrieval(ctx, outcome)
	h.obs.RecordRetrievalDuration(ctx, elapsed, outcome)

	if mcpErr != nil {
		metrics.RetrievalFailures.WithLabelValues(string(mcpErr.Code)).Inc()
		return mcp.NewToolResultError(mcpErr.JSON()), nil
	}

	payload, err := json.Marshal(chunks)
	if err != nil {
		h.logger.Error("failed to encode chunks", map[string]interface{}{"error": err.Error()})
		return mcp.NewToolResultError(mcperrors.NewInternalError("failed to encode result", nil).JSON()), nil
	}
	return mcp.NewToolResultText(string(payload)), nil
}
