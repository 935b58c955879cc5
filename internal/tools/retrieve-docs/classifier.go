// internal/tools/retrieve-docs/classifier.go
package retrievedocs

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	mcperrors "docsearch-mcp/internal/common/errors"
)

const maxErrorBodyBytes = 8 << 10

// attemptFailure is the discriminated fault value an attempt hands to the
// classifier. Exactly one of the fields is set: timeout, resp (non-2xx
// response with an unread body), or err.
type attemptFailure struct {
	timeout bool
	resp    *http.Response
	err     error
}

// classify maps an attempt failure to a structured McpError. The mapping is
// deterministic for a given failure; the only side effect is the
// best-effort body read on HTTP failures.
func (h *Handler) classify(f *attemptFailure) *mcperrors.McpError {
	switch {
	case f == nil:
		return mcperrors.NewInternalError("attempt failed without a fault value", nil)
	case f.timeout:
		return mcperrors.NewTimeoutError()
	case f.resp != nil:
		return mcperrors.NewStatusError(f.resp.StatusCode, h.readErrorBody(f.resp))
	case f.err != nil:
		if isNetworkError(f.err) {
			return mcperrors.NewNetworkError(f.err.Error())
		}
		return mcperrors.NewInternalError(f.err.Error(), nil)
	default:
		return mcperrors.NewInternalError("unclassifiable failure", fmt.Sprintf("%+v", f))
	}
}

// readErrorBody reads a non-2xx response body for error details. A failed
// read must never take down the invocation that is already being reported.
func (h *Handler) readErrorBody(resp *http.Response) string {
	defer resp.Body.Close()
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	if err != nil {
		h.logger.Warn("failed to read upstream error body", map[string]interface{}{
			"status": resp.StatusCode,
			"error":  err.Error(),
		})
		return "<unreadable body>"
	}
	return string(data)
}

var networkErrorMarkers = []string{
	"connection refused",
	"connection reset",
	"no such host",
	"broken pipe",
	"network is unreachable",
	"unexpected eof",
	"fetch failed",
}

func isNetworkError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range networkErrorMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
