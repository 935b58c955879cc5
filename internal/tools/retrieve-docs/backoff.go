// internal/tools/retrieve-docs/backoff.go
package retrievedocs

import (
	"math/rand"
	"time"
)

// backoffDelay computes the wait before the retry following attempt index
// `attempt` (zero-based): base * 2^attempt plus a uniform jitter in
// [-jitter, +jitter], floored at zero.
func backoffDelay(attempt int, base, jitter time.Duration) time.Duration {
	delay := base * time.Duration(1<<uint(attempt))
	if jitter > 0 {
		delay += time.Duration(rand.Int63n(int64(2*jitter)+1)) - jitter
	}
	if delay < 0 {
		return 0
	}
	return delay
}
