// internal/tools/retrieve-docs/config.go
package retrievedocs

import "time"

const (
	defaultAPIBaseURL = "https://api.openai.com/v1/responses"
	modelID           = "gpt-4.1-mini"
	maxNumResults     = 20
)

type Config struct {
	APIBaseURL     string
	APIKey         string
	VectorStoreID  string
	Debug          bool
	MaxAttempts    int
	AttemptTimeout time.Duration
	BackoffBase    time.Duration
	BackoffJitter  time.Duration
	SlowThreshold  time.Duration
}

func NewConfig(vectorStoreID, apiKey string, debug bool) *Config {
	return &Config{
		APIBaseURL:     defaultAPIBaseURL,
		APIKey:         apiKey,
		VectorStoreID:  vectorStoreID,
		Debug:          debug,
		MaxAttempts:    3,
		AttemptTimeout: 30 * time.Second,
		BackoffBase:    500 * time.Millisecond,
		BackoffJitter:  100 * time.Millisecond,
		SlowThreshold:  25 * time.Second,
	}
}
