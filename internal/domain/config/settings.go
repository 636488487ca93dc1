package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultMaxAttempts = 5
	DefaultRetryDelay  = 3 * time.Second
	DefaultTopN        = 5
)

// Fetch configures the retry pipeline. AttemptTimeout bounds a single HTTP
// attempt; zero means no per-attempt timeout, leaving the retry ceiling as
// the only bound on a stuck fetch.
type Fetch struct {
	MaxAttempts    int
	RetryDelay     time.Duration
	AttemptTimeout time.Duration
}

// Analysis configures the statistics pipeline. TopN is the ranking depth for
// both letters and words.
type Analysis struct {
	TopN int
}

func DefaultFetch() Fetch {
	return Fetch{
		MaxAttempts: DefaultMaxAttempts,
		RetryDelay:  DefaultRetryDelay,
	}
}

func DefaultAnalysis() Analysis {
	return Analysis{TopN: DefaultTopN}
}

// LoadEnv loads main.env into the process environment unless running in
// prod. A missing file is fine; env vars and flags still apply.
func LoadEnv() {
	if os.Getenv("APP_ENV") == "prod" {
		return
	}

	_ = godotenv.Load("main.env")
}
