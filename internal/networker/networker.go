package networker

import "context"

// FetchResult is the validated outcome of a fetch: non-empty text content
// plus the HTTP status it arrived with.
type FetchResult struct {
	Content string
	Status  int
}

// Notifier receives non-fatal warnings (failed attempts about to be retried,
// forced status overrides). Warnings never alter the returned result.
type Notifier func(message string)

func NopNotifier(string) {}

type Networker interface {
	Fetch(ctx context.Context, url string, force bool) (*FetchResult, error)
}
