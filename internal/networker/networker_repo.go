package networker

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode"

	"textstat/internal/domain/config"

	"github.com/cenkalti/backoff/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

type NetworkWorker struct {
	Logger   *zap.SugaredLogger
	Client   *http.Client
	Settings config.Fetch
	Notify   Notifier
}

func NewNetworker(logger *zap.SugaredLogger, settings config.Fetch, notify Notifier) *NetworkWorker {
	if notify == nil {
		notify = NopNotifier
	}

	return &NetworkWorker{
		Logger: logger,
		Client: &http.Client{
			Timeout:   settings.AttemptTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		Settings: settings,
		Notify:   notify,
	}
}

type rawResponse struct {
	body   []byte
	status int
}

// Fetch retrieves url, retrying transport-level failures only. Validation
// failures (empty or non-text body, error status without force) are terminal
// and never retried.
func (repo *NetworkWorker) Fetch(ctx context.Context, url string, force bool) (*FetchResult, error) {
	raw, err := repo.fetchWithRetry(ctx, url)
	if err != nil {
		repo.Logger.Errorw("exhausted all fetch attempts", "url", url, "attempts", repo.Settings.MaxAttempts, "error", err)
		return nil, fmt.Errorf("%w: %d attempts on %s: %v", ErrNetworkExhausted, repo.Settings.MaxAttempts, url, err)
	}

	content := string(raw.body)
	if !looksLikeText(content) {
		repo.Logger.Errorw("body is empty or non-text", "url", url, "status", raw.status, "bytes", len(raw.body))
		return nil, fmt.Errorf("%w: %s", ErrEmptyOrNonText, url)
	}

	if raw.status >= http.StatusBadRequest {
		if !force {
			repo.Logger.Errorw("refusing error status without force", "url", url, "status", raw.status)
			return nil, fmt.Errorf("%w: %d", ErrUnacceptableStatus, raw.status)
		}

		repo.Notify(fmt.Sprintf("unexpected HTTP status %d, analyzing response body anyway", raw.status))
		repo.Logger.Warnw("forcing analysis despite error status", "url", url, "status", raw.status)
	}

	repo.Logger.Infow("fetched url", "url", url, "status", raw.status, "bytes", len(raw.body))

	return &FetchResult{Content: content, Status: raw.status}, nil
}

func (repo *NetworkWorker) fetchWithRetry(ctx context.Context, url string) (*rawResponse, error) {
	attempt := 0

	operation := func() (*rawResponse, error) {
		attempt++
		raw, err := repo.fetchOnce(ctx, url)
		if err != nil {
			repo.Logger.Warnw("fetch attempt failed", "url", url, "attempt", attempt, "error", err)
			return nil, err
		}
		return raw, nil
	}

	onRetry := func(err error, wait time.Duration) {
		repo.Notify(fmt.Sprintf("attempt %d/%d failed (%v), retrying in %s", attempt, repo.Settings.MaxAttempts, err, wait))
	}

	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewConstantBackOff(repo.Settings.RetryDelay)),
		backoff.WithMaxTries(uint(repo.Settings.MaxAttempts)),
		backoff.WithNotify(onRetry),
	)
}

func (repo *NetworkWorker) fetchOnce(ctx context.Context, url string) (*rawResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, backoff.Permanent(err)
	}

	resp, err := repo.Client.Do(req)
	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &rawResponse{body: body, status: resp.StatusCode}, nil
}

// looksLikeText reports whether content holds at least one printable rune.
// A single printable byte among control bytes passes; the check is
// deliberately that weak.
func looksLikeText(content string) bool {
	return strings.ContainsFunc(content, unicode.IsPrint)
}
