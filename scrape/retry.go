package scrape

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/fwojciec/sheetscrape"
)

// DefaultRetryDelay is the fixed pause between attempts.
const DefaultRetryDelay = 2 * time.Second

// Ensure Retrier implements sheetscrape.Runner at compile time.
var _ sheetscrape.Runner = (*Retrier)(nil)

// Retrier re-runs a Runner after fetch failures, with a fixed delay between
// attempts. Only EFETCH failures are retried: skipped or completed runs,
// export failures, and invalid targets are returned as they are.
type Retrier struct {
	Runner sheetscrape.Runner
	Logger *slog.Logger

	// MaxRetries is the number of attempts after the first. Zero disables
	// retrying.
	MaxRetries uint64

	// Delay is the pause before each retry.
	Delay time.Duration
}

// Run runs the wrapped Runner until it stops failing to fetch, retries are
// exhausted, or ctx is done. It returns the last outcome.
func (r *Retrier) Run(ctx context.Context, target sheetscrape.Target) *sheetscrape.Outcome {
	var outcome *sheetscrape.Outcome
	attempt := 0

	op := func() error {
		attempt++
		outcome = r.Runner.Run(ctx, target)
		if outcome.Status != sheetscrape.StatusFetchFailed {
			return nil
		}
		if sheetscrape.ErrorCode(outcome.Err) != sheetscrape.EFETCH {
			return backoff.Permanent(outcome.Err)
		}
		return outcome.Err
	}

	notify := func(err error, d time.Duration) {
		if r.Logger != nil {
			r.Logger.Warn("retrying fetch",
				"url", target.URL,
				"attempt", attempt+1,
				"delay", d,
				"err", err,
			)
		}
	}

	b := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(r.Delay), r.MaxRetries),
		ctx,
	)
	_ = backoff.RetryNotify(op, b, notify)

	return outcome
}
