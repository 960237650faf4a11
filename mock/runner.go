package mock

import (
	"context"

	"github.com/fwojciec/sheetscrape"
)

var _ sheetscrape.Runner = (*Runner)(nil)

// Runner is a mock implementation of sheetscrape.Runner.
type Runner struct {
	RunFn func(ctx context.Context, target sheetscrape.Target) *sheetscrape.Outcome
}

func (r *Runner) Run(ctx context.Context, target sheetscrape.Target) *sheetscrape.Outcome {
	return r.RunFn(ctx, target)
}
