package conformance

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Runner executes a set of checks against one Env. Checks fail
// independently: one failing check never stops or masks another.
type Runner struct {
	env         *Env
	checks      []Check
	parallelism int64
}

// NewRunner creates a runner. parallelism <= 1 runs checks strictly in
// order; higher values run up to that many checks concurrently. Concurrency
// is safe because every submitting check gets its own account and the only
// shared nonce sequence (the funder's root) is serialized internally.
func NewRunner(env *Env, checks []Check, parallelism int64) (*Runner, error) {
	if len(checks) == 0 {
		return nil, fmt.Errorf("no checks to run")
	}
	if parallelism < 1 {
		parallelism = 1
	}
	return &Runner{env: env, checks: checks, parallelism: parallelism}, nil
}

// Run executes all checks and returns one result per check, in catalog
// order. The returned error reflects context cancellation only, never a
// failed check.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	results := make([]Result, len(r.checks))

	if r.parallelism == 1 {
		for i, check := range r.checks {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results[i] = r.runOne(ctx, check)
		}
		return results, nil
	}

	sem := semaphore.NewWeighted(r.parallelism)
	g, gctx := errgroup.WithContext(ctx)
	for i, check := range r.checks {
		g.Go(func() error {
			if err := sem.Acquire(gctx, 1); err != nil {
				return err
			}
			defer sem.Release(1)
			results[i] = r.runOne(gctx, check)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Runner) runOne(ctx context.Context, check Check) Result {
	start := time.Now()
	err := check.Run(ctx, r.env)
	elapsed := time.Since(start)

	r.env.Metrics.RecordCheck(check.Name, err, elapsed.Seconds())
	if err != nil {
		r.env.Log.Errorw("check failed", "check", check.Name, "error", err, "duration", elapsed)
	} else {
		r.env.Log.Infow("check passed", "check", check.Name, "duration", elapsed)
	}

	return Result{Check: check.Name, Err: err, Duration: elapsed}
}

// Filter returns the subset of checks whose names appear in names, in
// catalog order. Unknown names are an error so typos fail loudly.
func Filter(checks []Check, names []string) ([]Check, error) {
	if len(names) == 0 {
		return checks, nil
	}
	byName := make(map[string]Check, len(checks))
	for _, c := range checks {
		byName[c.Name] = c
	}
	selected := make(map[string]bool, len(names))
	for _, n := range names {
		if _, ok := byName[n]; !ok {
			return nil, fmt.Errorf("unknown check %q", n)
		}
		selected[n] = true
	}
	var out []Check
	for _, c := range checks {
		if selected[c.Name] {
			out = append(out, c)
		}
	}
	return out, nil
}
