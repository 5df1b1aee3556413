// Package workerpool provides bounded concurrent processing utilities.
package workerpool

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Policy selects how a batch reacts to a failing item.
type Policy int

const (
	// FailFast cancels the items still in flight on the first error and returns it.
	FailFast Policy = iota
	// CollectAll runs every item to completion and returns all errors combined.
	CollectAll
)

func (p Policy) String() string {
	switch p {
	case FailFast:
		return "fail-fast"
	case CollectAll:
		return "collect-all"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Map runs fn for every item with at most limit invocations in flight and returns
// the results in item order. A slot is held for the whole fn call. Map returns
// only after every started invocation has returned; on error no results are returned.
func Map[T, R any](
	ctx context.Context,
	limit int,
	items []T,
	policy Policy,
	fn func(context.Context, T) (R, error),
) ([]R, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("worker limit must be positive, got %d", limit)
	}

	results := make([]R, len(items))
	err := run(ctx, limit, items, policy, func(ctx context.Context, i int, item T) error {
		r, err := fn(ctx, item)
		if err != nil {
			return err
		}
		results[i] = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Process runs fn for every item with at most limit invocations in flight.
func Process[T any](
	ctx context.Context,
	limit int,
	items []T,
	policy Policy,
	fn func(context.Context, T) error,
) error {
	if limit <= 0 {
		return fmt.Errorf("worker limit must be positive, got %d", limit)
	}
	return run(ctx, limit, items, policy, func(ctx context.Context, _ int, item T) error {
		return fn(ctx, item)
	})
}

func run[T any](
	ctx context.Context,
	limit int,
	items []T,
	policy Policy,
	fn func(context.Context, int, T) error,
) error {
	if policy != FailFast && policy != CollectAll {
		return fmt.Errorf("unknown worker policy %s", policy)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		g         errgroup.Group
		failOnce  sync.Once
		failedErr error
	)
	sem := semaphore.NewWeighted(int64(limit))
	errs := make([]error, len(items))

	for i, item := range items {
		if runCtx.Err() != nil {
			break
		}
		if err := sem.Acquire(runCtx, 1); err != nil {
			break
		}
		if runCtx.Err() != nil {
			sem.Release(1)
			break
		}
		g.Go(func() error {
			// cancel before the slot is released so no new item starts after a failure
			defer sem.Release(1)
			if err := fn(runCtx, i, item); err != nil {
				errs[i] = err
				if policy == FailFast {
					// siblings only see the cancellation after the failure is recorded
					failOnce.Do(func() { failedErr = err })
					cancel()
				}
				return err
			}
			return nil
		})
	}

	_ = g.Wait()
	if policy == FailFast && failedErr != nil {
		return failedErr
	}

	var merr *multierror.Error
	for _, err := range errs {
		if err != nil {
			merr = multierror.Append(merr, err)
		}
	}
	if err := merr.ErrorOrNil(); err != nil {
		return err
	}

	return ctx.Err()
}
