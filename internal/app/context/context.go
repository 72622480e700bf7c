// Package appctx holds per-call orchestration state for application services.
//
// A RequestContext memoizes lookups that several rows of one response share
// and stages side effects as an ordered plan. Running the plan with Commit
// undoes the finished steps when a later one fails:
//
//	rc := appctx.New(ctx)
//	rc.AddGroup(putReport, putDiagram) // object uploads, run concurrently
//	rc.AddAction(attachMetadata)      // metadata write, after every upload
//	err := rc.Commit(ctx)
//
// A RequestContext belongs to one use case call and is never shared.
package appctx

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/jsamuelsen11/project-service/internal/domain"
)

var (
	// ErrAlreadyCommitted is returned when the plan is changed or run after Commit.
	ErrAlreadyCommitted = errors.New("appctx: request context already committed")

	// ErrNilAction is returned when a nil action is staged.
	ErrNilAction = errors.New("appctx: nil action")

	// ErrTypeMismatch means a memo key was reused with a different value type.
	ErrTypeMismatch = errors.New("appctx: cached value type mismatch")
)

// RequestContext embeds the caller's context and carries the memo and the
// staged plan. The memo is for the request goroutine only; staging is
// guarded by a mutex.
type RequestContext struct {
	context.Context

	memo map[string]memoEntry

	mu        sync.Mutex
	plan      []*step
	committed bool
}

type memoEntry struct {
	value any
	err   error
}

// New starts an empty RequestContext on top of ctx.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{Context: ctx, memo: map[string]memoEntry{}}
}

// GetOrFetch returns the value memoized under key, calling fetch on the
// first use. A failed fetch is memoized too, so the same request never
// repeats a lookup that already failed.
func GetOrFetch[T any](rc *RequestContext, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	entry, seen := rc.memo[key]
	if !seen {
		v, err := fetch(rc.Context)
		rc.memo[key] = memoEntry{value: v, err: err}
		return v, err
	}
	if entry.err != nil {
		return zero, entry.err
	}

	v, ok := entry.value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
	}
	return v, nil
}

// AddAction appends a step that runs action on its own.
func (rc *RequestContext) AddAction(action domain.Action) error {
	return rc.stage(action)
}

// AddGroup appends one step that runs every action concurrently. The step
// fails as soon as one action fails; the others see a canceled context and
// whichever of them finished are undone.
func (rc *RequestContext) AddGroup(actions ...domain.Action) error {
	return rc.stage(actions...)
}

func (rc *RequestContext) stage(actions ...domain.Action) error {
	if slices.Contains(actions, nil) {
		return ErrNilAction
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.committed {
		return ErrAlreadyCommitted
	}
	rc.plan = append(rc.plan, &step{actions: actions})
	return nil
}
