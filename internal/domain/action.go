package domain

import "context"

// Action is one side effect a service stages on a request context and
// commits later, such as putting an object or writing a row. A failed commit
// undoes the actions that had already run by calling Rollback on each, newest
// first.
type Action interface {
	Execute(ctx context.Context) error

	// Rollback is called only after a successful Execute, possibly with a
	// different context.
	Rollback(ctx context.Context) error

	// Description labels the action in logs, e.g. "put stages/42/report.pdf".
	Description() string
}
