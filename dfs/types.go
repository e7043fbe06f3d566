// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Options and sentinel errors for connected-component discovery.

package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/collabgraph/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of a traversal.
type Option func(*Options)

// Options holds configurable parameters for a traversal.
type Options struct {
	// Ctx allows cancellation; checked once per visited author.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when an author is first reached.
	// Returning an error aborts the traversal.
	OnVisit func(id core.AuthorID) error

	err error
}

// DefaultOptions returns Options with a background context and no hook.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithOnVisit registers a pre-order hook.
func WithOnVisit(fn func(id core.AuthorID) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}
