// SPDX-License-Identifier: MIT
//
// File: recorder.go
// Role: Recorder, a Client that logs statements instead of running them.
// Concurrency:
//   - Safe for concurrent use; one mutex guards the log and the replies.

package export

import (
	"context"
	"sync"
)

// Recorder is an in-memory Client. Write statements succeed with an empty
// result; read statements consume replies queued with Reply, in order, and
// return an empty result once the queue is drained.
type Recorder struct {
	mu      sync.Mutex
	log     []Statement
	replies []Result
	runErr  error
	pingErr error
	closed  bool
}

var _ Client = (*Recorder)(nil)

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// Fail makes every later Run return err. Failed statements are not logged.
func (r *Recorder) Fail(err error) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runErr = err

	return r
}

// FailPing makes Ping return err.
func (r *Recorder) FailPing(err error) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pingErr = err

	return r
}

// Reply queues res for the next read statement.
func (r *Recorder) Reply(res Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.replies = append(r.replies, res)
}

func (r *Recorder) Run(_ context.Context, st Statement) (Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.runErr != nil {
		return Result{}, r.runErr
	}

	// params are copied one level deep; row slices are shared but never mutated
	params := make(map[string]any, len(st.Params))
	for k, v := range st.Params {
		params[k] = v
	}
	st.Params = params
	r.log = append(r.log, st)

	if st.Mode != ModeRead || len(r.replies) == 0 {
		return Result{}, nil
	}
	res := r.replies[0]
	r.replies = r.replies[1:]

	return res, nil
}

func (r *Recorder) Ping(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.pingErr
}

func (r *Recorder) Close(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true

	return nil
}

// Statements returns the logged statements of mode m, oldest first.
func (r *Recorder) Statements(m Mode) []Statement {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Statement, 0, len(r.log))
	for _, st := range r.log {
		if st.Mode == m {
			out = append(out, st)
		}
	}

	return out
}

// Closed reports whether Close was called.
func (r *Recorder) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.closed
}
