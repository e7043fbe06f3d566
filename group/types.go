// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Labels table, options and sentinel errors for group labeling.

package group

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"runtime"
	"sort"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/collabgraph/core"
)

// Sentinel errors for group labeling.
var (
	// ErrNilGraph is returned when the graph pointer is nil.
	ErrNilGraph = errors.New("group: graph is nil")

	// ErrBadWorkers is returned when WithWorkers receives a non-positive count.
	ErrBadWorkers = errors.New("group: workers must be positive")
)

// Labels maps every author to its distance from the nearest seed.
// Unreachable authors carry +Inf.
type Labels map[core.AuthorID]float64

// Reached returns how many authors have a finite label.
func (l Labels) Reached() int {
	n := 0
	for _, d := range l {
		if !math.IsInf(d, 1) {
			n++
		}
	}

	return n
}

// IDs returns the labeled authors, ascending.
func (l Labels) IDs() []core.AuthorID {
	out := make([]core.AuthorID, 0, len(l))
	for id := range l {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// MarshalJSON writes a flat {"<id>": distance} object. +Inf is written as null.
func (l Labels) MarshalJSON() ([]byte, error) {
	flat := make(map[string]*float64, len(l))
	for id, d := range l {
		key := strconv.FormatInt(int64(id), 10)
		if math.IsInf(d, 1) {
			flat[key] = nil
			continue
		}
		v := d
		flat[key] = &v
	}

	return json.Marshal(flat)
}

// UnmarshalJSON reads the format written by MarshalJSON; null becomes +Inf.
func (l *Labels) UnmarshalJSON(data []byte) error {
	var flat map[string]*float64
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	out := make(Labels, len(flat))
	for key, v := range flat {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return fmt.Errorf("group: label key %q: %w", key, err)
		}
		if v == nil {
			out[core.AuthorID(id)] = math.Inf(1)
			continue
		}
		out[core.AuthorID(id)] = *v
	}
	*l = out

	return nil
}

// Option configures LabelByNearestSeed.
type Option func(*Options)

// Options holds the labeling parameters.
type Options struct {
	// Workers bounds how many single-source searches run at once.
	Workers int

	// Logger receives warnings about dropped seeds.
	Logger logrus.FieldLogger

	err error
}

// DefaultOptions returns one worker per CPU and a discarding logger.
func DefaultOptions() Options {
	discard := logrus.New()
	discard.Out = io.Discard

	return Options{
		Workers: runtime.NumCPU(),
		Logger:  discard,
	}
}

// WithWorkers sets the search concurrency. n must be positive.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadWorkers, n)
			return
		}
		o.Workers = n
	}
}

// WithLogger sets the logger; nil keeps the default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
