// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package ringmap

import (
	"errors"
	"fmt"

	"github.com/go-kit/log"
)

type config[K comparable, V any] struct {
	maxLen   int
	maxBytes int
	sizer    Sizer[K, V]
	logger   log.Logger
	initial  []Entry[K, V]
}

// Option configures a RingMap during construction.
type Option[K comparable, V any] func(*config[K, V]) error

// WithMaxLen bounds the map to at most n entries.
func WithMaxLen[K comparable, V any](n int) Option[K, V] {
	return func(c *config[K, V]) error {
		if n <= 0 {
			return fmt.Errorf("%w: maxLen %d", ErrInvalidLimit, n)
		}
		c.maxLen = n
		return nil
	}
}

// WithMaxBytes bounds the map to at most n bytes of total measured
// footprint, as reported by the configured Sizer.
func WithMaxBytes[K comparable, V any](n int) Option[K, V] {
	return func(c *config[K, V]) error {
		if n <= 0 {
			return fmt.Errorf("%w: maxBytes %d", ErrInvalidLimit, n)
		}
		c.maxBytes = n
		return nil
	}
}

// WithSizer replaces the default footprint estimator. The function must be
// deterministic for equal inputs and must not return negative values.
func WithSizer[K comparable, V any](fn Sizer[K, V]) Option[K, V] {
	return func(c *config[K, V]) error {
		if fn == nil {
			return errors.New("sizer must not be nil")
		}
		c.sizer = fn
		return nil
	}
}

// WithLogger directs debug-level eviction events to l. Without this option
// the map never writes output.
func WithLogger[K comparable, V any](l log.Logger) Option[K, V] {
	return func(c *config[K, V]) error {
		if l == nil {
			l = log.NewNopLogger()
		}
		c.logger = l
		return nil
	}
}

// WithInitial preloads the map with pairs, inserted in slice order through
// the normal Set path. A preload larger than capacity therefore only
// retains the most recently preloaded tail, and a pair that can never fit
// fails construction.
func WithInitial[K comparable, V any](pairs []Entry[K, V]) Option[K, V] {
	return func(c *config[K, V]) error {
		c.initial = pairs
		return nil
	}
}
