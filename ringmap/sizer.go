// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package ringmap

import "github.com/DmitriyVTitov/size"

// EntryOverhead approximates the fixed per-entry bookkeeping cost in bytes:
// the order-list node, its link pointers and the map slot referencing it.
// It is included by DefaultSizer on top of the measured key and value.
const EntryOverhead = 96

// Sizer reports the measured memory footprint in bytes of a single
// key-value pair. Implementations must be deterministic for equal inputs
// and must never return a negative value.
type Sizer[K comparable, V any] func(key K, value V) int

// DefaultSizer returns a best-effort deep estimator: a reflection walk over
// the key and the value, plus EntryOverhead. The eviction logic only needs
// stable non-negative measurements, so exact byte parity with what the
// runtime really allocates is not a goal.
func DefaultSizer[K comparable, V any]() Sizer[K, V] {
	return func(key K, value V) int {
		n := EntryOverhead
		if s := size.Of(key); s > 0 {
			n += s
		}
		if s := size.Of(value); s > 0 {
			n += s
		}
		return n
	}
}
