// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package ringmap provides a bounded insertion-ordered map that behaves
// like a circular buffer: once a configured capacity is reached, inserting
// a new entry evicts the oldest entries until the new one fits. Capacity
// can be bounded by entry count, by total measured byte footprint, or by
// both at once.
//
// Unlike an LRU cache, reads never promote a key; only Set refreshes a
// key's position in the eviction order. A RingMap is not safe for
// concurrent use, callers sharing one across goroutines must serialize all
// operations externally.
package ringmap

// BoundedMap is the interface for the bounded insertion-ordered map.
type BoundedMap[K comparable, V any] interface {
	// Stores a value under key, evicting the oldest entries as needed.
	// Setting an existing key moves it to the newest position.
	Set(key K, value V) error

	// Returns key's value, or ErrKeyNotFound. Does not affect order.
	Get(key K) (V, error)

	// Checks if a key is present, without error plumbing.
	Contains(key K) bool

	// Removes the entry stored under key, or returns ErrKeyNotFound.
	Delete(key K) error

	// Returns the oldest entry, the next eviction candidate. #key, value, isFound
	GetOldest() (K, V, bool)

	// Removes and returns the oldest entry. #key, value, isFound
	RemoveOldest() (K, V, bool)

	// Returns a slice of the keys in the map, from oldest to newest.
	Keys() []K

	// Returns a slice of the values in the map, from oldest to newest.
	Values() []V

	// Returns a snapshot of all entries, from oldest to newest.
	Items() []Entry[K, V]

	// Len returns the number of entries in the map.
	Len() int

	// Size returns the running total of measured footprints in bytes.
	Size() int

	// Returns the configured entry limit, 0 when unset.
	MaxLen() int

	// Returns the configured byte limit, 0 when unset.
	MaxBytes() int

	// Checks if the map holds no entries.
	IsEmpty() bool

	// Checks if the map is at capacity.
	IsFull() bool

	// Clears all entries.
	Purge()
}
