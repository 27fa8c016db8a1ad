// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package ringmap

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Entry is a key-value pair as held by a RingMap.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// RingMap implements a non-thread safe insertion-ordered map bounded by
// entry count, total measured footprint, or both. When an insert would
// break a limit, the oldest entries are evicted until the new one fits.
type RingMap[K comparable, V any] struct {
	maxLen   int // 0 when unbounded by count
	maxBytes int // 0 when unbounded by footprint

	evictList *ringList[K, V]
	items     map[K]*entry[K, V]
	size      int

	sizer  Sizer[K, V]
	logger log.Logger
}

var _ BoundedMap[string, int] = (*RingMap[string, int])(nil)

// New constructs a RingMap from the given options. At least one of
// WithMaxLen and WithMaxBytes must be provided; both limits are fixed for
// the lifetime of the map.
func New[K comparable, V any](opts ...Option[K, V]) (*RingMap[K, V], error) {
	cfg := &config[K, V]{
		sizer:  DefaultSizer[K, V](),
		logger: log.NewNopLogger(),
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if cfg.maxLen == 0 && cfg.maxBytes == 0 {
		return nil, ErrNoLimit
	}

	m := &RingMap[K, V]{
		maxLen:    cfg.maxLen,
		maxBytes:  cfg.maxBytes,
		evictList: newList[K, V](),
		items:     make(map[K]*entry[K, V]),
		sizer:     cfg.sizer,
		logger:    cfg.logger,
	}
	for _, p := range cfg.initial {
		if err := m.Set(p.Key, p.Value); err != nil {
			return nil, fmt.Errorf("preload %v: %w", p.Key, err)
		}
	}
	return m, nil
}

// Set stores a value under key, evicting the oldest entries as needed to
// satisfy both limits. Setting an existing key re-measures it and moves it
// to the newest position. An entry that could never fit under the byte
// limit, even into an empty map, is rejected with ErrEntryTooLarge and the
// map is left unchanged.
func (m *RingMap[K, V]) Set(key K, value V) error {
	newSize := m.sizer(key, value)
	if newSize < 0 {
		newSize = 0
	}
	if m.maxBytes > 0 && newSize > m.maxBytes {
		return fmt.Errorf("%w: entry of %s against a limit of %s",
			ErrEntryTooLarge, humanize.IBytes(uint64(newSize)), humanize.IBytes(uint64(m.maxBytes)))
	}

	// An update drops the old entry first so the key re-enters at the
	// newest position with a fresh measurement.
	if ent, ok := m.items[key]; ok {
		m.removeEntry(ent)
	}

	for (m.maxLen > 0 && m.evictList.length()+1 > m.maxLen) ||
		(m.maxBytes > 0 && m.size+newSize > m.maxBytes) {
		oldest := m.evictList.back()
		if oldest == nil {
			break
		}
		m.removeEntry(oldest)
		level.Debug(m.logger).Log("msg", "evicted oldest entry", "key", oldest.key, "size", oldest.size)
	}

	ent := m.evictList.pushFront(key, value, newSize)
	m.items[key] = ent
	m.size += newSize
	return nil
}

// Get looks up a key's value. Reads do not promote the key; acceptance
// order only changes on Set.
func (m *RingMap[K, V]) Get(key K) (V, error) {
	if ent, ok := m.items[key]; ok {
		return ent.value, nil
	}
	var zero V
	return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
}

// Contains checks if a key is present, without error plumbing.
func (m *RingMap[K, V]) Contains(key K) bool {
	_, ok := m.items[key]
	return ok
}

// Delete removes the entry stored under key. No eviction cascades from an
// explicit delete.
func (m *RingMap[K, V]) Delete(key K) error {
	ent, ok := m.items[key]
	if !ok {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	m.removeEntry(ent)
	return nil
}

// GetOldest returns the oldest entry, the next eviction candidate.
func (m *RingMap[K, V]) GetOldest() (key K, value V, ok bool) {
	if ent := m.evictList.back(); ent != nil {
		return ent.key, ent.value, true
	}
	return
}

// RemoveOldest removes and returns the oldest entry.
func (m *RingMap[K, V]) RemoveOldest() (key K, value V, ok bool) {
	if ent := m.evictList.back(); ent != nil {
		m.removeEntry(ent)
		return ent.key, ent.value, true
	}
	return
}

// Keys returns a slice of the keys in the map, from oldest to newest.
func (m *RingMap[K, V]) Keys() []K {
	keys := make([]K, 0, m.evictList.length())
	for ent := m.evictList.back(); ent != nil; ent = ent.prevEntry() {
		keys = append(keys, ent.key)
	}
	return keys
}

// Values returns a slice of the values in the map, from oldest to newest.
func (m *RingMap[K, V]) Values() []V {
	values := make([]V, 0, m.evictList.length())
	for ent := m.evictList.back(); ent != nil; ent = ent.prevEntry() {
		values = append(values, ent.value)
	}
	return values
}

// Items returns a snapshot of all entries, from oldest to newest. The
// slice is fresh on every call and detached from later mutations.
func (m *RingMap[K, V]) Items() []Entry[K, V] {
	items := make([]Entry[K, V], 0, m.evictList.length())
	for ent := m.evictList.back(); ent != nil; ent = ent.prevEntry() {
		items = append(items, Entry[K, V]{Key: ent.key, Value: ent.value})
	}
	return items
}

// Len returns the number of entries in the map.
func (m *RingMap[K, V]) Len() int {
	return m.evictList.length()
}

// Size returns the running total of measured footprints in bytes.
func (m *RingMap[K, V]) Size() int {
	return m.size
}

// MaxLen returns the configured entry limit, 0 when unset.
func (m *RingMap[K, V]) MaxLen() int {
	return m.maxLen
}

// MaxBytes returns the configured byte limit, 0 when unset.
func (m *RingMap[K, V]) MaxBytes() int {
	return m.maxBytes
}

// IsEmpty checks if the map holds no entries.
func (m *RingMap[K, V]) IsEmpty() bool {
	return m.evictList.length() == 0
}

// IsFull checks if the map is at capacity. A full map evicts its oldest
// entry on the next insert of a fresh key.
func (m *RingMap[K, V]) IsFull() bool {
	return (m.maxLen > 0 && m.evictList.length() == m.maxLen) ||
		(m.maxBytes > 0 && m.size == m.maxBytes)
}

// Purge is used to completely clear the map.
func (m *RingMap[K, V]) Purge() {
	for k := range m.items {
		delete(m.items, k)
	}
	m.evictList.init()
	m.size = 0
}

// String returns a one-line diagnostic summary of occupancy.
func (m *RingMap[K, V]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ringmap{len: %d", m.evictList.length())
	if m.maxLen > 0 {
		fmt.Fprintf(&b, "/%d", m.maxLen)
	}
	fmt.Fprintf(&b, ", size: %s", humanize.IBytes(uint64(m.size)))
	if m.maxBytes > 0 {
		fmt.Fprintf(&b, "/%s", humanize.IBytes(uint64(m.maxBytes)))
	}
	b.WriteString("}")
	return b.String()
}

// removeEntry is used to remove a given list entry from the map and keep
// the running total in step.
func (m *RingMap[K, V]) removeEntry(e *entry[K, V]) {
	m.evictList.remove(e)
	delete(m.items, e.key)
	m.size -= e.size
}
