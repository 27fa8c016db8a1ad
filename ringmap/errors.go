// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package ringmap

import "errors"

var (
	// ErrNoLimit is returned by New when neither a length limit nor a
	// byte limit was configured. A map with no limit at all would grow
	// without bound and is rejected outright.
	ErrNoLimit = errors.New("at least one of maxLen and maxBytes must be set")

	// ErrInvalidLimit is returned by New when a configured limit is not
	// a positive integer.
	ErrInvalidLimit = errors.New("limit must be positive")

	// ErrEntryTooLarge is returned by Set when a single entry measures
	// larger than the byte limit and could never fit, even into an empty
	// map. The map is left unchanged.
	ErrEntryTooLarge = errors.New("entry exceeds byte limit")

	// ErrKeyNotFound is returned when reading or deleting a key that is
	// not present.
	ErrKeyNotFound = errors.New("key not found")
)
