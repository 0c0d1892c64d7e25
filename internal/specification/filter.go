// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package specification

import (
	"iter"
	"slices"
)

// Filterer selects the items of a sequence that satisfy a specification.
type Filterer[T any] interface {
	Search(items iter.Seq[T], spec Specification[T]) iter.Seq[T]
}

// Compile-time interface check.
var _ Filterer[int] = Filter[int]{}

// Filter is the stateless default Filterer.
type Filter[T any] struct{}

// Search returns the items satisfying spec, in their original order. Nothing
// is evaluated until the result is ranged over, and each range pulls from
// items again, so the result is restartable exactly when items is. A nil
// spec matches every item.
func (Filter[T]) Search(items iter.Seq[T], spec Specification[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if items == nil {
			return
		}
		for item := range items {
			if spec != nil && !spec.IsSatisfied(item) {
				continue
			}
			if !yield(item) {
				return
			}
		}
	}
}

// Search applies spec to items with the default Filter.
func Search[T any](items iter.Seq[T], spec Specification[T]) iter.Seq[T] {
	return Filter[T]{}.Search(items, spec)
}

// SearchSlice applies spec to the elements of items.
func SearchSlice[T any](items []T, spec Specification[T]) iter.Seq[T] {
	return Search(slices.Values(items), spec)
}
