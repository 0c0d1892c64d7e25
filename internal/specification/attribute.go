// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package specification

import "github.com/factkit/factkit/pkg/types"

// ColourSpecification matches items of exactly one colour.
type ColourSpecification[T types.HasColour] struct {
	colour types.Colour
}

// ByColour matches items whose colour equals c.
func ByColour[T types.HasColour](c types.Colour) ColourSpecification[T] {
	return ColourSpecification[T]{colour: c}
}

func (s ColourSpecification[T]) IsSatisfied(item T) bool {
	return item.Colour() == s.colour
}

func (s ColourSpecification[T]) String() string {
	return "colour = " + string(s.colour)
}

// SizeSpecification matches items of exactly one size.
type SizeSpecification[T types.HasSize] struct {
	size types.Size
}

// BySize matches items whose size equals s.
func BySize[T types.HasSize](s types.Size) SizeSpecification[T] {
	return SizeSpecification[T]{size: s}
}

func (s SizeSpecification[T]) IsSatisfied(item T) bool {
	return item.Size() == s.size
}

func (s SizeSpecification[T]) String() string {
	return "size = " + string(s.size)
}

// MinSizeSpecification matches items at least as large as a threshold.
type MinSizeSpecification[T types.HasSize] struct {
	threshold types.Size
}

// AtLeastSize matches items whose size ranks at or above threshold. Items
// with an unknown size never match.
func AtLeastSize[T types.HasSize](threshold types.Size) MinSizeSpecification[T] {
	return MinSizeSpecification[T]{threshold: threshold}
}

func (s MinSizeSpecification[T]) IsSatisfied(item T) bool {
	rank := item.Size().Rank()
	return rank >= 0 && rank >= s.threshold.Rank()
}

func (s MinSizeSpecification[T]) String() string {
	return "size >= " + string(s.threshold)
}

// NameSpecification matches items by exact display name.
type NameSpecification[T types.HasName] struct {
	name string
}

// ByName matches items whose Name() equals name.
func ByName[T types.HasName](name string) NameSpecification[T] {
	return NameSpecification[T]{name: name}
}

func (s NameSpecification[T]) IsSatisfied(item T) bool {
	return item.Name() == s.name
}

func (s NameSpecification[T]) String() string {
	return "name = " + s.name
}
