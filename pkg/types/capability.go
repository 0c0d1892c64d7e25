// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package types

// HasColour is implemented by anything that can be filtered by colour.
type HasColour interface {
	Colour() Colour
}

// HasSize is implemented by anything that can be filtered by size.
type HasSize interface {
	Size() Size
}

// Filterable combines the colour and size capabilities.
type Filterable interface {
	HasColour
	HasSize
}

// HasName is implemented by anything with a display name. Names are used
// for display only; identity is decided by the implementing type.
type HasName interface {
	Name() string
}
