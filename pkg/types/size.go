// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package types

import (
	"strings"

	fkerr "github.com/factkit/factkit/pkg/errors"
)

// Size is the closed set of sizes a filterable entity can carry.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
	SizeHuge   Size = "huge"
)

// Sizes lists every size from smallest to largest.
func Sizes() []Size {
	return []Size{SizeSmall, SizeMedium, SizeLarge, SizeHuge}
}

// Valid reports whether s is a known size.
func (s Size) Valid() bool {
	return s.Rank() >= 0
}

// Rank returns the ordinal of s (small is 0), or -1 for an unknown size.
func (s Size) Rank() int {
	switch s {
	case SizeSmall:
		return 0
	case SizeMedium:
		return 1
	case SizeLarge:
		return 2
	case SizeHuge:
		return 3
	default:
		return -1
	}
}

func (s Size) String() string {
	return string(s)
}

// ParseSize parses a case-insensitive string into a Size.
func ParseSize(s string) (Size, error) {
	sz := Size(strings.ToLower(strings.TrimSpace(s)))
	if !sz.Valid() {
		return "", fkerr.Errorf(fkerr.CodeEntityValidateInvalid,
			"invalid size: %q", s)
	}
	return sz, nil
}
