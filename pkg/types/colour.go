// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package types

import (
	"strings"

	fkerr "github.com/factkit/factkit/pkg/errors"
)

// Colour is the closed set of colours a filterable entity can carry.
type Colour string

const (
	ColourRed   Colour = "red"
	ColourGreen Colour = "green"
	ColourBlue  Colour = "blue"
)

// Colours lists every colour in declaration order.
func Colours() []Colour {
	return []Colour{ColourRed, ColourGreen, ColourBlue}
}

// Valid reports whether c is a known colour.
func (c Colour) Valid() bool {
	switch c {
	case ColourRed, ColourGreen, ColourBlue:
		return true
	default:
		return false
	}
}

func (c Colour) String() string {
	return string(c)
}

// ParseColour parses a case-insensitive string into a Colour.
func ParseColour(s string) (Colour, error) {
	c := Colour(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fkerr.Errorf(fkerr.CodeEntityValidateInvalid,
			"invalid colour: %q", s)
	}
	return c, nil
}
