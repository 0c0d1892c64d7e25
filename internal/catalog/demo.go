// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package catalog

import (
	"strconv"

	"github.com/factkit/factkit/pkg/types"
)

// Demo returns the sample catalog: twelve products, one for every colour and
// size, colours varying fastest.
func Demo() *Catalog {
	c := New()
	n := 0
	for _, size := range types.Sizes() {
		for _, colour := range types.Colours() {
			n++
			// Known-valid arguments; NewProduct cannot fail here.
			p, _ := NewProduct("Product "+strconv.Itoa(n), colour, size)
			c.Add(p)
		}
	}
	return c
}
