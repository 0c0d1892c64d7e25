// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package specification_test

import (
	"github.com/factkit/factkit/pkg/types"
)

// widget is a minimal filterable, named item.
type widget struct {
	name   string
	colour types.Colour
	size   types.Size
	weight int
}

func (w widget) Name() string         { return w.name }
func (w widget) Colour() types.Colour { return w.colour }
func (w widget) Size() types.Size     { return w.size }

// grid returns one widget per colour/size pair, colours varying fastest,
// matching the layout of the demo catalog.
func grid() []widget {
	var out []widget
	i := 0
	for _, s := range types.Sizes() {
		for _, c := range types.Colours() {
			i++
			out = append(out, widget{
				name:   string(c) + "-" + string(s),
				colour: c,
				size:   s,
				weight: i,
			})
		}
	}
	return out
}

func names(ws []widget) []string {
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.name)
	}
	return out
}
