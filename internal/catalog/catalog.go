// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package catalog

import (
	"iter"
	"slices"

	"github.com/factkit/factkit/internal/specification"
)

// Catalog is an ordered collection of products.
type Catalog struct {
	products []*Product
}

// New returns a catalog holding products in the given order.
func New(products ...*Product) *Catalog {
	return &Catalog{products: slices.Clone(products)}
}

// Add appends products to the catalog.
func (c *Catalog) Add(products ...*Product) {
	c.products = append(c.products, products...)
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// All yields every product in insertion order. The sequence reads the
// catalog when ranged over, not when All is called.
func (c *Catalog) All() iter.Seq[*Product] {
	return func(yield func(*Product) bool) {
		for _, p := range c.products {
			if !yield(p) {
				return
			}
		}
	}
}

// Search yields the products satisfying spec, in catalog order.
func (c *Catalog) Search(spec specification.Specification[*Product]) iter.Seq[*Product] {
	return specification.Search(c.All(), spec)
}
