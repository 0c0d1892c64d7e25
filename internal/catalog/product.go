// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package catalog

import (
	"strings"

	fkerr "github.com/factkit/factkit/pkg/errors"
	"github.com/factkit/factkit/pkg/types"
)

// Compile-time capability checks.
var (
	_ types.Filterable = (*Product)(nil)
	_ types.HasName    = (*Product)(nil)
)

// Product is an immutable catalog item.
type Product struct {
	name   string
	colour types.Colour
	size   types.Size
}

// NewProduct validates its arguments and returns a Product. The name is
// required; colour and size must be known values.
func NewProduct(name string, colour types.Colour, size types.Size) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fkerr.New(fkerr.CodeEntityValidateInvalid, "product: name is required")
	}
	if !colour.Valid() {
		return nil, fkerr.Errorf(fkerr.CodeEntityValidateInvalid, "product %s: invalid colour %q", name, colour)
	}
	if !size.Valid() {
		return nil, fkerr.Errorf(fkerr.CodeEntityValidateInvalid, "product %s: invalid size %q", name, size)
	}
	return &Product{name: name, colour: colour, size: size}, nil
}

func (p *Product) Name() string         { return p.name }
func (p *Product) Colour() types.Colour { return p.colour }
func (p *Product) Size() types.Size     { return p.size }
