// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package main

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/factkit/factkit/internal/catalog"
	"github.com/factkit/factkit/internal/specification"
	fkerr "github.com/factkit/factkit/pkg/errors"
	"github.com/factkit/factkit/pkg/types"
	"github.com/spf13/cobra"
)

type productFilter struct {
	colour  string
	size    string
	minSize string
	name    string
	any     bool
}

func newProductsCmd(a *app) *cobra.Command {
	var f productFilter

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List catalog products matching every filter (or any, with --any)",
		Example: `  factkit products --colour red
  factkit products --colour red --size huge
  factkit products --min-size large --any --name "Product 1"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec, err := f.specification()
			if err != nil {
				return err
			}
			ds, err := a.dataset()
			if err != nil {
				return err
			}
			a.logger.Debug("searching products", "filter", specification.Describe(spec))
			return a.printProducts(cmd.OutOrStdout(), specification.Describe(spec), ds.Catalog.Search(spec))
		},
	}

	cmd.Flags().StringVar(&f.colour, "colour", "", "match colour (red, green, blue)")
	cmd.Flags().StringVar(&f.size, "size", "", "match size (small, medium, large, huge)")
	cmd.Flags().StringVar(&f.minSize, "min-size", "", "match this size or larger")
	cmd.Flags().StringVar(&f.name, "name", "", "match exact product name")
	cmd.Flags().BoolVar(&f.any, "any", false, "match products satisfying any filter instead of all")

	return cmd
}

// specification builds one specification per set flag. With no flags set
// every product matches.
func (f productFilter) specification() (specification.Specification[*catalog.Product], error) {
	var (
		specs []specification.Specification[*catalog.Product]
		errs  []error
	)

	if f.colour != "" {
		if c, err := types.ParseColour(f.colour); err != nil {
			errs = append(errs, fkerr.Errorf(fkerr.CodeCLIInputInvalid, "--colour: %s", err))
		} else {
			specs = append(specs, specification.ByColour[*catalog.Product](c))
		}
	}
	if f.size != "" {
		if s, err := types.ParseSize(f.size); err != nil {
			errs = append(errs, fkerr.Errorf(fkerr.CodeCLIInputInvalid, "--size: %s", err))
		} else {
			specs = append(specs, specification.BySize[*catalog.Product](s))
		}
	}
	if f.minSize != "" {
		if s, err := types.ParseSize(f.minSize); err != nil {
			errs = append(errs, fkerr.Errorf(fkerr.CodeCLIInputInvalid, "--min-size: %s", err))
		} else {
			specs = append(specs, specification.AtLeastSize[*catalog.Product](s))
		}
	}
	if f.name != "" {
		specs = append(specs, specification.ByName[*catalog.Product](f.name))
	}

	if len(errs) > 0 {
		return nil, fkerr.Wrap(errors.Join(errs...), fkerr.CodeCLIInputInvalid, "invalid product filter")
	}
	if f.any && len(specs) > 0 {
		return specification.Any(specs...), nil
	}
	return specification.All(specs...), nil
}

type productJSON struct {
	Name   string `json:"name"`
	Colour string `json:"colour"`
	Size   string `json:"size"`
}

func (a *app) printProducts(w io.Writer, heading string, products iter.Seq[*catalog.Product]) error {
	if a.jsonOutput() {
		out := []productJSON{}
		for p := range products {
			out = append(out, productJSON{Name: p.Name(), Colour: p.Colour().String(), Size: p.Size().String()})
		}
		return writeJSON(w, out)
	}

	t := a.theme
	if err := writeLine(w, t.paint(t.title, "Products where "+heading)); err != nil {
		return err
	}
	n := 0
	for p := range products {
		n++
		line := fmt.Sprintf("  %s %s %s",
			t.paint(t.label, fmt.Sprintf("%-12s", p.Name())),
			t.paint(t.value, fmt.Sprintf("%-6s", p.Colour())),
			t.paint(t.value, p.Size().String()),
		)
		if err := writeLine(w, line); err != nil {
			return err
		}
	}
	if n == 0 {
		return writeLine(w, t.paint(t.warn, "  no matching products"))
	}
	return nil
}
