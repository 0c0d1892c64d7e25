// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package main

import (
	"io"

	"github.com/factkit/factkit/internal/catalog"
	"github.com/factkit/factkit/internal/config"
	"github.com/factkit/factkit/internal/dataset"
	"github.com/factkit/factkit/internal/entity"
	"github.com/factkit/factkit/internal/research"
	"github.com/factkit/factkit/internal/specification"
	"github.com/factkit/factkit/pkg/types"
	"github.com/spf13/cobra"
)

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in product filter and relationship scenarios",
		Long:  "Run the product filter and relationship scenarios against the built-in demo data. Output is always text and the --dataset flag is ignored.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			text := a.withFormat(config.FormatText)
			ds := dataset.Demo(a.logger)
			w := cmd.OutOrStdout()
			if err := text.demoProducts(w, ds.Catalog); err != nil {
				return err
			}
			return text.demoRelations(w, ds)
		},
	}
}

func (a *app) demoProducts(w io.Writer, c *catalog.Catalog) error {
	red := specification.ByColour[*catalog.Product](types.ColourRed)
	huge := specification.BySize[*catalog.Product](types.SizeHuge)

	for _, spec := range []specification.Specification[*catalog.Product]{
		red,
		huge,
		specification.And[*catalog.Product](red, huge),
	} {
		if err := a.printProducts(w, specification.Describe(spec), c.Search(spec)); err != nil {
			return err
		}
	}
	return nil
}

// demoRelations asks the same questions of the family and the document tree.
func (a *app) demoRelations(w io.Writer, ds *dataset.Dataset) error {
	t := a.theme
	if err := writeLine(w, t.paint(t.title, "Family")); err != nil {
		return err
	}

	family := research.New[entity.Person](ds.People, w)
	amy, _ := ds.Person("Amy")
	barbara, _ := ds.Person("Barbara")
	daniel, _ := ds.Person("Daniel")
	for _, step := range []func() error{
		func() error { return family.Parents(amy) },
		func() error { return family.Siblings(amy) },
		func() error { return family.Children(barbara) },
		func() error { return family.Children(daniel) },
		func() error { return family.Spouse(barbara) },
		func() error { return family.Spouse(daniel) },
	} {
		if err := step(); err != nil {
			return err
		}
	}

	if err := writeLine(w, t.paint(t.title, "Document")); err != nil {
		return err
	}

	doc := research.New[entity.Element](ds.Elements, w)
	html, _ := ds.Element("HTML")
	head, _ := ds.Element("HEAD")
	body, _ := ds.Element("BODY")
	for _, step := range []func() error{
		func() error { return doc.Parents(body) },
		func() error { return doc.Siblings(head) },
		func() error { return doc.Siblings(body) },
		func() error { return doc.Children(html) },
		func() error { return doc.Children(head) },
	} {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
