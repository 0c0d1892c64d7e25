// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package dataset

import (
	"log/slog"

	"github.com/factkit/factkit/internal/catalog"
)

// Demo returns the built-in sample: the twelve-product demo catalog, the
// Amy/Barbara/Daniel family and a small HTML document tree.
func Demo(logger *slog.Logger) *Dataset {
	f := &File{
		People:   []string{"Amy", "Barbara", "Daniel"},
		Elements: []string{"HTML", "HEAD", "TITLE", "BODY"},
		Relations: []RelationEntry{
			{Kind: "parent", From: "Barbara", To: "Amy"},
			{Kind: "parent", From: "Daniel", To: "Amy"},
			{Kind: "spouse", From: "Barbara", To: "Daniel"},
			{Kind: "parent", From: "HTML", To: "HEAD"},
			{Kind: "parent", From: "HEAD", To: "TITLE"},
			{Kind: "parent", From: "HTML", To: "BODY"},
			{Kind: "sibling", From: "HEAD", To: "BODY"},
		},
	}

	ds, err := f.Build(logger)
	if err != nil {
		panic("dataset: demo data is invalid: " + err.Error())
	}
	ds.Catalog = catalog.Demo()
	return ds
}
