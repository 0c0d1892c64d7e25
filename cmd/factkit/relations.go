// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package main

import (
	"io"
	"iter"

	"github.com/factkit/factkit/internal/dataset"
	"github.com/factkit/factkit/internal/entity"
	"github.com/factkit/factkit/internal/relation"
	"github.com/factkit/factkit/internal/research"
	"github.com/factkit/factkit/pkg/types"
	"github.com/spf13/cobra"
)

func newRelationsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "relations",
		Short: "Query relationship facts for a person or element",
		Long:  "Query the relationship store. <name> is a person or element as declared in the dataset.",
	}

	for _, q := range []struct {
		use   string
		short string
		kind  types.RelationKind
	}{
		{"children <name>", "List the children of <name>", types.RelationChild},
		{"parents <name>", "List the parents of <name>", types.RelationParent},
		{"siblings <name>", "List the siblings of <name>", types.RelationSibling},
		{"spouse <name>", "Show the first recorded spouse of <name>", types.RelationSpouse},
	} {
		kind := q.kind
		cmd.AddCommand(&cobra.Command{
			Use:   q.use,
			Short: q.short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ds, err := a.dataset()
				if err != nil {
					return err
				}
				return a.relations(cmd.OutOrStdout(), ds, kind, args[0])
			},
		})
	}

	return cmd
}

// relations resolves name to a declared element or person. Names are
// unique across both.
func (a *app) relations(w io.Writer, ds *dataset.Dataset, kind types.RelationKind, name string) error {
	a.logger.Debug("querying relations", "entity", name, "kind", kind)

	if ds.HasElement(name) {
		e, err := ds.Element(name)
		if err != nil {
			return err
		}
		return query[entity.Element](a, w, ds.Elements, kind, e)
	}

	p, err := ds.Person(name)
	if err != nil {
		return err
	}
	return query[entity.Person](a, w, ds.People, kind, p)
}

type relationsJSON struct {
	Subject  string   `json:"subject"`
	Relation string   `json:"relation"`
	Results  []string `json:"results"`
}

// query answers one relation question about subject. kind names the role
// the results play: RelationChild lists subject's children.
func query[E relation.Participant](a *app, w io.Writer, browser relation.Browser[E], kind types.RelationKind, subject E) error {
	if !a.jsonOutput() {
		r := research.New(browser, w)
		switch kind {
		case types.RelationChild:
			return r.Children(subject)
		case types.RelationParent:
			return r.Parents(subject)
		case types.RelationSibling:
			return r.Siblings(subject)
		default:
			return r.Spouse(subject)
		}
	}

	out := relationsJSON{Subject: subject.Name(), Relation: kind.String(), Results: []string{}}
	var related iter.Seq[E]
	switch kind {
	case types.RelationChild:
		related = browser.FindAllChildrenOf(subject)
	case types.RelationParent:
		related = browser.FindAllParentsOf(subject)
	case types.RelationSibling:
		related = browser.FindAllSiblingsOf(subject)
	default:
		spouse, err := browser.FindSpouseOf(subject)
		if err != nil {
			return err
		}
		out.Results = append(out.Results, spouse.Name())
	}
	if related != nil {
		for e := range related {
			out.Results = append(out.Results, e.Name())
		}
	}
	return writeJSON(w, out)
}
