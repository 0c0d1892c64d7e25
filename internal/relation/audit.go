// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package relation

import (
	"slices"

	fkerr "github.com/factkit/factkit/pkg/errors"
	"github.com/factkit/factkit/pkg/types"
)

// Audit reports facts a stricter store would have rejected: self relations,
// repeated facts, entities with more than one distinct spouse, and pairs that
// are each other's parent. The store itself is never changed.
//
// Findings come in fact order, followed by spouse findings in the order the
// entities first appear.
func (s *Store[E]) Audit() []error {
	var findings []error

	seen := make(map[Triple[E]]bool)
	parents := make(map[Triple[E]]bool)

	for _, fact := range s.facts() {
		if fact.Source == fact.Target {
			findings = append(findings, s.finding(fact, "self relation"))
			continue
		}

		if seen[fact] || (fact.Kind.Symmetric() && seen[reversed(fact)]) {
			findings = append(findings, s.finding(fact, "duplicate fact"))
			continue
		}
		seen[fact] = true

		if fact.Kind == types.RelationParent {
			if parents[reversed(fact)] {
				findings = append(findings, s.finding(fact, "parent and child of each other"))
			}
			parents[fact] = true
		}
	}

	return append(findings, s.spouseFindings()...)
}

// facts returns the forward triple of every insert; the inverse triple at
// the following index carries no extra information.
func (s *Store[E]) facts() []Triple[E] {
	facts := make([]Triple[E], 0, len(s.triples)/2)
	for i := 0; i < len(s.triples); i += 2 {
		facts = append(facts, s.triples[i])
	}
	return facts
}

func (s *Store[E]) spouseFindings() []error {
	var (
		order    []E
		spouses  = make(map[E][]E)
		findings []error
	)

	for _, t := range s.triples {
		if t.Kind != types.RelationSpouse || t.Source == t.Target {
			continue
		}
		known, ok := spouses[t.Source]
		if !ok {
			order = append(order, t.Source)
		}
		if !slices.Contains(known, t.Target) {
			spouses[t.Source] = append(known, t.Target)
		}
	}

	for _, entity := range order {
		for _, extra := range spouses[entity][1:] {
			fact := Triple[E]{Source: entity, Kind: types.RelationSpouse, Target: extra}
			findings = append(findings, s.finding(fact, "more than one spouse"))
		}
	}
	return findings
}

func (s *Store[E]) finding(t Triple[E], problem string) error {
	return fkerr.New(fkerr.CodeRelationAuditInvalid,
		problem+": "+t.Source.Name()+" "+t.Kind.String()+" "+t.Target.Name(),
		fkerr.FieldSource(t.Source.Name()),
		fkerr.FieldKind(t.Kind.String()),
		fkerr.FieldTarget(t.Target.Name()),
	)
}

func reversed[E Participant](t Triple[E]) Triple[E] {
	return Triple[E]{Source: t.Target, Kind: t.Kind, Target: t.Source}
}
