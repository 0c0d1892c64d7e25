// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

// Package relation records typed, directed facts between named participants
// and answers structured queries over them.
//
// Every insert writes the fact and its inverse, so queries only ever scan
// forward from the entity asked about. Queries return lazy sequences that
// re-scan the store each time they are ranged over.
package relation

import (
	"iter"

	"github.com/factkit/factkit/pkg/types"
)

// Participant is the constraint on store members. Two participants are the
// same entity iff == holds.
type Participant interface {
	comparable
	types.HasName
}

// Triple is one directed fact: Source stands in relation Kind to Target.
type Triple[E Participant] struct {
	Source E
	Kind   types.RelationKind
	Target E
}

// Browser is the read-only query contract over a relation store.
type Browser[E Participant] interface {
	FindAllChildrenOf(parent E) iter.Seq[E]
	FindAllParentsOf(child E) iter.Seq[E]
	FindAllSiblingsOf(entity E) iter.Seq[E]
	FindSpouseOf(entity E) (E, error)
}
