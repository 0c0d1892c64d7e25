// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package types

import (
	"strings"

	fkerr "github.com/factkit/factkit/pkg/errors"
)

// RelationKind labels a directed fact between two named entities.
// Parent and child are the two facets of one edge; sibling and spouse
// are their own inverse.
type RelationKind string

const (
	RelationParent  RelationKind = "parent"
	RelationChild   RelationKind = "child"
	RelationSibling RelationKind = "sibling"
	RelationSpouse  RelationKind = "spouse"
)

// Valid reports whether k is a known relation kind.
func (k RelationKind) Valid() bool {
	switch k {
	case RelationParent, RelationChild, RelationSibling, RelationSpouse:
		return true
	default:
		return false
	}
}

// Inverse returns the kind recorded on the reverse edge.
func (k RelationKind) Inverse() RelationKind {
	switch k {
	case RelationParent:
		return RelationChild
	case RelationChild:
		return RelationParent
	default:
		return k
	}
}

// Symmetric reports whether k is its own inverse.
func (k RelationKind) Symmetric() bool {
	return k.Valid() && k.Inverse() == k
}

func (k RelationKind) String() string {
	return string(k)
}

// ParseRelationKind parses a case-insensitive string into a RelationKind.
func ParseRelationKind(s string) (RelationKind, error) {
	k := RelationKind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fkerr.Errorf(fkerr.CodeEntityValidateInvalid,
			"invalid relation kind: %q", s)
	}
	return k, nil
}
