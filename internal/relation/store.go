// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package relation

import (
	"iter"
	"log/slog"

	fkerr "github.com/factkit/factkit/pkg/errors"
	"github.com/factkit/factkit/pkg/types"
)

// Option configures a Store.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used for insert tracing. Defaults to
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Store is an append-only, in-memory list of triples. It is not safe for
// concurrent use.
type Store[E Participant] struct {
	triples []Triple[E]
	logger  *slog.Logger
}

// New returns an empty store.
func New[E Participant](opts ...Option) *Store[E] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return &Store[E]{logger: o.logger}
}

// AddParentAndChild records that parent is a parent of child, and child a
// child of parent.
func (s *Store[E]) AddParentAndChild(parent, child E) {
	s.add(parent, types.RelationParent, child)
}

// AddSibling records that a and b are siblings of each other.
func (s *Store[E]) AddSibling(a, b E) {
	s.add(a, types.RelationSibling, b)
}

// AddSpouse records that a and b are spouses of each other. Earlier spouse
// facts for either side are kept.
func (s *Store[E]) AddSpouse(a, b E) {
	s.add(a, types.RelationSpouse, b)
}

func (s *Store[E]) add(source E, kind types.RelationKind, target E) {
	s.triples = append(s.triples,
		Triple[E]{Source: source, Kind: kind, Target: target},
		Triple[E]{Source: target, Kind: kind.Inverse(), Target: source},
	)
	s.log().Debug("relation added",
		"source", source.Name(),
		"kind", kind,
		"target", target.Name(),
		"triples", len(s.triples),
	)
}

// FindAllChildrenOf yields the children of parent in insertion order.
// Repeated facts yield repeated children.
func (s *Store[E]) FindAllChildrenOf(parent E) iter.Seq[E] {
	return s.targets(parent, types.RelationParent)
}

// FindAllParentsOf yields the parents of child in insertion order.
func (s *Store[E]) FindAllParentsOf(child E) iter.Seq[E] {
	return s.targets(child, types.RelationChild)
}

// FindAllSiblingsOf yields the siblings of entity in insertion order.
func (s *Store[E]) FindAllSiblingsOf(entity E) iter.Seq[E] {
	return s.targets(entity, types.RelationSibling)
}

// FindAllSpousesOf yields every recorded spouse of entity in insertion order.
func (s *Store[E]) FindAllSpousesOf(entity E) iter.Seq[E] {
	return s.targets(entity, types.RelationSpouse)
}

// FindSpouseOf returns the first recorded spouse of entity. It fails with
// CodeRelationSpouseNotFound when entity has none.
func (s *Store[E]) FindSpouseOf(entity E) (E, error) {
	for spouse := range s.FindAllSpousesOf(entity) {
		return spouse, nil
	}
	var zero E
	return zero, fkerr.New(fkerr.CodeRelationSpouseNotFound,
		"no spouse recorded for "+entity.Name(),
		fkerr.FieldEntity(entity.Name()),
		fkerr.FieldKind(types.RelationSpouse.String()),
	)
}

// Triples yields every stored triple in insertion order.
func (s *Store[E]) Triples() iter.Seq[Triple[E]] {
	return func(yield func(Triple[E]) bool) {
		for _, t := range s.triples {
			if !yield(t) {
				return
			}
		}
	}
}

// Len returns the number of stored triples. Each insert adds two.
func (s *Store[E]) Len() int {
	return len(s.triples)
}

func (s *Store[E]) targets(source E, kind types.RelationKind) iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, t := range s.triples {
			if t.Source != source || t.Kind != kind {
				continue
			}
			if !yield(t.Target) {
				return
			}
		}
	}
}

func (s *Store[E]) log() *slog.Logger {
	if s.logger == nil {
		return slog.Default()
	}
	return s.logger
}
