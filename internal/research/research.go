// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

// Package research prints relationship facts as sentences. It only reads
// through relation.Browser, so any store implementing that contract works.
package research

import (
	"fmt"
	"io"
	"iter"

	"github.com/factkit/factkit/internal/relation"
	fkerr "github.com/factkit/factkit/pkg/errors"
)

// Research writes one line per relationship found.
type Research[E relation.Participant] struct {
	browser relation.Browser[E]
	out     io.Writer
}

// New returns a Research reading from browser and writing to out.
func New[E relation.Participant](browser relation.Browser[E], out io.Writer) *Research[E] {
	return &Research[E]{browser: browser, out: out}
}

// Children prints "<parent> has a child called <child>" for each child.
func (r *Research[E]) Children(parent E) error {
	return r.print(parent, "child", r.browser.FindAllChildrenOf(parent))
}

// Parents prints "<child> has a parent called <parent>" for each parent.
func (r *Research[E]) Parents(child E) error {
	return r.print(child, "parent", r.browser.FindAllParentsOf(child))
}

// Siblings prints "<entity> has a sibling called <sibling>" for each sibling.
func (r *Research[E]) Siblings(entity E) error {
	return r.print(entity, "sibling", r.browser.FindAllSiblingsOf(entity))
}

// Spouse prints the spouse of entity. A missing spouse is returned as the
// browser reported it.
func (r *Research[E]) Spouse(entity E) error {
	spouse, err := r.browser.FindSpouseOf(entity)
	if err != nil {
		return err
	}
	return r.line(entity, "spouse", spouse)
}

func (r *Research[E]) print(subject E, role string, related iter.Seq[E]) error {
	for other := range related {
		if err := r.line(subject, role, other); err != nil {
			return err
		}
	}
	return nil
}

func (r *Research[E]) line(subject E, role string, other E) error {
	if _, err := fmt.Fprintf(r.out, "%s has a %s called %s\n", subject.Name(), role, other.Name()); err != nil {
		return fkerr.Wrap(err, fkerr.CodeCLIOutputFailure, "writing research line",
			fkerr.FieldEntity(subject.Name()), fkerr.FieldKind(role))
	}
	return nil
}
