// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package dataset

import (
	"errors"
	"log/slog"

	"github.com/factkit/factkit/internal/catalog"
	"github.com/factkit/factkit/internal/entity"
	"github.com/factkit/factkit/internal/relation"
	fkerr "github.com/factkit/factkit/pkg/errors"
	"github.com/factkit/factkit/pkg/types"
)

// Build validates f and builds a Dataset. All problems are collected and
// returned together; nothing is built when any are found.
func (f *File) Build(logger *slog.Logger) (*Dataset, error) {
	if logger == nil {
		logger = slog.Default()
	}

	ds := &Dataset{
		Catalog:  catalog.New(),
		People:   relation.New[entity.Person](relation.WithLogger(logger)),
		Elements: relation.New[entity.Element](relation.WithLogger(logger)),
		people:   make(map[string]entity.Person),
		elements: make(map[string]entity.Element),
	}

	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fkerr.Errorf(fkerr.CodeDatasetValidateInvalid, format, args...))
	}

	for i, pe := range f.Products {
		colour, err := types.ParseColour(pe.Colour)
		if err != nil {
			invalid("products[%d]: %s", i, err)
			continue
		}
		size, err := types.ParseSize(pe.Size)
		if err != nil {
			invalid("products[%d]: %s", i, err)
			continue
		}
		p, err := catalog.NewProduct(pe.Name, colour, size)
		if err != nil {
			invalid("products[%d]: %s", i, err)
			continue
		}
		ds.Catalog.Add(p)
	}

	for i, name := range f.People {
		p, err := entity.NewPerson(name)
		switch {
		case err != nil:
			invalid("people[%d]: %s", i, err)
		case ds.HasPerson(name):
			invalid("people[%d]: %q declared twice", i, name)
		default:
			ds.people[name] = p
		}
	}

	for i, name := range f.Elements {
		e, err := entity.NewElement(name)
		switch {
		case err != nil:
			invalid("elements[%d]: %s", i, err)
		case ds.HasElement(name):
			invalid("elements[%d]: %q declared twice", i, name)
		case ds.HasPerson(name):
			invalid("elements[%d]: %q is already declared as a person", i, name)
		default:
			ds.elements[name] = e
		}
	}

	for i, re := range f.Relations {
		if err := ds.relate(re); err != nil {
			invalid("relations[%d]: %s", i, err)
		}
	}

	if len(errs) > 0 {
		return nil, fkerr.Wrap(errors.Join(errs...), fkerr.CodeDatasetValidateInvalid, "invalid dataset")
	}
	return ds, nil
}

func (d *Dataset) relate(re RelationEntry) error {
	kind, err := types.ParseRelationKind(re.Kind)
	if err != nil {
		return err
	}
	if kind == types.RelationChild {
		return fkerr.New(fkerr.CodeDatasetValidateInvalid,
			"kind child is not accepted; write it as parent with from and to swapped")
	}

	from, to := re.From, re.To
	switch {
	case d.HasPerson(from) && d.HasPerson(to):
		insert(d.People, kind, d.people[from], d.people[to])
	case d.HasElement(from) && d.HasElement(to):
		insert(d.Elements, kind, d.elements[from], d.elements[to])
	case !d.HasPerson(from) && !d.HasElement(from):
		return fkerr.New(fkerr.CodeDatasetEntityNotFound, "unknown entity "+from, fkerr.FieldEntity(from))
	case !d.HasPerson(to) && !d.HasElement(to):
		return fkerr.New(fkerr.CodeDatasetEntityNotFound, "unknown entity "+to, fkerr.FieldEntity(to))
	default:
		return fkerr.New(fkerr.CodeDatasetValidateInvalid,
			"cannot relate a person and an element: "+from+" and "+to)
	}
	return nil
}

func insert[E relation.Participant](s *relation.Store[E], kind types.RelationKind, from, to E) {
	switch kind {
	case types.RelationParent:
		s.AddParentAndChild(from, to)
	case types.RelationSibling:
		s.AddSibling(from, to)
	case types.RelationSpouse:
		s.AddSpouse(from, to)
	}
}
