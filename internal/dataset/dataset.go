// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

// Package dataset loads products, participants and relationship facts from
// a YAML document and builds the catalog and relation stores from them.
package dataset

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/factkit/factkit/internal/catalog"
	"github.com/factkit/factkit/internal/entity"
	"github.com/factkit/factkit/internal/relation"
	fkerr "github.com/factkit/factkit/pkg/errors"
	"gopkg.in/yaml.v3"
)

// File is the on-disk document.
type File struct {
	Products  []ProductEntry  `yaml:"products"`
	People    []string        `yaml:"people"`
	Elements  []string        `yaml:"elements"`
	Relations []RelationEntry `yaml:"relations"`
}

// ProductEntry declares one catalog product.
type ProductEntry struct {
	Name   string `yaml:"name"`
	Colour string `yaml:"colour"`
	Size   string `yaml:"size"`
}

// RelationEntry declares one fact between two people or two elements,
// referenced by their declared names.
type RelationEntry struct {
	Kind string `yaml:"kind"`
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Dataset is the built form of a File.
type Dataset struct {
	Catalog  *catalog.Catalog
	People   *relation.Store[entity.Person]
	Elements *relation.Store[entity.Element]

	people   map[string]entity.Person
	elements map[string]entity.Element
}

// Load reads and builds the dataset at path.
func Load(path string, logger *slog.Logger) (*Dataset, error) {
	if logger == nil {
		logger = slog.Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fkerr.Wrap(err, fkerr.CodeDatasetReadFailure, "reading dataset", fkerr.FieldPath(path))
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fkerr.With(err, fkerr.FieldPath(path))
	}

	ds, err := f.Build(logger)
	if err != nil {
		return nil, fkerr.With(err, fkerr.FieldPath(path))
	}

	logger.Debug("dataset loaded",
		"path", path,
		"products", ds.Catalog.Len(),
		"people", len(ds.people),
		"elements", len(ds.elements),
		"relations", len(f.Relations),
	)
	return ds, nil
}

// Parse decodes a YAML document. Unknown keys are rejected; an empty
// document is an empty dataset.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fkerr.Wrap(err, fkerr.CodeDatasetParseInvalid, "decoding dataset")
	}
	return &f, nil
}

// Person returns the declared person called name.
func (d *Dataset) Person(name string) (entity.Person, error) {
	p, ok := d.people[name]
	if !ok {
		return entity.Person{}, fkerr.New(fkerr.CodeDatasetEntityNotFound,
			"unknown person "+name, fkerr.FieldEntity(name))
	}
	return p, nil
}

// Element returns the declared element called name.
func (d *Dataset) Element(name string) (entity.Element, error) {
	e, ok := d.elements[name]
	if !ok {
		return entity.Element{}, fkerr.New(fkerr.CodeDatasetEntityNotFound,
			"unknown element "+name, fkerr.FieldEntity(name))
	}
	return e, nil
}

// HasPerson reports whether name was declared under people.
func (d *Dataset) HasPerson(name string) bool {
	_, ok := d.people[name]
	return ok
}

// HasElement reports whether name was declared under elements.
func (d *Dataset) HasElement(name string) bool {
	_, ok := d.elements[name]
	return ok
}
