// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

// Package entity holds the named participants that can be related in a
// relation store. Both types are small comparable values, so two values
// with the same name are the same participant.
package entity

import (
	"strings"

	fkerr "github.com/factkit/factkit/pkg/errors"
	"github.com/factkit/factkit/pkg/types"
)

// Compile-time capability checks.
var (
	_ types.HasName = Person{}
	_ types.HasName = Element{}
)

// Person is a named human participant.
type Person struct {
	name string
}

// NewPerson returns a Person; the name is required.
func NewPerson(name string) (Person, error) {
	if strings.TrimSpace(name) == "" {
		return Person{}, fkerr.New(fkerr.CodeEntityValidateInvalid, "person: name is required")
	}
	return Person{name: name}, nil
}

// Name returns the person's name.
func (p Person) Name() string { return p.name }

func (p Person) String() string { return p.name }

// Element is a node of a document tree, such as an HTML element.
type Element struct {
	tag string
}

// NewElement returns an Element for tag; the tag is required.
func NewElement(tag string) (Element, error) {
	if strings.TrimSpace(tag) == "" {
		return Element{}, fkerr.New(fkerr.CodeEntityValidateInvalid, "element: tag is required")
	}
	return Element{tag: tag}, nil
}

// Tag returns the raw tag the element was created with.
func (e Element) Tag() string { return e.tag }

// Name returns the display name, "Dom Element <tag>".
func (e Element) Name() string { return "Dom Element " + e.tag }

func (e Element) String() string { return e.Name() }
