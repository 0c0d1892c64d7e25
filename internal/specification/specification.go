// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

// Package specification provides composable predicates over items and a
// lazy filter that applies them to a sequence.
//
// A new selection dimension is added by writing one more Specification
// implementation; Filter and the composites never change.
package specification

import (
	"fmt"
	"strings"
)

// Specification decides whether a single item qualifies. Implementations
// must be pure: the same item always yields the same answer.
type Specification[T any] interface {
	IsSatisfied(item T) bool
}

// Func adapts an ordinary predicate function to a Specification.
type Func[T any] func(item T) bool

func (f Func[T]) IsSatisfied(item T) bool { return f(item) }

func (f Func[T]) String() string { return "func" }

// AndSpecification is satisfied when both children are. The first child is
// always evaluated first and the second only when the first holds.
type AndSpecification[T any] struct {
	first  Specification[T]
	second Specification[T]
}

// And combines two specifications with logical AND.
func And[T any](first, second Specification[T]) AndSpecification[T] {
	return AndSpecification[T]{first: first, second: second}
}

func (s AndSpecification[T]) IsSatisfied(item T) bool {
	return s.first.IsSatisfied(item) && s.second.IsSatisfied(item)
}

func (s AndSpecification[T]) String() string {
	return "(" + describe(s.first) + " AND " + describe(s.second) + ")"
}

// OrSpecification is satisfied when either child is, evaluating the first
// child before the second.
type OrSpecification[T any] struct {
	first  Specification[T]
	second Specification[T]
}

// Or combines two specifications with logical OR.
func Or[T any](first, second Specification[T]) OrSpecification[T] {
	return OrSpecification[T]{first: first, second: second}
}

func (s OrSpecification[T]) IsSatisfied(item T) bool {
	return s.first.IsSatisfied(item) || s.second.IsSatisfied(item)
}

func (s OrSpecification[T]) String() string {
	return "(" + describe(s.first) + " OR " + describe(s.second) + ")"
}

// NotSpecification negates its child.
type NotSpecification[T any] struct {
	inner Specification[T]
}

// Not negates a specification.
func Not[T any](inner Specification[T]) NotSpecification[T] {
	return NotSpecification[T]{inner: inner}
}

func (s NotSpecification[T]) IsSatisfied(item T) bool {
	return !s.inner.IsSatisfied(item)
}

func (s NotSpecification[T]) String() string {
	return "NOT " + describe(s.inner)
}

// AllSpecification is the n-ary form of And. With no children it is
// satisfied by every item.
type AllSpecification[T any] struct {
	specs []Specification[T]
}

// All combines any number of specifications with logical AND, evaluated in
// argument order.
func All[T any](specs ...Specification[T]) AllSpecification[T] {
	return AllSpecification[T]{specs: specs}
}

func (s AllSpecification[T]) IsSatisfied(item T) bool {
	for _, spec := range s.specs {
		if !spec.IsSatisfied(item) {
			return false
		}
	}
	return true
}

func (s AllSpecification[T]) String() string {
	return join(s.specs, " AND ", "TRUE")
}

// AnySpecification is the n-ary form of Or. With no children it is
// satisfied by nothing.
type AnySpecification[T any] struct {
	specs []Specification[T]
}

// Any combines any number of specifications with logical OR, evaluated in
// argument order.
func Any[T any](specs ...Specification[T]) AnySpecification[T] {
	return AnySpecification[T]{specs: specs}
}

func (s AnySpecification[T]) IsSatisfied(item T) bool {
	for _, spec := range s.specs {
		if spec.IsSatisfied(item) {
			return true
		}
	}
	return false
}

func (s AnySpecification[T]) String() string {
	return join(s.specs, " OR ", "FALSE")
}

// Describe renders a specification for logs and CLI headers.
func Describe[T any](spec Specification[T]) string {
	return describe(spec)
}

func describe(spec any) string {
	if spec == nil {
		return "<nil>"
	}
	if s, ok := spec.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", spec)
}

func join[T any](specs []Specification[T], sep, empty string) string {
	switch len(specs) {
	case 0:
		return empty
	case 1:
		return describe(specs[0])
	}
	parts := make([]string, 0, len(specs))
	for _, spec := range specs {
		parts = append(parts, describe(spec))
	}
	return "(" + strings.Join(parts, sep) + ")"
}
