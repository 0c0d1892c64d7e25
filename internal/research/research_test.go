// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package research_test

import (
	"bytes"
	"errors"
	"iter"
	"slices"
	"testing"

	"github.com/factkit/factkit/internal/entity"
	"github.com/factkit/factkit/internal/relation"
	"github.com/factkit/factkit/internal/research"
	fkerr "github.com/factkit/factkit/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBrowser answers from fixed tables and records nothing.
type fakeBrowser struct {
	children map[string][]entity.Person
	parents  map[string][]entity.Person
	siblings map[string][]entity.Person
	spouses  map[string]entity.Person
}

var _ relation.Browser[entity.Person] = (*fakeBrowser)(nil)

func (f *fakeBrowser) FindAllChildrenOf(p entity.Person) iter.Seq[entity.Person] {
	return slices.Values(f.children[p.Name()])
}

func (f *fakeBrowser) FindAllParentsOf(c entity.Person) iter.Seq[entity.Person] {
	return slices.Values(f.parents[c.Name()])
}

func (f *fakeBrowser) FindAllSiblingsOf(e entity.Person) iter.Seq[entity.Person] {
	return slices.Values(f.siblings[e.Name()])
}

func (f *fakeBrowser) FindSpouseOf(e entity.Person) (entity.Person, error) {
	s, ok := f.spouses[e.Name()]
	if !ok {
		return entity.Person{}, fkerr.New(fkerr.CodeRelationSpouseNotFound, "no spouse")
	}
	return s, nil
}

func mustPerson(t *testing.T, name string) entity.Person {
	t.Helper()
	p, err := entity.NewPerson(name)
	require.NoError(t, err)
	return p
}

func TestResearch_Lines(t *testing.T) {
	amy, barbara, daniel := mustPerson(t, "Amy"), mustPerson(t, "Barbara"), mustPerson(t, "Daniel")
	browser := &fakeBrowser{
		children: map[string][]entity.Person{"Daniel": {amy}},
		parents:  map[string][]entity.Person{"Amy": {barbara, daniel}},
		siblings: map[string][]entity.Person{},
		spouses:  map[string]entity.Person{"Barbara": daniel},
	}

	tests := []struct {
		name string
		run  func(r *research.Research[entity.Person]) error
		want string
	}{
		{"children", func(r *research.Research[entity.Person]) error { return r.Children(daniel) },
			"Daniel has a child called Amy\n"},
		{"parents", func(r *research.Research[entity.Person]) error { return r.Parents(amy) },
			"Amy has a parent called Barbara\nAmy has a parent called Daniel\n"},
		{"no siblings", func(r *research.Research[entity.Person]) error { return r.Siblings(amy) },
			""},
		{"spouse", func(r *research.Research[entity.Person]) error { return r.Spouse(barbara) },
			"Barbara has a spouse called Daniel\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tt.run(research.New[entity.Person](browser, &buf)))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestResearch_SpouseNotFoundPropagates(t *testing.T) {
	var buf bytes.Buffer
	r := research.New[entity.Person](&fakeBrowser{}, &buf)

	err := r.Spouse(mustPerson(t, "Amy"))
	require.Error(t, err)
	assert.True(t, fkerr.HasCode(err, fkerr.CodeRelationSpouseNotFound))
	assert.Empty(t, buf.String())
}

func TestResearch_OverRealStore(t *testing.T) {
	html, _ := entity.NewElement("HTML")
	head, _ := entity.NewElement("HEAD")
	title, _ := entity.NewElement("TITLE")

	store := relation.New[entity.Element]()
	store.AddParentAndChild(html, head)
	store.AddParentAndChild(head, title)

	var buf bytes.Buffer
	require.NoError(t, research.New[entity.Element](store, &buf).Children(head))
	assert.Equal(t, "Dom Element HEAD has a child called Dom Element TITLE\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestResearch_WriteErrorStopsIteration(t *testing.T) {
	amy := mustPerson(t, "Amy")
	browser := &fakeBrowser{parents: map[string][]entity.Person{
		"Amy": {mustPerson(t, "Barbara"), mustPerson(t, "Daniel")},
	}}

	err := research.New[entity.Person](browser, failingWriter{}).Parents(amy)
	require.Error(t, err)
	assert.True(t, fkerr.HasCode(err, fkerr.CodeCLIOutputFailure))
	assert.ErrorContains(t, err, "disk full")
}
