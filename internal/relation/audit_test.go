// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package relation_test

import (
	"testing"

	"github.com/factkit/factkit/internal/entity"
	"github.com/factkit/factkit/internal/relation"
	fkerr "github.com/factkit/factkit/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAudit_CleanStore(t *testing.T) {
	s, _, _, _ := family(t)
	assert.Empty(t, s.Audit())
	assert.Empty(t, relation.New[entity.Person]().Audit())
}

func TestAudit_Findings(t *testing.T) {
	type want struct {
		message string
		source  string
		kind    string
		target  string
	}

	tests := []struct {
		name  string
		build func(s *relation.Store[entity.Person], a, b, c entity.Person)
		want  []want
	}{
		{
			name:  "self relation",
			build: func(s *relation.Store[entity.Person], a, _, _ entity.Person) { s.AddSibling(a, a) },
			want:  []want{{"self relation", "A", "sibling", "A"}},
		},
		{
			name: "duplicate parent fact",
			build: func(s *relation.Store[entity.Person], a, b, _ entity.Person) {
				s.AddParentAndChild(a, b)
				s.AddParentAndChild(a, b)
			},
			want: []want{{"duplicate fact", "A", "parent", "B"}},
		},
		{
			name: "duplicate symmetric fact written backwards",
			build: func(s *relation.Store[entity.Person], a, b, _ entity.Person) {
				s.AddSibling(a, b)
				s.AddSibling(b, a)
			},
			want: []want{{"duplicate fact", "B", "sibling", "A"}},
		},
		{
			name: "parent cycle",
			build: func(s *relation.Store[entity.Person], a, b, _ entity.Person) {
				s.AddParentAndChild(a, b)
				s.AddParentAndChild(b, a)
			},
			want: []want{{"parent and child of each other", "B", "parent", "A"}},
		},
		{
			name: "second spouse",
			build: func(s *relation.Store[entity.Person], a, b, c entity.Person) {
				s.AddSpouse(a, b)
				s.AddSpouse(a, c)
			},
			want: []want{{"more than one spouse", "A", "spouse", "C"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := relation.New[entity.Person]()
			tt.build(s, person(t, "A"), person(t, "B"), person(t, "C"))
			before := s.Len()

			findings := s.Audit()
			require.Len(t, findings, len(tt.want))
			assert.Equal(t, before, s.Len(), "audit never changes the store")

			for i, w := range tt.want {
				err := findings[i]
				assert.True(t, fkerr.HasCode(err, fkerr.CodeRelationAuditInvalid))
				assert.Contains(t, err.Error(), w.message)

				fields := fkerr.FieldsOf(err)
				assert.Equal(t, w.source, fields["source"])
				assert.Equal(t, w.kind, fields["kind"])
				assert.Equal(t, w.target, fields["target"])
			}
		})
	}
}
