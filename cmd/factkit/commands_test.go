// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package main

import (
	"encoding/json"
	"testing"

	fkerr "github.com/factkit/factkit/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productNames(t *testing.T, out string) []string {
	t.Helper()
	var got []productJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	names := make([]string, 0, len(got))
	for _, p := range got {
		names = append(names, p.Name)
	}
	return names
}

func TestProductsCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"no filter", nil, []string{
			"Product 1", "Product 2", "Product 3", "Product 4", "Product 5", "Product 6",
			"Product 7", "Product 8", "Product 9", "Product 10", "Product 11", "Product 12",
		}},
		{"colour", []string{"--colour", "red"}, []string{"Product 1", "Product 4", "Product 7", "Product 10"}},
		{"colour and size", []string{"--colour", "RED", "--size", "huge"}, []string{"Product 10"}},
		{"any", []string{"--colour", "red", "--size", "huge", "--any"}, []string{
			"Product 1", "Product 4", "Product 7", "Product 10", "Product 11", "Product 12",
		}},
		{"min size", []string{"--min-size", "large", "--colour", "blue"}, []string{"Product 9", "Product 12"}},
		{"name", []string{"--name", "Product 5"}, []string{"Product 5"}},
		{"no match", []string{"--name", "Product 5", "--colour", "red"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, append([]string{"products", "-o", "json"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, productNames(t, out))
		})
	}
}

func TestProductsCommand_TextOutput(t *testing.T) {
	out, _, err := execute(t, "products", "--colour", "green", "--size", "small")
	require.NoError(t, err)
	assert.Contains(t, out, "Products where (colour = green AND size = small)")
	assert.Contains(t, out, "Product 2")
	assert.NotContains(t, out, "Product 3")

	out, _, err = execute(t, "products", "--name", "missing")
	require.NoError(t, err)
	assert.Contains(t, out, "no matching products")
}

func TestProductsCommand_InvalidFilters(t *testing.T) {
	_, _, err := execute(t, "products", "--colour", "purple", "--size", "tiny")
	require.Error(t, err)
	assert.True(t, fkerr.HasCode(err, fkerr.CodeCLIInputInvalid))
	assert.Equal(t, fkerr.ExitUsage, fkerr.ExitCode(err))
	assert.Contains(t, err.Error(), "purple")
	assert.Contains(t, err.Error(), "tiny")
}

func TestRelationsCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"parents", []string{"parents", "Amy"},
			"Amy has a parent called Barbara\nAmy has a parent called Daniel\n"},
		{"children", []string{"children", "Daniel"}, "Daniel has a child called Amy\n"},
		{"no siblings", []string{"siblings", "Amy"}, ""},
		{"spouse", []string{"spouse", "Daniel"}, "Daniel has a spouse called Barbara\n"},
		{"element children", []string{"children", "HTML"},
			"Dom Element HTML has a child called Dom Element HEAD\nDom Element HTML has a child called Dom Element BODY\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, append([]string{"relations"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRelationsCommand_JSON(t *testing.T) {
	out, _, err := execute(t, "relations", "siblings", "HEAD", "-o", "json")
	require.NoError(t, err)

	var got relationsJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, relationsJSON{
		Subject:  "Dom Element HEAD",
		Relation: "sibling",
		Results:  []string{"Dom Element BODY"},
	}, got)

	out, _, err = execute(t, "relations", "spouse", "Barbara", "-o", "json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []string{"Daniel"}, got.Results)
}

func TestRelationsCommand_Errors(t *testing.T) {
	_, _, err := execute(t, "relations", "spouse", "Amy")
	require.Error(t, err)
	assert.True(t, fkerr.HasCode(err, fkerr.CodeRelationSpouseNotFound))
	assert.Equal(t, fkerr.ExitDataErr, fkerr.ExitCode(err))

	_, _, err = execute(t, "relations", "parents", "Zed")
	require.Error(t, err)
	assert.True(t, fkerr.HasCode(err, fkerr.CodeDatasetEntityNotFound))

	_, _, err = execute(t, "relations", "parents")
	require.Error(t, err)
}

func TestAuditCommand(t *testing.T) {
	out, _, err := execute(t, "audit")
	require.NoError(t, err)
	assert.Contains(t, out, "no problems found")

	ds := writeTemp(t, "ds.yaml", `
people: [Ann, Bob, Cid]
relations:
  - {kind: spouse, from: Ann, to: Bob}
  - {kind: spouse, from: Ann, to: Cid}
  - {kind: sibling, from: Bob, to: Bob}
`)
	out, _, err = execute(t, "--dataset", ds, "audit")
	require.Error(t, err)
	assert.True(t, fkerr.HasCode(err, fkerr.CodeCLIAuditFailed))
	assert.Equal(t, fkerr.ExitFailure, fkerr.ExitCode(err))
	assert.Contains(t, out, "self relation: Bob sibling Bob")
	assert.Contains(t, out, "more than one spouse: Ann spouse Cid")

	out, _, err = execute(t, "--dataset", ds, "-o", "json", "audit")
	require.Error(t, err)
	var findings []findingJSON
	require.NoError(t, json.Unmarshal([]byte(out), &findings))
	require.Len(t, findings, 2)
	assert.Equal(t, "Bob", findings[0].Source)
	assert.Equal(t, "Cid", findings[1].Target)
}

func TestDemoCommand(t *testing.T) {
	out, _, err := execute(t, "demo", "-o", "json")
	require.NoError(t, err)

	for _, line := range []string{
		"Products where colour = red",
		"Products where size = huge",
		"Products where (colour = red AND size = huge)",
		"Amy has a parent called Barbara",
		"Barbara has a child called Amy",
		"Barbara has a spouse called Daniel",
		"Daniel has a spouse called Barbara",
		"Dom Element BODY has a parent called Dom Element HTML",
		"Dom Element HEAD has a sibling called Dom Element BODY",
		"Dom Element HEAD has a child called Dom Element TITLE",
	} {
		assert.Contains(t, out, line)
	}
}
