// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package main

import (
	"fmt"
	"io"
	"strconv"

	fkerr "github.com/factkit/factkit/pkg/errors"
	"github.com/spf13/cobra"
)

func newAuditCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Report self relations, repeated facts, cycles and multiple spouses",
		Long:  "Check the relationship stores for facts a stricter store would reject. Exits non-zero when anything is found.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := a.dataset()
			if err != nil {
				return err
			}
			findings := append(ds.People.Audit(), ds.Elements.Audit()...)
			if err := a.printFindings(cmd.OutOrStdout(), findings); err != nil {
				return err
			}
			if len(findings) > 0 {
				return fkerr.New(fkerr.CodeCLIAuditFailed, "audit found "+strconv.Itoa(len(findings))+" problem(s)")
			}
			return nil
		},
	}
}

type findingJSON struct {
	Source  string `json:"source"`
	Kind    string `json:"kind"`
	Target  string `json:"target"`
	Message string `json:"message"`
}

func (a *app) printFindings(w io.Writer, findings []error) error {
	if a.jsonOutput() {
		out := make([]findingJSON, 0, len(findings))
		for _, f := range findings {
			fields := fkerr.FieldsOf(f)
			out = append(out, findingJSON{
				Source:  fmt.Sprint(fields["source"]),
				Kind:    fmt.Sprint(fields["kind"]),
				Target:  fmt.Sprint(fields["target"]),
				Message: f.Error(),
			})
		}
		return writeJSON(w, out)
	}

	t := a.theme
	if len(findings) == 0 {
		return writeLine(w, t.paint(t.ok, "no problems found"))
	}
	for _, f := range findings {
		if err := writeLine(w, t.paint(t.warn, "! ")+f.Error()); err != nil {
			return err
		}
	}
	return nil
}
