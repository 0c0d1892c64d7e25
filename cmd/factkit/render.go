// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	fkerr "github.com/factkit/factkit/pkg/errors"
)

// theme holds the text-mode styles. A plain theme leaves text unchanged.
type theme struct {
	plain bool
	title lipgloss.Style
	label lipgloss.Style
	value lipgloss.Style
	warn  lipgloss.Style
	ok    lipgloss.Style
}

func newTheme(w io.Writer, color bool) theme {
	if !color {
		return theme{plain: true}
	}
	r := lipgloss.NewRenderer(w)
	return theme{
		title: r.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		label: r.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		value: r.NewStyle().Foreground(lipgloss.Color("252")),
		warn:  r.NewStyle().Foreground(lipgloss.Color("9")),
		ok:    r.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

func (t theme) paint(s lipgloss.Style, text string) string {
	if t.plain {
		return text
	}
	return s.Render(text)
}

func writeLine(w io.Writer, line string) error {
	if _, err := fmt.Fprintln(w, line); err != nil {
		return fkerr.Wrap(err, fkerr.CodeCLIOutputFailure, "writing output")
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fkerr.Wrap(err, fkerr.CodeCLIOutputFailure, "encoding json")
	}
	return nil
}
