// SPDX-License-Identifier: MIT
// Package: eqpaths/report
//
// report.go - Result, Emitter, Text and JSON emitters.

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/eqpaths/core"
)

// Result is the outcome of one (source, destination) query.
type Result struct {
	Source      core.NodeID
	Destination core.NodeID
	Paths       []core.Path
}

// Found reports whether at least one path exists.
func (r Result) Found() bool { return len(r.Paths) > 0 }

// Emitter writes results one at a time.
type Emitter interface {
	Emit(r Result) error
}

var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	styleLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleNodes = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	styleCost  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	styleNone  = lipgloss.NewStyle().Foreground(lipgloss.Color("167"))
)

// TextOption configures a Text emitter.
type TextOption func(*Text)

// WithStyle enables lipgloss styling of titles, node lists and costs.
func WithStyle(on bool) TextOption {
	return func(t *Text) { t.styled = on }
}

// Text is the human-readable emitter.
type Text struct {
	w      io.Writer
	styled bool
}

// NewText returns a Text emitter writing to w.
func NewText(w io.Writer, opts ...TextOption) *Text {
	t := &Text{w: w}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Emit writes one result block.
func (t *Text) Emit(r Result) error {
	var b strings.Builder
	if !r.Found() {
		b.WriteString(t.render(styleNone, fmt.Sprintf("No path from N%d to N%d", r.Source, r.Destination)))
		b.WriteByte('\n')
		_, err := io.WriteString(t.w, b.String())
		return err
	}

	b.WriteString(t.render(styleTitle, fmt.Sprintf("Paths from N%d to N%d", r.Source, r.Destination)))
	b.WriteByte('\n')
	for i, p := range r.Paths {
		fmt.Fprintf(&b, "%s %s%s %s\n",
			t.render(styleLabel, fmt.Sprintf("Path %d:", i+1)),
			t.render(styleNodes, formatNodes(p.Nodes)),
			t.render(styleLabel, ", cost:"),
			t.render(styleCost, formatCost(p.Cost)))
	}
	_, err := io.WriteString(t.w, b.String())

	return err
}

func (t *Text) render(s lipgloss.Style, text string) string {
	if !t.styled {
		return text
	}

	return s.Render(text)
}

func formatNodes(nodes []core.NodeID) string {
	return fmt.Sprint(nodes)
}

func formatCost(c float64) string {
	return strconv.FormatFloat(c, 'g', -1, 64)
}

// JSON writes one JSON object per result line.
type JSON struct {
	enc *json.Encoder
}

// NewJSON returns a JSON-lines emitter writing to w.
func NewJSON(w io.Writer) *JSON {
	return &JSON{enc: json.NewEncoder(w)}
}

type jsonPath struct {
	Cost  float64       `json:"cost"`
	Nodes []core.NodeID `json:"nodes"`
}

type jsonResult struct {
	Source      core.NodeID `json:"source"`
	Destination core.NodeID `json:"destination"`
	Paths       []jsonPath  `json:"paths"`
}

// Emit writes r as a single line. Unreachable pairs have an empty paths array.
func (j *JSON) Emit(r Result) error {
	out := jsonResult{
		Source:      r.Source,
		Destination: r.Destination,
		Paths:       make([]jsonPath, len(r.Paths)),
	}
	for i, p := range r.Paths {
		out.Paths[i] = jsonPath{Cost: p.Cost, Nodes: p.Nodes}
	}
	if err := j.enc.Encode(out); err != nil {
		return fmt.Errorf("report: encode: %w", err)
	}

	return nil
}

// Summary writes the total elapsed time of a run.
func Summary(w io.Writer, elapsed time.Duration) error {
	_, err := fmt.Fprintf(w, "Total time: %s\n", elapsed.Round(time.Millisecond))
	return err
}
