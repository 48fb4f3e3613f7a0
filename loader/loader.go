// SPDX-License-Identifier: MIT
// Package: eqpaths/loader
//
// loader.go - Parse and LoadFile.

package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/eqpaths/core"
)

// LoadFile opens path and parses it. See Parse.
func LoadFile(path string, opts ...Option) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	g, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Parse reads a graph from r.
//
// Steps:
//  1. Read n and m from the first two significant lines; n is capped by
//     WithMaxNodes (DefaultMaxNodes).
//  2. Add one undirected edge per following line.
//  3. With WithStrictCount, compare the edge lines against m.
//  4. Seal the graph.
func Parse(r io.Reader, opts ...Option) (*core.Graph, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	sc := bufio.NewScanner(r)
	p := &parser{sc: sc}

	// 1) Header.
	n, err := p.header("node count")
	if err != nil {
		return nil, err
	}
	if n > o.maxNodes {
		return nil, p.errorf("%w: node count %d exceeds the limit of %d", ErrSyntax, n, o.maxNodes)
	}
	m, err := p.header("edge count")
	if err != nil {
		return nil, err
	}

	graphOpts := append([]core.GraphOption{core.WithEdgeCapacity(min(m, maxPrealloc))}, o.graphOpts...)
	b := core.NewBuilder(n, graphOpts...)

	// 2) Edges.
	var added int
	for {
		line, ok := p.next()
		if !ok {
			break
		}
		u, v, w, err := parseEdge(line)
		if err != nil {
			return nil, p.errorf("%w", err)
		}
		if err = b.AddEdge(u, v, w); err != nil {
			return nil, p.errorf("%w", err)
		}
		added++
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("loader: read: %w", err)
	}

	// 3) Declared versus actual edge count.
	if o.strict && added != m {
		return nil, fmt.Errorf("%w: declared %d, found %d", ErrEdgeCount, m, added)
	}

	// 4) Seal.
	return b.Build()
}

// parser tracks the current line number across significant lines.
type parser struct {
	sc   *bufio.Scanner
	line int
}

// next returns the next non-blank line with its comment stripped.
func (p *parser) next() (string, bool) {
	for p.sc.Scan() {
		p.line++
		text := p.sc.Text()
		if i := strings.Index(text, commentMarker); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text != "" {
			return text, true
		}
	}

	return "", false
}

// header reads one non-negative integer line.
func (p *parser) header(what string) (int, error) {
	text, ok := p.next()
	if !ok {
		if err := p.sc.Err(); err != nil {
			return 0, fmt.Errorf("loader: read: %w", err)
		}
		return 0, fmt.Errorf("%w: %s", ErrMissingHeader, what)
	}
	v, err := strconv.Atoi(text)
	if err != nil || v < 0 {
		return 0, p.errorf("%w: %s must be a non-negative integer, got %q", ErrSyntax, what, text)
	}

	return v, nil
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("line %d: "+format, append([]any{p.line}, args...)...)
}

// parseEdge splits "(N<u> N<v>) <weight>".
func parseEdge(line string) (u, v core.NodeID, w float64, err error) {
	if !strings.HasPrefix(line, "(") {
		return 0, 0, 0, fmt.Errorf("%w: edge must start with '(': %q", ErrSyntax, line)
	}
	closing := strings.IndexByte(line, ')')
	if closing < 0 {
		return 0, 0, 0, fmt.Errorf("%w: missing ')': %q", ErrSyntax, line)
	}

	ends := strings.Fields(line[1:closing])
	if len(ends) != 2 {
		return 0, 0, 0, fmt.Errorf("%w: expected two endpoints: %q", ErrSyntax, line)
	}
	if u, err = parseNode(ends[0]); err != nil {
		return 0, 0, 0, err
	}
	if v, err = parseNode(ends[1]); err != nil {
		return 0, 0, 0, err
	}

	rest := strings.TrimSpace(line[closing+1:])
	if rest == "" {
		return 0, 0, 0, fmt.Errorf("%w: missing weight: %q", ErrSyntax, line)
	}
	if w, err = strconv.ParseFloat(rest, 64); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: bad weight %q", ErrSyntax, rest)
	}

	return u, v, w, nil
}

// parseNode accepts "N<id>".
func parseNode(tok string) (core.NodeID, error) {
	if len(tok) < 2 || tok[0] != nodePrefix {
		return 0, fmt.Errorf("%w: node must look like N<id>, got %q", ErrSyntax, tok)
	}
	id, err := strconv.Atoi(tok[1:])
	if err != nil {
		return 0, fmt.Errorf("%w: bad node id %q", ErrSyntax, tok)
	}

	return id, nil
}
