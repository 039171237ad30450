// Package io reads the toolkit's input formats and renders tabular output.
package io

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/haijima/dsu/internal/dsu"
	"github.com/haijima/dsu/internal/graph"
)

// ParseEdgeList reads an edge list:
//
//	# comment
//	4          <- vertex count, optionally "4 5" (edge count is ignored)
//	0 1
//	1 2 7      <- optional integer weight
//
// Blank lines and '#' comments are skipped. Vertex bounds are not validated
// here; the algorithms report out-of-range endpoints themselves.
func ParseEdgeList(r io.Reader) (int, []graph.Edge, error) {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	vertices := 0
	headerSeen := false
	edges := make([]graph.Edge, 0)
	for scanner.Scan() {
		lineNo++
		fields, skip := fields(scanner.Text())
		if skip {
			continue
		}
		if !headerSeen {
			if len(fields) > 2 {
				return 0, nil, errors.Newf("line %d: header must be \"V\" or \"V E\", got %q", lineNo, scanner.Text())
			}
			v, err := strconv.Atoi(fields[0])
			if err != nil {
				return 0, nil, errors.Wrapf(err, "line %d: vertex count", lineNo)
			}
			if v < 0 {
				return 0, nil, errors.Wrapf(dsu.ErrInvalidSize, "line %d: vertex count = %d", lineNo, v)
			}
			vertices = v
			headerSeen = true
			continue
		}
		if len(fields) != 2 && len(fields) != 3 {
			return 0, nil, errors.Newf("line %d: edge must be \"u v\" or \"u v w\", got %q", lineNo, scanner.Text())
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return 0, nil, errors.Wrapf(err, "line %d: endpoint", lineNo)
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return 0, nil, errors.Wrapf(err, "line %d: endpoint", lineNo)
		}
		w := 0
		if len(fields) == 3 {
			w, err = strconv.Atoi(fields[2])
			if err != nil {
				return 0, nil, errors.Wrapf(err, "line %d: weight", lineNo)
			}
		}
		edges = append(edges, graph.Edge{U: u, V: v, Weight: w})
	}
	if err := scanner.Err(); err != nil {
		return 0, nil, err
	}
	if !headerSeen {
		return 0, nil, errors.New("empty edge list: missing vertex count header")
	}
	return vertices, edges, nil
}

// ParseGrid reads an island grid: one row per line, cells '0' or '1',
// spaces between cells allowed. Rows must all have the same width.
func ParseGrid(r io.Reader) ([][]byte, error) {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	grid := make([][]byte, 0)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		row := make([]byte, 0, len(line))
		for _, c := range line {
			switch c {
			case ' ', '\t', ',':
				continue
			case '0', '1':
				row = append(row, byte(c))
			default:
				return nil, errors.Newf("line %d: cell must be 0 or 1, got %q", lineNo, string(c))
			}
		}
		if len(grid) > 0 && len(row) != len(grid[0]) {
			return nil, errors.Newf("line %d: row width %d, want %d", lineNo, len(row), len(grid[0]))
		}
		grid = append(grid, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return grid, nil
}

// ParseEquations reads ratio constraints, one per line:
//
//	a / b = 2.0    <- a is 2.0 times b
//	a == b         <- shorthand for ratio 1 ("a = b" also accepted)
//	a != b
func ParseEquations(r io.Reader) ([]graph.Equation, error) {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	eqs := make([]graph.Equation, 0)
	for scanner.Scan() {
		lineNo++
		tokens, skip := fields(scanner.Text())
		if skip {
			continue
		}
		eq, err := parseEquation(tokens)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
		eqs = append(eqs, eq)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return eqs, nil
}

func parseEquation(tokens []string) (graph.Equation, error) {
	variable := func(s string) (byte, error) {
		if len(s) != 1 {
			return 0, errors.Newf("variable must be a single letter, got %q", s)
		}
		return s[0], nil
	}
	switch {
	case len(tokens) == 3 && (tokens[1] == "==" || tokens[1] == "=" || tokens[1] == "!="):
		l, err := variable(tokens[0])
		if err != nil {
			return graph.Equation{}, err
		}
		r, err := variable(tokens[2])
		if err != nil {
			return graph.Equation{}, err
		}
		return graph.Equation{Left: l, Right: r, Ratio: 1, Equal: tokens[1] != "!="}, nil
	case len(tokens) == 5 && tokens[1] == "/" && tokens[3] == "=":
		l, err := variable(tokens[0])
		if err != nil {
			return graph.Equation{}, err
		}
		r, err := variable(tokens[2])
		if err != nil {
			return graph.Equation{}, err
		}
		ratio, err := strconv.ParseFloat(tokens[4], 64)
		if err != nil {
			return graph.Equation{}, errors.Wrap(err, "ratio")
		}
		return graph.Equation{Left: l, Right: r, Ratio: ratio, Equal: true}, nil
	default:
		return graph.Equation{}, errors.Newf("equation must be \"x / y = r\", \"x == y\" or \"x != y\", got %q", strings.Join(tokens, " "))
	}
}

// fields tokenizes a line, reporting whether it should be skipped entirely
// (blank or comment).
func fields(line string) ([]string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, true
	}
	return strings.Fields(line), false
}
