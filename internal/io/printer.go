package io

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Formats supported by NewPrinter.
var Formats = []string{"table", "md", "csv", "tsv", "simple"}

type TablePrinter interface {
	SetHeader(header []string)
	AddRow(row []string)
	Print()
}

type prettyPrinter struct {
	writer table.Writer
	render func(table.Writer)
}

func (p *prettyPrinter) SetHeader(header []string) {
	p.writer.AppendHeader(toRow(header))
}

func (p *prettyPrinter) AddRow(row []string) {
	p.writer.AppendRow(toRow(row))
}

func (p *prettyPrinter) Print() {
	p.render(p.writer)
}

func toRow(cells []string) table.Row {
	row := make(table.Row, 0, len(cells))
	for _, c := range cells {
		row = append(row, c)
	}
	return row
}

// NewPrinter returns a TablePrinter rendering in the given format
// {table|md|csv|tsv|simple} to w.
func NewPrinter(w io.Writer, format string) (TablePrinter, error) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	switch format {
	case "table":
		return &prettyPrinter{writer: t, render: func(t table.Writer) { t.Render() }}, nil
	case "md":
		return &prettyPrinter{writer: t, render: func(t table.Writer) { t.RenderMarkdown() }}, nil
	case "csv":
		return &prettyPrinter{writer: t, render: func(t table.Writer) { t.RenderCSV() }}, nil
	case "tsv":
		return &prettyPrinter{writer: t, render: func(t table.Writer) { t.RenderTSV() }}, nil
	case "simple":
		t.Style().Options.DrawBorder = false
		t.Style().Options.SeparateHeader = false
		t.Style().Options.SeparateRows = false
		t.Style().Options.SeparateColumns = false
		return &prettyPrinter{writer: t, render: func(t table.Writer) { t.Render() }}, nil
	default:
		return nil, errors.Newf("unknown format: %s", format)
	}
}
