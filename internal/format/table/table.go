package table

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

const gutter = "  "

// Format lays out rows in columns sized to the widest cell, measured in
// terminal cells. Rows shorter than the widest row are padded with empty
// cells and trailing whitespace is dropped from every line.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	colCount := 0
	for _, row := range rows {
		colCount = max(colCount, len(row))
	}
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			widths[c] = max(widths[c], lipgloss.Width(cell))
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c := 0; c < colCount; c++ {
			cell := ""
			if c < len(row) {
				cell = row[c]
			}
			if c > 0 {
				b.WriteString(gutter)
			}
			pad := strings.Repeat(" ", widths[c]-lipgloss.Width(cell))
			if c < len(alignments) && alignments[c] == AlignRight {
				b.WriteString(pad + cell)
				continue
			}
			b.WriteString(cell + pad)
		}
		out[i] = strings.TrimRight(b.String(), " ")
	}
	return out
}
