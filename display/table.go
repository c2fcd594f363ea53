package display

import (
	"io"
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// table is a borderless column layout: every cell gets one space of padding
// on each side and columns are aligned on their uncolored width.
type table struct {
	header      []string
	headerStyle string
	colStyles   []string
	rows        [][]string
}

func newTable(header ...string) *table {
	return &table{header: header}
}

func (t *table) addRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// render writes the table to w. Escapes are only emitted when color is set.
func (t *table) render(w io.Writer, color bool) error {
	widths := make([]int, len(t.header))
	measure := func(cells []string) {
		for i, c := range cells {
			if n := displayWidth(c); n > widths[i] {
				widths[i] = n
			}
		}
	}
	measure(t.header)
	for _, r := range t.rows {
		measure(r)
	}

	var b strings.Builder
	t.writeLine(&b, t.header, widths, func(int) string { return t.headerStyle }, color)
	for _, r := range t.rows {
		t.writeLine(&b, r, widths, func(i int) string {
			if i < len(t.colStyles) {
				return t.colStyles[i]
			}
			return ""
		}, color)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (t *table) writeLine(b *strings.Builder, cells []string, widths []int, style func(int) string, color bool) {
	last := len(cells) - 1
	for i, c := range cells {
		b.WriteByte(' ')
		b.WriteString(paint(color, style(i), c))
		if i == last {
			break
		}
		b.WriteString(strings.Repeat(" ", widths[i]-displayWidth(c)+1))
	}
	b.WriteByte('\n')
}

// displayWidth returns the number of terminal columns s occupies, counting
// East Asian wide runes as two and ignoring combining marks, variation
// selectors and zero-width joiners.
func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		if r == '\u200d' || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Variation_Selector, r) {
			continue
		}
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}
