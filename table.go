// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"strings"
)

func isTableSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\v' || c == '\f'
}

func tableTrimSpace(s string) string {
	i := 0
	for i < len(s) && isTableSpace(s[i]) {
		i++
	}
	j := len(s)
	for j > i && isTableSpace(s[j-1]) {
		j--
	}
	return s[i:j]
}

func tableTrimOuter(row string) string {
	row = tableTrimSpace(row)
	if len(row) > 0 && row[0] == '|' {
		row = row[1:]
	}
	if len(row) > 0 && row[len(row)-1] == '|' {
		row = row[:len(row)-1]
	}
	return row
}

func isTableStart(hdr, delim string) bool {
	// Scan potential delimiter string, counting columns.
	// This happens on every line of text,
	// so make it relatively quick - nothing expensive.
	col := 0
	delim = tableTrimOuter(delim)
	i := 0
	for ; ; col++ {
		for i < len(delim) && isTableSpace(delim[i]) {
			i++
		}
		if i >= len(delim) {
			break
		}
		if i < len(delim) && delim[i] == ':' {
			i++
		}
		if i >= len(delim) || delim[i] != '-' {
			return false
		}
		i++
		for i < len(delim) && delim[i] == '-' {
			i++
		}
		if i < len(delim) && delim[i] == ':' {
			i++
		}
		for i < len(delim) && isTableSpace(delim[i]) {
			i++
		}
		if i < len(delim) && delim[i] == '|' {
			i++
		}
	}
	return col == tableCount(hdr)
}

func tableCount(row string) int {
	row = tableTrimOuter(row)
	col := 1
	for i := 0; i < len(row); i++ {
		c := row[i]
		if c == '\\' {
			i++
			continue
		}
		if c == '|' {
			col++
		}
	}
	return col
}

type tableBuilder struct {
	hdr   string
	delim string
	rows  []string
}

func (b *tableBuilder) start(hdr, delim string) {
	b.hdr = tableTrimOuter(hdr)
	b.delim = tableTrimOuter(delim)
}

func (b *tableBuilder) addRow(row string) {
	b.rows = append(b.rows, tableTrimOuter(row))
}

type Table struct {
	Position
	Header []*Text
	Align  []string // 'l', 'c', 'r' for left, center, right; 0 for unset
	Rows   [][]*Text
}

func (*Table) Block() {}

func (t *Table) printHTML(p *printer) {
	p.html("<table", p.sourcePosAttr(t.Position), ">\n")
	p.html("<thead>\n")
	p.html("<tr>\n")
	for i, hdr := range t.Header {
		p.html("<th")
		if t.Align[i] != "" {
			p.html(" align=\"", t.Align[i], "\"")
		}
		p.html(">")
		hdr.printHTML(p)
		p.html("</th>\n")
	}
	p.html("</tr>\n")
	p.html("</thead>\n")
	if len(t.Rows) > 0 {
		p.html("<tbody>\n")
		for _, row := range t.Rows {
			p.html("<tr>\n")
			for i, cell := range row {
				p.html("<td")
				if i < len(t.Align) && t.Align[i] != "" {
					p.html(" align=\"", t.Align[i], "\"")
				}
				p.html(">")
				cell.printHTML(p)
				p.html("</td>\n")
			}
			p.html("</tr>\n")
		}
		p.html("</tbody>\n")
	}
	p.html("</table>\n")
}

// printMarkdown re-renders the table in pipe-table form, re-escaping
// any literal "|" in a cell as "\|" and padding each column to the
// width of its widest cell.
func (t *Table) printMarkdown(p *printer) {
	p.maybeNL()
	width := columnWidths(t)
	printTableRow(p, t.Header, t.Align, width)
	p.nl()
	for i, a := range t.Align {
		if i > 0 {
			p.md(" | ")
		}
		p.md(paddedCell(dashesFor(a), a, width[i]))
	}
	for _, row := range t.Rows {
		p.nl()
		printTableRow(p, row, t.Align, width)
	}
}

// dashesFor returns the minimal delimiter-row cell text for align.
func dashesFor(align string) string {
	switch align {
	case "center":
		return ":-:"
	case "left":
		return ":--"
	case "right":
		return "--:"
	default:
		return "---"
	}
}

// columnWidths computes, for each column, the width of its widest
// rendered (and pipe-escaped) cell, so printMarkdown can align
// columns the way cmark-gfm's own table formatter does.
func columnWidths(t *Table) []int {
	width := make([]int, len(t.Align))
	measure := func(cells []*Text) {
		for i, cell := range cells {
			if i >= len(width) {
				break
			}
			if w := len(tableEscapeCell(Format(cell))); w > width[i] {
				width[i] = w
			}
		}
	}
	measure(t.Header)
	for _, row := range t.Rows {
		measure(row)
	}
	for i, w := range width {
		if w < 3 {
			width[i] = 3 // room for the shortest delimiter cell, "---"
		}
	}
	return width
}

func printTableRow(p *printer, cells []*Text, align []string, width []int) {
	for i, cell := range cells {
		if i > 0 {
			p.md(" | ")
		}
		a := ""
		if i < len(align) {
			a = align[i]
		}
		w := 0
		if i < len(width) {
			w = width[i]
		}
		p.md(paddedCell(tableEscapeCell(Format(cell)), a, w))
	}
}

// paddedCell pads raw with spaces to width w according to align
// ("left", "right", "center", or "" for left), matching the minimal
// padding a reader would add by hand to keep pipe-table columns
// visually aligned. If raw is already at least w wide, it is
// returned unchanged.
func paddedCell(raw, align string, w int) string {
	pad := w - len(raw)
	if pad <= 0 {
		return raw
	}
	switch align {
	case "center":
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + raw + strings.Repeat(" ", right)
	case "right":
		return strings.Repeat(" ", pad) + raw
	default:
		return raw + strings.Repeat(" ", pad)
	}
}

func tableEscapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

func (b *tableBuilder) build(p *parser) Block {
	pos := p.pos()
	pos.StartLine-- // builder does not count header
	pos.EndLine = pos.StartLine + 1 + len(b.rows)
	t := &Table{
		Position: pos,
	}
	width := tableCount(b.hdr)
	t.Header = b.parseRow(p, b.hdr, pos.StartLine, width)
	t.Align = b.parseAlign(b.delim, width)
	t.Rows = make([][]*Text, len(b.rows))
	for i, row := range b.rows {
		t.Rows[i] = b.parseRow(p, row, pos.StartLine+2+i, width)
	}
	return t
}

func (b *tableBuilder) parseRow(p *parser, row string, line int, width int) []*Text {
	out := make([]*Text, 0, width)
	pos := Position{StartLine: line, EndLine: line, StartCol: 1, EndCol: 1}
	start := 0
	unesc := nop
	for i := 0; i < len(row); i++ {
		c := row[i]
		if c == '\\' {
			i++
			if i < len(row) && row[i] == '|' {
				// Need to rewrite escaped pipe to pipe in cell.
				unesc = tableUnescape
			}
			continue
		}
		if c == '|' {
			out = append(out, p.newText(pos, unesc(strings.Trim(row[start:i], " \t\v\f"))))
			if len(out) == width {
				// Extra cells are discarded!
				return out
			}
			start = i + 1
			unesc = nop
		}
	}
	out = append(out, p.newText(pos, unesc(strings.Trim(row[start:], " \t\v\f"))))
	for len(out) < width {
		// Missing cells are considered empty.
		out = append(out, p.newText(pos, ""))
	}
	return out
}

func nop(text string) string {
	return text
}

func tableUnescape(text string) string {
	out := make([]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '\\' && i+1 < len(text) && text[i+1] == '|' {
			i++
			c = '|'
		}
		out = append(out, c)
	}
	return string(out)
}

func (b *tableBuilder) parseAlign(delim string, n int) []string {
	align := make([]string, 0, tableCount(delim))
	start := 0
	for i := 0; i < len(delim); i++ {
		if delim[i] == '|' {
			align = append(align, tableAlign(delim[start:i]))
			start = i + 1
		}
	}
	align = append(align, tableAlign(delim[start:]))
	return align
}

func tableAlign(cell string) string {
	cell = tableTrimSpace(cell)
	l := cell[0] == ':'
	r := cell[len(cell)-1] == ':'
	switch {
	case l && r:
		return "center"
	case l:
		return "left"
	case r:
		return "right"
	}
	return ""
}
