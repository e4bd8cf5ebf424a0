// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"fmt"
)

type List struct {
	Position
	Bullet rune
	Start  int
	Loose  bool
	Items  []Block
}

type Item struct {
	Position
	Blocks []Block
}

func (*List) Block() {}
func (*Item) Block() {}

func (b *List) printHTML(p *printer) {
	if b.Bullet == '.' || b.Bullet == ')' {
		p.html("<ol")
		if b.Start != 1 {
			p.html(fmt.Sprintf(" start=\"%d\"", b.Start))
		}
		p.html(p.sourcePosAttr(b.Position), ">\n")
	} else {
		p.html("<ul", p.sourcePosAttr(b.Position), ">\n")
	}
	for _, c := range b.Items {
		c.printHTML(p)
	}
	if b.Bullet == '.' || b.Bullet == ')' {
		p.html("</ol>\n")
	} else {
		p.html("</ul>\n")
	}
}

func (b *Item) printHTML(p *printer) {
	p.html("<li", p.sourcePosAttr(b.Position), ">")
	if len(b.Blocks) > 0 {
		if _, ok := b.Blocks[0].(*Text); !ok {
			p.html("\n")
		}
	}
	for i, c := range b.Blocks {
		c.printHTML(p)
		if i+1 < len(b.Blocks) {
			if _, ok := c.(*Text); ok {
				p.html("\n")
			}
		}
	}
	p.html("</li>\n")
}

func (b *List) printMarkdown(p *printer) {
	n := b.Start
	for i, item := range b.Items {
		if i > 0 {
			p.nl()
			if b.Loose {
				p.nl()
			}
		}
		prefix := string(b.Bullet) + " "
		if b.Bullet == '.' || b.Bullet == ')' {
			prefix = fmt.Sprintf("%d%c ", n, b.Bullet)
			n++
		}
		p.md(prefix)
		defer p.pop(p.push(mdPad(len(prefix))))
		item.printMarkdown(p)
	}
}

func (b *Item) printMarkdown(p *printer) {
	printMarkdownBlocks(b.Blocks, p)
}

func mdPad(n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = ' '
	}
	return string(buf)
}

// A listBuilder is a [blockBuilder] for a [List].
type listBuilder struct {
	bullet rune
	num    int
	loose  bool
	item   *itemBuilder
	todo   func() line
}

// An itemBuilder is a [blockBuilder] for a single [Item] of a [List].
type itemBuilder struct {
	list        *listBuilder
	width       int
	haveContent bool
}

func (b *listBuilder) build(p *parser) Block {
	blocks := p.blocks()
	pos := p.pos()

	// list can have wrong pos b/c extend dance.
	pos.EndLine = blocks[len(blocks)-1].Pos().EndLine
Loose:
	for i, c := range blocks {
		c := c.(*Item)
		if i+1 < len(blocks) {
			if blocks[i+1].Pos().StartLine-c.EndLine > 1 {
				b.loose = true
				break Loose
			}
		}
		for j, d := range c.Blocks {
			endLine := d.Pos().EndLine
			if j+1 < len(c.Blocks) {
				if c.Blocks[j+1].Pos().StartLine-endLine > 1 {
					b.loose = true
					break Loose
				}
			}
		}
	}

	if !b.loose {
		for _, c := range blocks {
			c := c.(*Item)
			for i, d := range c.Blocks {
				if p, ok := d.(*Paragraph); ok {
					c.Blocks[i] = p.Text
				}
			}
		}
	}

	return &List{
		pos,
		b.bullet,
		b.num,
		b.loose,
		blocks,
	}
}

func (b *itemBuilder) build(p *parser) Block {
	b.list.item = nil
	return &Item{p.pos(), p.blocks()}
}

func (c *listBuilder) extend(p *parser, s line) (line, bool) {
	d := c.item
	if d != nil && s.trimSpace(d.width, d.width, true) || d == nil && s.isBlank() {
		return s, true
	}
	return s, false
}

func (c *itemBuilder) extend(p *parser, s line) (line, bool) {
	if s.isBlank() && !c.haveContent {
		return s, false
	}
	if s.isBlank() {
		// Goldmark does this and apparently commonmark.js too.
		// Not sure why it is necessary.
		return line{}, true
	}
	if !s.isBlank() {
		c.haveContent = true
	}
	return s, true
}

func newListItem(p *parser, s line) (line, bool) {
	if list, ok := p.curB().(*listBuilder); ok && list.todo != nil {
		s = list.todo()
		list.todo = nil
		return s, true
	}
	if p.startListItem(&s) {
		return s, true
	}
	return s, false
}

// listMarker describes a recognized list item marker (bullet or
// ordered-list number) at the front of a line.
type listMarker struct {
	bullet byte
	num    int
	n      int  // bytes consumed through the marker and following space
	blank  bool // true if nothing but the marker is on the line
}

// scanListMarker recognizes a list item marker at the front of t,
// reporting the marker found and the line remaining after it (and
// the indent consumed for the item's own content), or ok=false if no
// marker is present.
func scanListMarker(t line) (m listMarker, rest line, ok bool) {
	n := 0
	for i := 0; i < 3; i++ {
		if !t.trimSpace(1, 1, false) {
			break
		}
		n++
	}
	bullet := t.peek()
	var num int
Switch:
	switch bullet {
	default:
		return listMarker{}, t, false
	case '-', '*', '+':
		t.trim(bullet)
		n++
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		for j := t.i; ; j++ {
			if j >= len(t.text) {
				return listMarker{}, t, false
			}
			c := t.text[j]
			if c == '.' || c == ')' {
				bullet = c
				j++
				n += j - t.i
				t.i = j
				break Switch
			}
			if c < '0' || '9' < c {
				return listMarker{}, t, false
			}
			if j-t.i >= 9 {
				return listMarker{}, t, false
			}
			num = num*10 + int(c) - '0'
		}
	}
	if !t.trimSpace(1, 1, true) {
		return listMarker{}, t, false
	}
	n++
	tt := t
	mm := 0
	for i := 0; i < 3 && tt.trimSpace(1, 1, false); i++ {
		mm++
	}
	blank := t.isBlank()
	if !tt.trimSpace(1, 1, true) {
		n += mm
		t = tt
	}
	return listMarker{bullet: bullet, num: num, n: n, blank: blank}, t, true
}

// matchListMarker reports whether s starts a list item marker. If
// paraOpen is true, the stricter rule for a marker interrupting an
// open paragraph is applied: the first line of the item may not be
// blank, and an ordered marker must start at 1.
func matchListMarker(s line, paraOpen bool) (listMarker, bool) {
	m, t, ok := scanListMarker(s)
	if !ok {
		return m, false
	}
	if paraOpen && (t.isBlank() || (m.bullet != '-' && m.bullet != '*' && m.bullet != '+' && m.num != 1)) {
		return m, false
	}
	return m, true
}

func (p *parser) startListItem(s *line) bool {
	m, t, ok := scanListMarker(*s)
	if !ok {
		return false
	}
	bullet, num, n := m.bullet, m.num, m.n

	// point of no return

	var list *listBuilder
	if c, ok := p.nextB().(*listBuilder); ok {
		list = c
	}
	if list == nil || list.bullet != rune(bullet) {
		// “When the first list item in a list interrupts a paragraph—that is,
		// when it starts on a line that would otherwise count as
		// paragraph continuation text—then (a) the lines Ls must
		// not begin with a blank line,
		// and (b) if the list item is ordered, the start number must be 1.”
		if list == nil && p.para() != nil && (t.isBlank() || num > 1) {
			return false
		}
		list = &listBuilder{bullet: rune(bullet), num: num}
		p.addBlock(list)
	}
	b := &itemBuilder{list: list, width: n, haveContent: !t.isBlank()}
	list.todo = func() line {
		p.addBlock(b)
		list.item = b
		return t
	}
	return true
}
