// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

// A DescriptionList is a [Block] representing a term and its
// associated definitions, a comrak extension usually displayed with
// <dl>, <dt>, and <dd> tags:
//
//	Term
//
//	: Definition
//
// The definition line follows a blank line; a ": Definition" line
// directly under the term continues the term's paragraph instead.
//
// Adjacent term/definition pairs each produce their own
// DescriptionList rather than being merged into a single <dl>.
type DescriptionList struct {
	Position
	Term        *Text
	Definitions []*Text
}

func (*DescriptionList) Block() {}

func (b *DescriptionList) printHTML(p *printer) {
	p.html("<dl", p.sourcePosAttr(b.Position), ">")
	p.html("<dt>")
	b.Term.printHTML(p)
	p.html("</dt>\n")
	for _, def := range b.Definitions {
		p.html("<dd>\n<p>")
		def.printHTML(p)
		p.html("</p>\n</dd>\n")
	}
	p.html("</dl>\n")
}

func (b *DescriptionList) printMarkdown(p *printer) {
	p.maybeNL()
	b.Term.printMarkdown(p)
	for _, def := range b.Definitions {
		p.nl()
		p.nl()
		p.md(": ")
		def.printMarkdown(p)
	}
}

// A descriptionListBuilder is a [blockBuilder] for a [DescriptionList].
// It is opened only once the first ": definition" line is seen
// following a closed [Paragraph], which it adopts as the term.
type descriptionListBuilder struct {
	term    *Text
	defs    []string // one entry per accumulated definition, each possibly multi-line
	defText []string // lines of the definition currently being accumulated
}

func (b *descriptionListBuilder) flush() {
	if len(b.defText) > 0 {
		s := b.defText[0]
		for _, l := range b.defText[1:] {
			s += "\n" + l
		}
		b.defs = append(b.defs, s)
		b.defText = nil
	}
}

// startDescriptionItem is a [starter] for a [DescriptionList]
// definition line, ": definition". It either extends the
// [descriptionListBuilder] already open at the top of the stack, or
// -- if the most recently closed sibling block is a [Paragraph] --
// opens a new one, adopting that paragraph's text as the term.
func startDescriptionItem(p *parser, s line) (line, bool) {
	t := s
	t.trimSpace(0, 3, false)
	if !t.trim(':') {
		return s, false
	}
	if !t.trimSpace(1, 1, true) {
		return s, false
	}
	text := t.trimSpaceString()

	if db, ok := p.curB().(*descriptionListBuilder); ok {
		db.flush()
		db.defText = append(db.defText, text)
		return line{}, true
	}

	para, ok := p.last().(*Paragraph)
	if !ok {
		return s, false
	}
	p.deleteLast()
	db := &descriptionListBuilder{term: para.Text}
	db.defText = append(db.defText, text)
	p.addBlock(db)
	return line{}, true
}

// extend consumes plain continuation lines of the definition
// currently being accumulated; a blank line ends the list, and a
// fresh ": def" line is instead routed to startDescriptionItem by
// the generic starter loop once extend declines it.
func (b *descriptionListBuilder) extend(p *parser, s line) (line, bool) {
	if s.isBlank() {
		return s, false
	}
	t := s
	t.trimSpace(0, 3, false)
	if t.peek() == ':' {
		return s, false
	}
	b.defText = append(b.defText, s.trimSpaceString())
	return line{}, true
}

func (b *descriptionListBuilder) build(p *parser) Block {
	b.flush()
	pos := p.pos()
	defs := make([]*Text, len(b.defs))
	for i, d := range b.defs {
		defs[i] = p.newText(pos, d)
	}
	return &DescriptionList{pos, b.term, defs}
}
