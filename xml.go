// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"fmt"
	"strings"
)

// xmlPreamble is written at the start of every [ToXML] result, matching
// the processing instruction and doctype comrak's format_xml emits.
const xmlPreamble = "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n" +
	"<!DOCTYPE document SYSTEM \"CommonMark.dtd\">\n"

// ToXML renders b as an XML document using the canonical CommonMark
// element and attribute names (the same schema comrak's format_xml
// produces), rather than HTML. It is mainly useful for tests and
// tooling that want a parseable, render-agnostic view of the syntax
// tree; unlike [ToHTML], whitespace and indentation are not
// significant.
//
// If b is a [Document] with SourcePos set, every element carries a
// sourcepos attribute built from its [Position].
func ToXML(b Block) string {
	var x xmlPrinter
	if doc, ok := b.(*Document); ok {
		x.sourcePos = doc.SourcePos
	}
	x.buf.WriteString(xmlPreamble)
	x.block(b, 0)
	return x.buf.String()
}

// xmlPrinter holds the state of a single [ToXML] traversal. Footnote
// definitions are not part of a [Block]'s Blocks tree -- they live in
// the parser's side table and are reached only through a
// [FootnoteLink] -- so they are collected as they're encountered and
// emitted at the end of the enclosing [Document] element, mirroring
// how [printFootnoteHTML] appends them after the main HTML body.
type xmlPrinter struct {
	buf          strings.Builder
	sourcePos    bool
	footnotes    []*Footnote
	footnoteSeen map[*Footnote]bool
}

func (x *xmlPrinter) indent(depth int) {
	for range depth {
		x.buf.WriteString("  ")
	}
}

func (x *xmlPrinter) sourcepos(pos Position) string {
	if !x.sourcePos {
		return ""
	}
	return fmt.Sprintf(` sourcepos="%d:%d-%d:%d"`, pos.StartLine, pos.StartCol, pos.EndLine, pos.EndCol)
}

func (x *xmlPrinter) open(depth int, name, attrs string) {
	x.indent(depth)
	x.buf.WriteString("<")
	x.buf.WriteString(name)
	x.buf.WriteString(attrs)
	x.buf.WriteString(">\n")
}

func (x *xmlPrinter) close(depth int, name string) {
	x.indent(depth)
	x.buf.WriteString("</")
	x.buf.WriteString(name)
	x.buf.WriteString(">\n")
}

func (x *xmlPrinter) selfClose(depth int, name, attrs string) {
	x.indent(depth)
	x.buf.WriteString("<")
	x.buf.WriteString(name)
	x.buf.WriteString(attrs)
	x.buf.WriteString(" />\n")
}

// leaf writes a node whose content is literal text rather than child
// elements, such as a code span or a raw HTML block.
func (x *xmlPrinter) leaf(depth int, name, attrs, text string) {
	x.indent(depth)
	x.buf.WriteString("<")
	x.buf.WriteString(name)
	x.buf.WriteString(attrs)
	x.buf.WriteString(">")
	x.buf.WriteString(escapeXMLText(text))
	x.buf.WriteString("</")
	x.buf.WriteString(name)
	x.buf.WriteString(">\n")
}

func escapeXMLText(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func escapeXMLAttr(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func attr(name, value string) string {
	return fmt.Sprintf(` %s="%s"`, name, escapeXMLAttr(value))
}

func (x *xmlPrinter) blocks(list []Block, depth int) {
	for _, b := range list {
		x.block(b, depth)
	}
}

func (x *xmlPrinter) noteFootnote(f *Footnote) {
	if f == nil {
		return
	}
	if x.footnoteSeen == nil {
		x.footnoteSeen = make(map[*Footnote]bool)
	}
	if !x.footnoteSeen[f] {
		x.footnoteSeen[f] = true
		x.footnotes = append(x.footnotes, f)
	}
}

// block writes the XML element for b, recursing into its children.
// An unrecognized Block implementation is silently skipped rather
// than guessed at.
func (x *xmlPrinter) block(b Block, depth int) {
	switch v := b.(type) {
	case *Document:
		x.open(depth, "document", x.sourcepos(v.Position)+` xmlns="http://commonmark.org/xml/1.0"`)
		x.blocks(v.Blocks, depth+1)
		for _, fn := range x.footnotes {
			x.open(depth+1, "footnote_definition", attr("label", fn.Label)+x.sourcepos(fn.Position))
			x.blocks(fn.Blocks, depth+2)
			x.close(depth+1, "footnote_definition")
		}
		x.close(depth, "document")

	case *Paragraph:
		x.open(depth, "paragraph", x.sourcepos(v.Position))
		x.inline(v.Text.Inline, depth+1)
		x.close(depth, "paragraph")

	case *Text:
		// A Text block occurs only as the body of an item in a tight
		// list; it still corresponds to a paragraph node in the
		// canonical tree.
		x.open(depth, "paragraph", x.sourcepos(v.Position))
		x.inline(v.Inline, depth+1)
		x.close(depth, "paragraph")

	case *Heading:
		x.open(depth, "heading", x.sourcepos(v.Position)+fmt.Sprintf(` level="%d"`, v.level()))
		x.inline(v.Text.Inline, depth+1)
		x.close(depth, "heading")

	case *Quote:
		x.open(depth, "block_quote", x.sourcepos(v.Position))
		x.blocks(v.Blocks, depth+1)
		x.close(depth, "block_quote")

	case *Alert:
		attrs := x.sourcepos(v.Position) + attr("type", v.Kind)
		if v.Title != "" {
			attrs += attr("title", v.Title)
		}
		x.open(depth, "alert", attrs)
		x.blocks(v.Blocks, depth+1)
		x.close(depth, "alert")

	case *List:
		typ := "bullet"
		if v.Bullet == '.' || v.Bullet == ')' {
			typ = "ordered"
		}
		attrs := x.sourcepos(v.Position) + attr("type", typ)
		if typ == "ordered" {
			attrs += fmt.Sprintf(` start="%d"`, v.Start)
		}
		attrs += fmt.Sprintf(` tight="%t"`, !v.Loose)
		x.open(depth, "list", attrs)
		x.blocks(v.Items, depth+1)
		x.close(depth, "list")

	case *Item:
		x.open(depth, "item", x.sourcepos(v.Position))
		x.blocks(v.Blocks, depth+1)
		x.close(depth, "item")

	case *CodeBlock:
		attrs := x.sourcepos(v.Position)
		if v.Info != "" {
			attrs += attr("info", v.Info)
		}
		attrs += ` xml:space="preserve"`
		text := strings.Join(v.Text, "\n")
		if len(v.Text) > 0 {
			text += "\n"
		}
		x.leaf(depth, "code_block", attrs, text)

	case *HTMLBlock:
		attrs := x.sourcepos(v.Position) + ` xml:space="preserve"`
		text := strings.Join(v.Text, "\n")
		if len(v.Text) > 0 {
			text += "\n"
		}
		x.leaf(depth, "html_block", attrs, text)

	case *ThematicBreak:
		x.selfClose(depth, "thematic_break", x.sourcepos(v.Position))

	case *Table:
		x.open(depth, "table", x.sourcepos(v.Position))
		x.tableRow(v.Header, v.Align, depth+1)
		for _, row := range v.Rows {
			x.tableRow(row, v.Align, depth+1)
		}
		x.close(depth, "table")

	case *DescriptionList:
		x.open(depth, "description_list", x.sourcepos(v.Position))
		x.open(depth+1, "description_term", "")
		x.inline(v.Term.Inline, depth+2)
		x.close(depth+1, "description_term")
		for _, def := range v.Definitions {
			x.open(depth+1, "description_details", "")
			x.inline(def.Inline, depth+2)
			x.close(depth+1, "description_details")
		}
		x.close(depth, "description_list")

	case *FrontMatter:
		x.selfClose(depth, "front_matter", x.sourcepos(v.Position))

	case *Empty:
		// Renders nothing, matching (*Empty).printHTML.
	}
}

func (x *xmlPrinter) tableRow(cells []*Text, align []string, depth int) {
	x.open(depth, "table_row", "")
	for i, cell := range cells {
		attrs := ""
		if i < len(align) && align[i] != "" {
			attrs = attr("align", align[i])
		}
		x.open(depth+1, "table_cell", attrs)
		x.inline(cell.Inline, depth+2)
		x.close(depth+1, "table_cell")
	}
	x.close(depth, "table_row")
}

func (x *xmlPrinter) inline(list Inlines, depth int) {
	for _, in := range list {
		x.inlineOne(in, depth)
	}
}

// inlineOne writes the XML element for in. An unrecognized Inline
// implementation is silently skipped rather than guessed at.
func (x *xmlPrinter) inlineOne(in Inline, depth int) {
	switch v := in.(type) {
	case *Plain:
		x.leaf(depth, "text", ` xml:space="preserve"`, v.Text)
	case *Escaped:
		x.leaf(depth, "text", ` xml:space="preserve"`, v.Text)
	case *Code:
		x.leaf(depth, "code", ` xml:space="preserve"`, v.Text)
	case *Strong:
		x.open(depth, "strong", "")
		x.inline(v.Inner, depth+1)
		x.close(depth, "strong")
	case *Emph:
		x.open(depth, "emph", "")
		x.inline(v.Inner, depth+1)
		x.close(depth, "emph")
	case *Del:
		x.open(depth, "strikethrough", "")
		x.inline(v.Inner, depth+1)
		x.close(depth, "strikethrough")
	case *Subscript:
		x.open(depth, "subscript", "")
		x.inline(v.Inner, depth+1)
		x.close(depth, "subscript")
	case *Highlight:
		x.leaf(depth, "mark", ` xml:space="preserve"`, v.Text)
	case *Spoiler:
		x.leaf(depth, "spoileredtext", ` xml:space="preserve"`, v.Text)
	case *Superscript:
		x.leaf(depth, "superscript", ` xml:space="preserve"`, v.Text)
	case *Underline:
		x.leaf(depth, "underline", ` xml:space="preserve"`, v.Text)
	case *Math:
		x.leaf(depth, "math", ` math_style="inline" xml:space="preserve"`, v.Text)
	case *Emoji:
		x.leaf(depth, "text", ` xml:space="preserve"`, v.Text)
	case *FootnoteLink:
		x.noteFootnote(v.Footnote)
		label := v.Label
		if v.Footnote != nil && v.Footnote.Label != "" {
			label = v.Footnote.Label
		}
		x.selfClose(depth, "footnote_reference", attr("label", label))
	case *HTMLTag:
		x.leaf(depth, "html_inline", ` xml:space="preserve"`, v.Text)
	case *Link:
		if v.WikiLink {
			x.linkLike(depth, "wikilink", attr("destination", v.URL), v.Inner)
			break
		}
		attrs := attr("destination", v.URL) + attr("title", v.Title)
		x.linkLike(depth, "link", attrs, v.Inner)
	case *Image:
		attrs := attr("destination", v.URL) + attr("title", v.Title)
		x.linkLike(depth, "image", attrs, v.Inner)
	case *AutoLink:
		x.open(depth, "link", attr("destination", v.URL))
		x.leaf(depth+1, "text", ` xml:space="preserve"`, v.Text)
		x.close(depth, "link")
	case *HardBreak:
		x.selfClose(depth, "linebreak", "")
	case *SoftBreak:
		x.selfClose(depth, "softbreak", "")
	case Inlines:
		x.inline(v, depth)
	}
}

// linkLike writes a link/wikilink/image element, which self-closes
// when it has no inner content (as, for example, an empty alt text
// image does).
func (x *xmlPrinter) linkLike(depth int, name, attrs string, inner Inlines) {
	if len(inner) == 0 {
		x.selfClose(depth, name, attrs)
		return
	}
	x.open(depth, name, attrs)
	x.inline(inner, depth+1)
	x.close(depth, name)
}
