// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "strings"

// A FrontMatter is a [Block] representing a document-initial
// ---\n...\n--- section, such as YAML metadata. It is never rendered
// to HTML; it exists so that a caller can inspect [FrontMatter.Text]
// before or after rendering the rest of the document.
type FrontMatter struct {
	Position
	Text string // raw text between the delimiter lines, not including them
}

func (*FrontMatter) Block() {}

func (b *FrontMatter) printHTML(p *printer) {}

func (b *FrontMatter) printMarkdown(p *printer) {
	p.md("---")
	p.nl()
	for _, ln := range strings.Split(strings.TrimSuffix(b.Text, "\n"), "\n") {
		p.md(ln)
		p.nl()
	}
	p.md("---")
}

// parseFrontMatter consumes a leading "---\n...\n---\n" section from
// text, if present, recording it as a block on ps, and returns the
// remainder of the document. It must run before the regular per-line
// block loop, since --- would otherwise be read as a thematic break
// or Setext heading underline.
func (ps *parser) parseFrontMatter(text string) string {
	opener := strings.TrimRight(firstLine(text), "\r\n")
	if opener != "---" {
		return text
	}

	rest := text[len(firstLine(text)):]
	var body strings.Builder
	nlines := 1
	for rest != "" {
		ln := firstLine(rest)
		trimmed := strings.TrimRight(ln, "\r\n")
		rest = rest[len(ln):]
		nlines++
		if trimmed == "---" || trimmed == "..." {
			ps.lineno = nlines
			ps.appendBlock(&FrontMatter{Position{StartLine: 1, EndLine: nlines, StartCol: 1, EndCol: 1}, body.String()})
			return rest
		}
		body.WriteString(ln)
	}
	// No closing delimiter: not front matter after all.
	return text
}

// firstLine returns the text up to and including the first newline,
// or all of s if it contains none.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i+1]
	}
	return s
}
