// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "strings"

// A Highlight is an [Inline] representing text marked with the
// GitHub-flavored Markdown highlight extension, written ==like this==.
// Unlike [Strong] and [Emph], the content of a Highlight is not
// re-parsed for nested inlines.
type Highlight struct {
	Text string
}

func (*Highlight) Inline() {}

func (x *Highlight) printText(p *printer) { p.text(x.Text) }

func (x *Highlight) printHTML(p *printer) {
	p.html("<mark>")
	p.text(x.Text)
	p.html("</mark>")
}

func (x *Highlight) printMarkdown(p *printer) {
	p.WriteString("==")
	p.WriteString(x.Text)
	p.WriteString("==")
}

// parseHighlight is an [inlineParser] for the Highlight extension,
// gated on [Parser.Highlight].
func parseHighlight(p *parser, s string, start int) (x Inline, end int, ok bool) {
	if !strings.HasPrefix(s[start:], "==") {
		return
	}
	j := strings.Index(s[start+2:], "==")
	if j <= 0 {
		return
	}
	text := s[start+2 : start+2+j]
	return &Highlight{text}, start + 4 + j, true
}

// A Spoiler is an [Inline] representing text hidden behind a
// spoiler tag, a comrak extension written ||like this||.
type Spoiler struct {
	Text string
}

func (*Spoiler) Inline() {}

func (x *Spoiler) printText(p *printer) { p.text(x.Text) }

func (x *Spoiler) printHTML(p *printer) {
	p.html(`<span class="spoiler">`)
	p.text(x.Text)
	p.html("</span>")
}

func (x *Spoiler) printMarkdown(p *printer) {
	p.WriteString("||")
	p.WriteString(x.Text)
	p.WriteString("||")
}

// parseSpoiler is an [inlineParser] for the Spoiler extension,
// gated on [Parser.Spoiler].
func parseSpoiler(p *parser, s string, start int) (x Inline, end int, ok bool) {
	if !strings.HasPrefix(s[start:], "||") {
		return
	}
	j := strings.Index(s[start+2:], "||")
	if j <= 0 {
		return
	}
	text := s[start+2 : start+2+j]
	return &Spoiler{text}, start + 4 + j, true
}

// A Superscript is an [Inline] representing superscript text delimited
// by a single '^', a comrak extension written like e = mc^2^.
type Superscript struct {
	Text string
}

func (*Superscript) Inline() {}

func (x *Superscript) printText(p *printer) { p.text(x.Text) }

func (x *Superscript) printHTML(p *printer) {
	p.html("<sup>")
	p.text(x.Text)
	p.html("</sup>")
}

func (x *Superscript) printMarkdown(p *printer) {
	p.WriteString("^")
	p.WriteString(x.Text)
	p.WriteString("^")
}

// parseSuperscript is an [inlineParser] for the Superscript extension,
// gated on [Parser.Superscript]. The content between carets may not
// contain whitespace, matching comrak's implementation.
func parseSuperscript(p *parser, s string, start int) (x Inline, end int, ok bool) {
	for j := start + 1; j < len(s); j++ {
		switch {
		case s[j] == '^':
			if j == start+1 {
				return
			}
			return &Superscript{s[start+1 : j]}, j + 1, true
		case s[j] == ' ' || s[j] == '\t' || s[j] == '\n':
			return
		}
	}
	return
}

// An Underline is an [Inline] representing underlined text, a comrak
// extension written __like this__. It is distinct from [Strong],
// which also uses a double-underscore delimiter; when
// [Parser.Underline] is set, a double-underscore run is always read
// as underline rather than strong emphasis.
type Underline struct {
	Text string
}

func (*Underline) Inline() {}

func (x *Underline) printText(p *printer) { p.text(x.Text) }

func (x *Underline) printHTML(p *printer) {
	p.html("<u>")
	p.text(x.Text)
	p.html("</u>")
}

func (x *Underline) printMarkdown(p *printer) {
	p.WriteString("__")
	p.WriteString(x.Text)
	p.WriteString("__")
}

// parseUnderline is an [inlineParser] for the Underline extension,
// gated on [Parser.Underline]. It only matches an exact
// double-underscore delimiter run (not longer runs, which fall
// through to regular emphasis parsing).
func parseUnderline(p *parser, s string, start int) (x Inline, end int, ok bool) {
	if !strings.HasPrefix(s[start:], "__") {
		return
	}
	if start+2 < len(s) && s[start+2] == '_' {
		return // longer run; let parseEmph handle it
	}
	j := strings.Index(s[start+2:], "__")
	if j <= 0 {
		return
	}
	text := s[start+2 : start+2+j]
	return &Underline{text}, start + 4 + j, true
}

// parseUnderlineOrEmph is an [inlineParser] used for the '_' dispatch
// case when [Parser.Underline] is set: it tries the Underline
// extension first and falls back to regular emphasis parsing.
func parseUnderlineOrEmph(p *parser, s string, start int) (x Inline, end int, ok bool) {
	if x, end, ok := parseUnderline(p, s, start); ok {
		return x, end, ok
	}
	return parseEmph(p, s, start)
}

// A Math is an [Inline] representing a dollar-delimited inline math
// span, a comrak extension written $like this$.
type Math struct {
	Text string
}

func (*Math) Inline() {}

func (x *Math) printText(p *printer) { p.text(x.Text) }

func (x *Math) printHTML(p *printer) {
	p.html(`<code data-math-style="inline">`)
	p.text(x.Text)
	p.html("</code>")
}

func (x *Math) printMarkdown(p *printer) {
	p.WriteString("$")
	p.WriteString(x.Text)
	p.WriteString("$")
}

// parseMath is an [inlineParser] for the Math extension, gated on
// [Parser.Math]. It implements a simplified version of comrak's
// dollar-math flanking rule: the span's first and last characters
// may not be whitespace, and it does not span a line ending. It does
// not attempt comrak's heuristics for distinguishing math from
// literal prices like $20.
func parseMath(p *parser, s string, start int) (x Inline, end int, ok bool) {
	if start+1 >= len(s) {
		return
	}
	switch s[start+1] {
	case ' ', '\t', '\n', '$':
		return
	}
	for i := start + 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if i+1 < len(s) {
				i++
			}
		case '\n':
			return
		case '$':
			if s[i-1] == ' ' || s[i-1] == '\t' {
				return
			}
			return &Math{s[start+1 : i]}, i + 1, true
		}
	}
	return
}

// parseWikiLink is an [inlineParser] for the WikiLink extension,
// gated on [Parser.WikiLink] and dispatched only when '[' is
// immediately followed by a second '['. The syntax is
// [[target]] or, with a pipe, [[a|b]], where the ordering of URL and
// title around the pipe is controlled by
// [Parser.WikiLinkTitleAfterPipe].
func parseWikiLink(p *parser, s string, start int) (x Inline, end int, ok bool) {
	j := strings.Index(s[start+2:], "]]")
	if j < 0 {
		return
	}
	inner := s[start+2 : start+2+j]
	if strings.ContainsAny(inner, "\n") {
		return
	}
	url, title := inner, inner
	if i := strings.IndexByte(inner, '|'); i >= 0 {
		a, b := inner[:i], inner[i+1:]
		if p.WikiLinkTitleAfterPipe {
			url, title = a, b
		} else {
			title, url = a, b
		}
	}
	return &Link{Inner: Inlines{&Plain{title}}, URL: url, WikiLink: true}, start + 4 + j, true
}
