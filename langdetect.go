// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "github.com/go-enry/go-enry/v2"

// enryCandidates lists the languages EnryDetectLanguage asks go-enry's
// classifier to choose among. Restricting the candidate set, rather
// than letting go-enry guess from its full language list, keeps
// short code fences from being misclassified.
var enryCandidates = []string{
	"Go", "Python", "JavaScript", "TypeScript", "Shell", "Ruby", "Rust",
	"Java", "C", "C++", "SQL", "JSON", "YAML", "HTML", "CSS", "Markdown",
	"Dockerfile",
}

// EnryDetectLanguage is a [Parser.DetectLanguage] implementation
// backed by go-enry. It first checks for a shebang line, then falls
// back to go-enry's statistical classifier restricted to
// [enryCandidates]; either strategy can report low confidence, in
// which case ok is false and the fenced code block is left
// unlabeled.
func EnryDetectLanguage(text string) (lang string, ok bool) {
	content := []byte(text)
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalizeEnryLanguage(lang), true
	}
	lang, safe := enry.GetLanguageByClassifier(content, enryCandidates)
	if !safe || lang == "" {
		return "", false
	}
	return normalizeEnryLanguage(lang), true
}

// normalizeEnryLanguage converts a go-enry language name to the
// lowercase form conventionally used as a fenced code block's info
// string.
func normalizeEnryLanguage(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	out := make([]byte, len(lang))
	for i := 0; i < len(lang); i++ {
		c := lang[i]
		if c == ' ' {
			c = '-'
		} else if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}
