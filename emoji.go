// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

// maxEmojiLen is an upper bound on the length of the keys in [emoji],
// used to bound how far parseEmoji scans looking for a closing ':'.
const maxEmojiLen = 32

// emoji maps GFM :shortcode: names to their Unicode expansion.
//
// This is a curated subset of the table published at
// https://api.github.com/emojis (the source emoji2go.go fetches and
// formats into Go source); it covers commonly used shortcodes rather
// than the full GitHub set of well over a thousand entries.
var emoji = map[string]string{
	"smile":             "😄",
	"smiley":            "😃",
	"grin":              "😁",
	"laughing":          "😆",
	"wink":              "😉",
	"blush":             "😊",
	"joy":               "😂",
	"sob":               "😭",
	"cry":               "😢",
	"rage":              "😡",
	"angry":             "😠",
	"scream":            "😱",
	"thinking":          "🤔",
	"shrug":             "🤷",
	"facepalm":          "🤦",
	"heart":             "❤️",
	"broken_heart":      "💔",
	"thumbsup":          "👍",
	"+1":                "👍",
	"thumbsdown":        "👎",
	"-1":                "👎",
	"clap":              "👏",
	"wave":              "👋",
	"pray":              "🙏",
	"muscle":            "💪",
	"ok_hand":           "👌",
	"fire":              "🔥",
	"star":              "⭐",
	"star2":             "🌟",
	"sparkles":          "✨",
	"tada":              "🎉",
	"100":               "💯",
	"warning":           "⚠️",
	"rotating_light":    "🚨",
	"bug":               "🐛",
	"rocket":            "🚀",
	"checkered_flag":    "🏁",
	"white_check_mark":  "✅",
	"heavy_check_mark":  "✔️",
	"x":                 "❌",
	"no_entry":          "⛔",
	"construction":      "🚧",
	"bulb":              "💡",
	"memo":              "📝",
	"pencil2":           "✏️",
	"books":             "📚",
	"book":              "📖",
	"mag":               "🔍",
	"lock":              "🔒",
	"unlock":            "🔓",
	"key":               "🔑",
	"hammer":            "🔨",
	"wrench":            "🔧",
	"gear":              "⚙️",
	"computer":          "💻",
	"calendar":          "📅",
	"email":             "📧",
	"package":           "📦",
	"moneybag":          "💰",
	"coffee":            "☕",
	"beer":              "🍺",
	"pizza":             "🍕",
	"apple":             "🍎",
	"dog":               "🐶",
	"cat":               "🐱",
	"sun":               "☀️",
	"cloud":             "☁️",
	"zap":               "⚡",
	"snowflake":         "❄️",
	"eyes":              "👀",
	"point_right":       "👉",
	"point_left":        "👈",
	"point_up":          "👆",
	"point_down":        "👇",
	"raised_hands":      "🙌",
	"octocat":           "🐙",
	"recycle":           "♻️",
	"hourglass":         "⌛",
	"alarm_clock":       "⏰",
	"globe_with_meridians": "🌐",
}
