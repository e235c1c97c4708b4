package chat

import "regexp"

// shortcodePattern matches :name: tokens. Unknown names are left alone so a
// literal ":something:" survives.
var shortcodePattern = regexp.MustCompile(`:([a-z0-9_+-]+):`)

var shortcodes = map[string]string{
	"smile":      "😄",
	"grin":       "😁",
	"joy":        "😂",
	"wink":       "😉",
	"cry":        "😢",
	"thinking":   "🤔",
	"eyes":       "👀",
	"heart":      "❤️",
	"fire":       "🔥",
	"tada":       "🎉",
	"clap":       "👏",
	"wave":       "👋",
	"ok":         "👌",
	"pray":       "🙏",
	"rocket":     "🚀",
	"thumbsup":   "👍",
	"thumbsdown": "👎",
	"+1":         "👍",
	"-1":         "👎",
}

// SubstituteShortcodes replaces known :shortcode: tokens with their emoji.
// Emoji output never contains a shortcode, so running the substitution on
// already substituted text is a no-op.
func SubstituteShortcodes(text string) string {
	return shortcodePattern.ReplaceAllStringFunc(text, func(token string) string {
		name := token[1 : len(token)-1]
		if emoji, ok := shortcodes[name]; ok {
			return emoji
		}
		return token
	})
}
