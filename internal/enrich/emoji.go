package enrich

import (
	"github.com/enescakir/emoji"
)

// Emojify replaces :shortcode: markers in post titles and comment text with
// their glyphs. Unknown codes pass through untouched and rendered output
// contains no markers, so re-applying is a no-op.
func Emojify(text string) string {
	return emoji.Parse(text)
}
