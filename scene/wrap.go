package scene

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Wrap breaks s into lines at most width characters wide, counting
// grapheme clusters by their monospace width. Words longer than width are
// split. A width of zero or less only breaks on newlines.
func Wrap(s string, width int) []string {
	paragraphs := strings.Split(s, "\n")
	if width <= 0 {
		return paragraphs
	}

	var lines []string
	for _, para := range paragraphs {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		var line strings.Builder
		lineWidth := 0
		flush := func() {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		for _, word := range words {
			w := uniseg.StringWidth(word)
			if lineWidth > 0 && lineWidth+1+w <= width {
				line.WriteByte(' ')
				line.WriteString(word)
				lineWidth += 1 + w
				continue
			}
			if lineWidth > 0 {
				flush()
			}
			if w <= width {
				line.WriteString(word)
				lineWidth = w
				continue
			}
			// Hard-break the long word on grapheme boundaries.
			g := uniseg.NewGraphemes(word)
			for g.Next() {
				cw := g.Width()
				if lineWidth > 0 && lineWidth+cw > width {
					flush()
				}
				line.WriteString(g.Str())
				lineWidth += cw
			}
		}
		if lineWidth > 0 {
			flush()
		}
	}
	return lines
}

// TextWidth returns the monospace width of the widest line of s.
func TextWidth(lines []string) int {
	widest := 0
	for _, l := range lines {
		if w := uniseg.StringWidth(l); w > widest {
			widest = w
		}
	}
	return widest
}
