package overlay

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Wrap soft-wraps text to the given cell width, measuring with terminal
// cell widths so wide runes count double. Manual line breaks are kept;
// words longer than the width are split hard. Width below 1 returns the
// manual lines unchanged.
func Wrap(text string, width int) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if width < 1 || runewidth.StringWidth(line) <= width {
			out = append(out, line)
			continue
		}
		out = append(out, wrapLine(line, width)...)
	}
	return out
}

func wrapLine(line string, width int) []string {
	var out []string
	var cur strings.Builder
	curW := 0

	flush := func() {
		out = append(out, cur.String())
		cur.Reset()
		curW = 0
	}

	for _, word := range strings.Fields(line) {
		ww := runewidth.StringWidth(word)
		if curW > 0 && curW+1+ww > width {
			flush()
		}
		if curW > 0 {
			cur.WriteByte(' ')
			curW++
		}
		// Hard-split a word that alone exceeds the width.
		for ww > width {
			head := runewidth.Truncate(word, width-curW, "")
			cur.WriteString(head)
			flush()
			word = word[len(head):]
			ww = runewidth.StringWidth(word)
		}
		cur.WriteString(word)
		curW += ww
	}
	if cur.Len() > 0 || len(out) == 0 {
		flush()
	}
	return out
}
