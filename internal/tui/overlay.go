package tui

import (
	"bytes"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

// placeOverlay writes fg over bg with fg's top-left corner at (x, y),
// preserving the styling escape sequences of both frames. Rows of bg
// outside fg's extent pass through untouched.
func placeOverlay(x, y int, fg, bg string) string {
	fgLines := strings.Split(fg, "\n")
	bgLines := strings.Split(bg, "\n")

	var b strings.Builder
	for i, bgLine := range bgLines {
		if i > 0 {
			b.WriteByte('\n')
		}
		if i < y || i >= y+len(fgLines) {
			b.WriteString(bgLine)
			continue
		}

		pos := 0
		if x > 0 {
			left := truncate.String(bgLine, uint(x))
			pos = ansi.PrintableRuneWidth(left)
			b.WriteString(left)
			if pos < x {
				b.WriteString(strings.Repeat(" ", x-pos))
				pos = x
			}
		}

		fgLine := fgLines[i-y]
		b.WriteString(fgLine)
		pos += ansi.PrintableRuneWidth(fgLine)

		right := cutLeft(bgLine, pos)
		bgWidth := ansi.PrintableRuneWidth(bgLine)
		rightWidth := ansi.PrintableRuneWidth(right)
		if rightWidth <= bgWidth-pos {
			b.WriteString(strings.Repeat(" ", bgWidth-rightWidth-pos))
		}
		b.WriteString(right)
	}
	return b.String()
}

// cutLeft drops the first cutWidth printable cells of s, carrying any still
// open escape sequence across the cut so the remainder keeps its styling.
func cutLeft(s string, cutWidth int) string {
	var (
		pos   int
		isSeq bool
		seq   bytes.Buffer
		out   bytes.Buffer
	)
	for _, c := range s {
		var w int
		if c == ansi.Marker || isSeq {
			isSeq = true
			seq.WriteRune(c)
			if ansi.IsTerminator(c) {
				isSeq = false
				if bytes.HasSuffix(seq.Bytes(), []byte("[0m")) {
					seq.Reset()
				}
			}
		} else {
			w = runewidth.RuneWidth(c)
		}

		if pos >= cutWidth {
			if out.Len() == 0 {
				if seq.Len() > 0 {
					out.Write(seq.Bytes())
				}
				// A wide rune straddling the cut leaves a gap.
				if pos-cutWidth > 1 {
					out.WriteByte(' ')
					pos += w
					continue
				}
			}
			out.WriteRune(c)
		}
		pos += w
	}
	return out.String()
}
