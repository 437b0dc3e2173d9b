package diagfmt

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/xiam/sexpression/lexer"
)

type preview struct {
	line string // source line, without its line break
	pad  string // whitespace that puts a caret under the failing column
}

// previewAt extracts the line holding pos out of src. The padding copies tabs
// and measures every other rune by its display width.
func previewAt(src string, pos lexer.Position, width int) preview {
	off := pos.Offset
	if off > len(src) {
		off = len(src)
	}
	if off < 0 {
		off = 0
	}

	start := strings.LastIndexByte(src[:off], '\n') + 1
	end := strings.IndexByte(src[off:], '\n')
	if end < 0 {
		end = len(src)
	} else {
		end += off
	}

	line := strings.TrimSuffix(src[start:end], "\r")
	head := src[start:off]
	if len(head) > len(line) {
		head = line
	}

	var pad strings.Builder
	for _, r := range head {
		if r == '\t' {
			pad.WriteByte('\t')
			continue
		}
		pad.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}

	if width > 0 && runewidth.StringWidth(line) > width {
		line = runewidth.Truncate(line, width, "...")
	}
	if !utf8.ValidString(line) {
		line = strings.ToValidUTF8(line, "�")
	}

	return preview{line: line, pad: pad.String()}
}
