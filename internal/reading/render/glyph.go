package render

import (
	"strings"

	"github.com/qrzn23/iching/internal/core/casting"
)

const (
	solidLine  = "━━━━━━━"
	brokenLine = "━━━ ━━━"
)

// Glyph draws lines top to bottom. Old yang is marked "o" and old yin "x".
func Glyph(lines casting.Lines) string {
	rows := make([]string, 0, casting.LineCount)
	for i := casting.LineCount - 1; i >= 0; i-- {
		rows = append(rows, glyphRow(lines[i]))
	}
	return strings.Join(rows, "\n")
}

func glyphRow(v int) string {
	row := brokenLine
	if casting.IsSolid(v) {
		row = solidLine
	}
	switch v {
	case casting.OldYang:
		row += " o"
	case casting.OldYin:
		row += " x"
	}
	return row
}
