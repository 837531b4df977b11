package hexagram

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Entry is one hexagram record.
type Entry struct {
	KeyPrimary      int       `json:"key_primary"`
	KingWen         int       `json:"king_wen"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Judgment        string    `json:"judgment"`
	Image           string    `json:"image"`
	Lines           []string  `json:"lines"`
	LinesCommentary []string  `json:"lines_commentary"`
	Trigrams        *Trigrams `json:"trigrams,omitempty"`
}

// Trigrams holds optional trigram name hints.
type Trigrams struct {
	Lower string `json:"lower"`
	Upper string `json:"upper"`
}

// Title formats the entry as its zero-padded King Wen ordinal and name.
func (e Entry) Title() string {
	return fmt.Sprintf("%02d %s", e.KingWen, strings.TrimSpace(e.Name))
}

// LineCommentary returns the commentary for line position i (0 = bottom),
// or "" when out of range.
func (e Entry) LineCommentary(i int) string {
	if i < 0 || i >= len(e.LinesCommentary) {
		return ""
	}
	return e.LinesCommentary[i]
}

// LineText returns the text for line position i (0 = bottom), or "" when out
// of range.
func (e Entry) LineText(i int) string {
	if i < 0 || i >= len(e.Lines) {
		return ""
	}
	return e.Lines[i]
}

func (e Entry) clone() Entry {
	out := e
	out.Lines = append([]string(nil), e.Lines...)
	out.LinesCommentary = append([]string(nil), e.LinesCommentary...)
	if e.Trigrams != nil {
		t := *e.Trigrams
		out.Trigrams = &t
	}
	return out
}

func (e Entry) normalized() Entry {
	out := e.clone()
	out.Name = norm.NFC.String(out.Name)
	out.Description = norm.NFC.String(out.Description)
	out.Judgment = norm.NFC.String(out.Judgment)
	out.Image = norm.NFC.String(out.Image)
	for i := range out.Lines {
		out.Lines[i] = norm.NFC.String(out.Lines[i])
	}
	for i := range out.LinesCommentary {
		out.LinesCommentary[i] = norm.NFC.String(out.LinesCommentary[i])
	}
	return out
}
