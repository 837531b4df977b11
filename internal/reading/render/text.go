// Package render writes readings for a terminal or for other programs.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/qrzn23/iching/internal/core/casting"
	"github.com/qrzn23/iching/internal/hexagram"
	"github.com/qrzn23/iching/internal/reading"
)

// NoData is printed in place of an entry the reading could not resolve.
const NoData = "No data available."

// Text writes r as plain text.
func Text(w io.Writer, r reading.Reading) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Seed %d (%s)\n\n", r.Cast.Seed, r.Cast.MethodID)
	b.WriteString(Glyph(r.Cast.Lines))
	b.WriteString("\n\n")

	if !present(r.Primary) {
		b.WriteString(NoData)
		b.WriteString("\n")
		return write(w, b.String())
	}
	b.WriteString(r.Primary.Title())
	b.WriteString("\n")
	for _, section := range r.Sections() {
		writeSection(&b, section.Label(), r.SectionText(section))
	}

	if r.Cast.HasChanges() {
		b.WriteString("\nChanging to\n")
		b.WriteString(Glyph(casting.ApplyChanges(r.Cast.Lines)))
		b.WriteString("\n\n")
		if r.Changed == nil || !present(*r.Changed) {
			b.WriteString(NoData)
			b.WriteString("\n")
		} else {
			b.WriteString(r.Changed.Title())
			b.WriteString("\n")
			writeSection(&b, reading.SectionJudgment.Label(), r.Changed.Judgment)
		}
	}
	return write(w, b.String())
}

// ViewText writes a single hexagram as plain text.
func ViewText(w io.Writer, v reading.View) error {
	var b strings.Builder
	b.WriteString(Glyph(v.Lines))
	b.WriteString("\n\n")
	if !present(v.Entry) {
		b.WriteString(NoData)
		b.WriteString("\n")
		return write(w, b.String())
	}
	b.WriteString(v.Entry.Title())
	b.WriteString("\n")
	if t := v.Entry.Trigrams; t != nil {
		fmt.Fprintf(&b, "%s over %s\n", t.Upper, t.Lower)
	}
	for _, section := range v.Sections() {
		writeSection(&b, section.Label(), v.SectionText(section))
	}
	return write(w, b.String())
}

func writeSection(b *strings.Builder, label, text string) {
	fmt.Fprintf(b, "\n%s\n%s\n", label, strings.TrimSpace(text))
}

func present(e hexagram.Entry) bool {
	return e.KingWen != 0
}

func write(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("write reading: %w", err)
	}
	return nil
}
