package reading

import (
	"fmt"
	"strings"

	"github.com/qrzn23/iching/internal/hexagram"
)

// Section is one part of a displayed hexagram.
type Section string

const (
	SectionDescription   Section = "description"
	SectionJudgment      Section = "judgment"
	SectionImage         Section = "image"
	SectionChangingLines Section = "changing_lines"
)

// NoChangingLines is shown when a cast has no moving line.
const NoChangingLines = "No changing lines for this cast."

// Label returns the heading for a section.
func (s Section) Label() string {
	switch s {
	case SectionDescription:
		return "DESCRIPTION"
	case SectionJudgment:
		return "THE JUDGMENT"
	case SectionImage:
		return "THE IMAGE"
	case SectionChangingLines:
		return "CHANGING LINES"
	default:
		return strings.ToUpper(string(s))
	}
}

// Sections lists the sections of r. Changing lines appear only when a line
// moves.
func (r Reading) Sections() []Section {
	sections := []Section{SectionDescription, SectionJudgment, SectionImage}
	if r.Cast.HasChanges() {
		sections = append(sections, SectionChangingLines)
	}
	return sections
}

// SectionText returns the text of section for r.
func (r Reading) SectionText(section Section) string {
	if section == SectionChangingLines {
		return formatChangingLines(r.Primary, r.Cast.ChangingLines)
	}
	return entrySection(r.Primary, section)
}

// Sections lists the sections of a view, which never has moving lines.
func (v View) Sections() []Section {
	return []Section{SectionDescription, SectionJudgment, SectionImage}
}

// SectionText returns the text of section for v.
func (v View) SectionText(section Section) string {
	if section == SectionChangingLines {
		return v.Entry.Description
	}
	return entrySection(v.Entry, section)
}

func entrySection(entry hexagram.Entry, section Section) string {
	switch section {
	case SectionDescription:
		return entry.Description
	case SectionJudgment:
		return entry.Judgment
	case SectionImage:
		return entry.Image
	default:
		return ""
	}
}

func formatChangingLines(entry hexagram.Entry, indices []int) string {
	if len(indices) == 0 {
		return NoChangingLines
	}
	parts := make([]string, 0, len(indices))
	for _, i := range indices {
		parts = append(parts, fmt.Sprintf("Line %d\n%s", i+1, entry.LineCommentary(i)))
	}
	return strings.Join(parts, "\n\n")
}
