package hexagram

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/qrzn23/iching/internal/core/casting"
	apperrors "github.com/qrzn23/iching/internal/platform/errors"
)

const (
	// EntryCount is the number of entries a dataset must hold.
	EntryCount = casting.KeyCount
	// MinKingWen and MaxKingWen bound the traditional ordinals.
	MinKingWen = 1
	MaxKingWen = EntryCount
)

// Validate checks entries against the dataset invariants and reports every
// violation it finds in a single ErrDatasetInvalid error.
func Validate(entries []Entry) error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if len(entries) != EntryCount {
		add("expected %d entries, got %d", EntryCount, len(entries))
	}

	keys := make(map[int]int, len(entries))
	ordinals := make(map[int]int, len(entries))
	for i, entry := range entries {
		if !casting.ValidKey(entry.KeyPrimary) {
			add("entry %d: key_primary %d outside [0,%d]", i, entry.KeyPrimary, casting.MaxKey)
		} else if prev, ok := keys[entry.KeyPrimary]; ok {
			add("entry %d: duplicate key_primary %d (first at entry %d)", i, entry.KeyPrimary, prev)
		} else {
			keys[entry.KeyPrimary] = i
		}

		if entry.KingWen < MinKingWen || entry.KingWen > MaxKingWen {
			add("entry %d: king_wen %d outside [%d,%d]", i, entry.KingWen, MinKingWen, MaxKingWen)
		} else if prev, ok := ordinals[entry.KingWen]; ok {
			add("entry %d: duplicate king_wen %d (first at entry %d)", i, entry.KingWen, prev)
		} else {
			ordinals[entry.KingWen] = i
		}

		if strings.TrimSpace(entry.Name) == "" {
			add("entry %d: name is required", i)
		}
		if len(entry.Lines) != casting.LineCount {
			add("entry %d: expected %d lines, got %d", i, casting.LineCount, len(entry.Lines))
		}
		if len(entry.LinesCommentary) != casting.LineCount {
			add("entry %d: expected %d lines_commentary, got %d", i, casting.LineCount, len(entry.LinesCommentary))
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return apperrors.WithMetadata(
		apperrors.CodeDatasetInvalid,
		"invalid dataset: "+strings.Join(problems, "; "),
		map[string]string{"violations": strconv.Itoa(len(problems))},
	)
}
