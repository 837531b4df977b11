package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/qrzn23/iching/internal/core/casting"
	"github.com/qrzn23/iching/internal/hexagram"
	"github.com/qrzn23/iching/internal/reading"
)

type readingDocument struct {
	Seed          int64           `json:"seed"`
	MethodID      string          `json:"method_id"`
	Lines         casting.Lines   `json:"lines"`
	KeyPrimary    int             `json:"key_primary"`
	KeyChanged    int             `json:"key_changed"`
	ChangingLines []int           `json:"changing_lines"`
	Primary       *hexagram.Entry `json:"primary"`
	Changed       *hexagram.Entry `json:"changed,omitempty"`
}

type viewDocument struct {
	Key   int             `json:"key"`
	Lines casting.Lines   `json:"lines"`
	Entry *hexagram.Entry `json:"entry"`
}

// JSON writes r as an indented JSON document. An unresolved primary entry is
// written as null.
func JSON(w io.Writer, r reading.Reading) error {
	doc := readingDocument{
		Seed:          r.Cast.Seed,
		MethodID:      r.Cast.MethodID,
		Lines:         r.Cast.Lines,
		KeyPrimary:    r.Cast.KeyPrimary,
		KeyChanged:    r.Cast.KeyChanged,
		ChangingLines: r.Cast.ChangingLines,
		Changed:       r.Changed,
	}
	if doc.ChangingLines == nil {
		doc.ChangingLines = []int{}
	}
	if present(r.Primary) {
		primary := r.Primary
		doc.Primary = &primary
	}
	return encode(w, doc)
}

// ViewJSON writes v as an indented JSON document.
func ViewJSON(w io.Writer, v reading.View) error {
	doc := viewDocument{Key: v.Key, Lines: v.Lines}
	if present(v.Entry) {
		entry := v.Entry
		doc.Entry = &entry
	}
	return encode(w, doc)
}

func encode(w io.Writer, doc any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode reading: %w", err)
	}
	return nil
}
