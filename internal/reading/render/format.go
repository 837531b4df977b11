package render

import (
	"fmt"
	"io"
	"strings"

	apperrors "github.com/qrzn23/iching/internal/platform/errors"
	"github.com/qrzn23/iching/internal/reading"
)

// Format selects an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat accepts "text" or "json", case-insensitively. Empty means text.
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", apperrors.WithMetadata(apperrors.CodeUnknownFormat,
			fmt.Sprintf("unknown output format %q", value),
			map[string]string{"format": value})
	}
}

// Reading writes r in format f.
func (f Format) Reading(w io.Writer, r reading.Reading) error {
	if f == FormatJSON {
		return JSON(w, r)
	}
	return Text(w, r)
}

// View writes v in format f.
func (f Format) View(w io.Writer, v reading.View) error {
	if f == FormatJSON {
		return ViewJSON(w, v)
	}
	return ViewText(w, v)
}
