package hexagram

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"os"

	"github.com/qrzn23/iching/internal/hexagram/data"
	apperrors "github.com/qrzn23/iching/internal/platform/errors"
)

// Parse decodes a JSON entry list. Unknown fields are ignored and text is
// normalised to NFC.
func Parse(raw []byte) ([]Entry, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, apperrors.New(apperrors.CodeDatasetMalformed, "invalid dataset JSON: empty input")
	}
	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeDatasetMalformed, "invalid dataset JSON", err)
	}
	for i := range entries {
		entries[i] = entries[i].normalized()
	}
	return entries, nil
}

// Load parses and validates raw JSON into a Dataset.
func Load(raw []byte) (*Dataset, error) {
	entries, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	return NewDataset(entries)
}

// LoadEmbedded loads the packaged dataset.
func LoadEmbedded() (*Dataset, error) {
	return Load(data.IChingJSON)
}

// LoadFile loads a dataset from a JSON file on disk.
func LoadFile(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.WrapWithMetadata(apperrors.CodeDatasetMissing,
			"missing dataset", map[string]string{"path": path}, err)
	}
	return Load(raw)
}

// LoadFS loads a dataset from name inside fsys.
func LoadFS(fsys fs.FS, name string) (*Dataset, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, apperrors.WrapWithMetadata(apperrors.CodeDatasetMissing,
			"missing dataset", map[string]string{"path": name}, err)
	}
	return Load(raw)
}
