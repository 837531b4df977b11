package hexagram

import (
	"sort"
	"strconv"

	"github.com/qrzn23/iching/internal/core/casting"
	apperrors "github.com/qrzn23/iching/internal/platform/errors"
)

// Lookup resolves hexagram entries by key or King Wen ordinal.
type Lookup interface {
	ByKey(key int) (Entry, bool)
	ByKingWen(n int) (Entry, bool)
}

// Dataset is an immutable, validated set of 64 entries.
type Dataset struct {
	entries   []Entry
	byKey     map[int]int
	byKingWen map[int]int
}

// NewDataset validates entries and indexes them. The entries are copied, so
// later changes to the input do not reach the dataset.
func NewDataset(entries []Entry) (*Dataset, error) {
	if err := Validate(entries); err != nil {
		return nil, err
	}

	sorted := make([]Entry, len(entries))
	for i, entry := range entries {
		sorted[i] = entry.clone()
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].KingWen < sorted[j].KingWen
	})

	ds := &Dataset{
		entries:   sorted,
		byKey:     make(map[int]int, len(sorted)),
		byKingWen: make(map[int]int, len(sorted)),
	}
	for i, entry := range sorted {
		ds.byKey[entry.KeyPrimary] = i
		ds.byKingWen[entry.KingWen] = i
	}
	return ds, nil
}

// Len returns the number of entries.
func (d *Dataset) Len() int {
	return len(d.entries)
}

// ByKey returns the entry for a 6-bit key.
func (d *Dataset) ByKey(key int) (Entry, bool) {
	i, ok := d.byKey[key]
	if !ok {
		return Entry{}, false
	}
	return d.entries[i].clone(), true
}

// ByKingWen returns the entry for a King Wen ordinal.
func (d *Dataset) ByKingWen(n int) (Entry, bool) {
	i, ok := d.byKingWen[n]
	if !ok {
		return Entry{}, false
	}
	return d.entries[i].clone(), true
}

// Entries returns a copy of all entries ordered by King Wen ordinal.
func (d *Dataset) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	for i, entry := range d.entries {
		out[i] = entry.clone()
	}
	return out
}

// ResolveKey looks key up and treats a miss inside [0,63] as an integrity
// failure rather than an ordinary absence.
func ResolveKey(l Lookup, key int) (Entry, error) {
	if !casting.ValidKey(key) {
		return Entry{}, apperrors.WithMetadata(apperrors.CodeKeyOutOfRange,
			"key "+strconv.Itoa(key)+" outside [0,63]",
			map[string]string{"key": strconv.Itoa(key)})
	}
	entry, ok := l.ByKey(key)
	if !ok {
		return Entry{}, apperrors.WithMetadata(apperrors.CodeEntryMissing,
			"no dataset entry for key "+strconv.Itoa(key),
			map[string]string{"key": strconv.Itoa(key)})
	}
	return entry, nil
}

// ResolveKingWen looks up a King Wen ordinal with the same miss semantics as
// ResolveKey.
func ResolveKingWen(l Lookup, n int) (Entry, error) {
	if n < MinKingWen || n > MaxKingWen {
		return Entry{}, apperrors.WithMetadata(apperrors.CodeKingWenOutOfRange,
			"king wen ordinal "+strconv.Itoa(n)+" outside [1,64]",
			map[string]string{"king_wen": strconv.Itoa(n)})
	}
	entry, ok := l.ByKingWen(n)
	if !ok {
		return Entry{}, apperrors.WithMetadata(apperrors.CodeEntryMissing,
			"no dataset entry for king wen ordinal "+strconv.Itoa(n),
			map[string]string{"king_wen": strconv.Itoa(n)})
	}
	return entry, nil
}
