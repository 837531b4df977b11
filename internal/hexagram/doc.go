// Package hexagram loads, validates and serves the 64-entry hexagram dataset.
//
// A Dataset is built once at startup from a parsed entry list and is never
// mutated afterwards, so it can be shared by concurrent readers without
// locking. Construction rejects any dataset that breaks the key space
// invariants: exactly 64 entries, keys covering [0,63] once each, King Wen
// ordinals covering [1,64] once each, and six texts for every line list.
//
// # Error Types
//
//   - ErrDatasetMissing: the dataset source could not be read.
//   - ErrDatasetMalformed: the dataset is not valid JSON for an entry list.
//   - ErrDatasetInvalid: the entries break a dataset invariant.
//   - ErrEntryMissing: a valid key resolved to no entry.
package hexagram
