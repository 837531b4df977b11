package hexagram

import apperrors "github.com/qrzn23/iching/internal/platform/errors"

var (
	// ErrDatasetMissing matches errors for an unreadable dataset source.
	ErrDatasetMissing = apperrors.New(apperrors.CodeDatasetMissing, "dataset missing")
	// ErrDatasetMalformed matches errors for undecodable dataset content.
	ErrDatasetMalformed = apperrors.New(apperrors.CodeDatasetMalformed, "dataset malformed")
	// ErrDatasetInvalid matches errors for datasets that break an invariant.
	ErrDatasetInvalid = apperrors.New(apperrors.CodeDatasetInvalid, "dataset invalid")
	// ErrEntryMissing matches errors for a valid key with no entry.
	ErrEntryMissing = apperrors.New(apperrors.CodeEntryMissing, "dataset entry missing")
	// ErrKeyOutOfRange matches errors for keys outside [0,63].
	ErrKeyOutOfRange = apperrors.New(apperrors.CodeKeyOutOfRange, "key out of range")
	// ErrKingWenOutOfRange matches errors for ordinals outside [1,64].
	ErrKingWenOutOfRange = apperrors.New(apperrors.CodeKingWenOutOfRange, "king wen ordinal out of range")
)
