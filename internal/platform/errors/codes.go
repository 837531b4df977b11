package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Dataset errors
	CodeDatasetMissing   Code = "DATASET_MISSING"
	CodeDatasetMalformed Code = "DATASET_MALFORMED"
	CodeDatasetInvalid   Code = "DATASET_INVALID"

	// Lookup errors
	CodeEntryMissing      Code = "DATASET_ENTRY_MISSING"
	CodeKeyOutOfRange     Code = "KEY_OUT_OF_RANGE"
	CodeKingWenOutOfRange Code = "KING_WEN_OUT_OF_RANGE"

	// Input errors
	CodeUnknownTrigram Code = "UNKNOWN_TRIGRAM"
	CodeUnknownFormat  Code = "UNKNOWN_FORMAT"

	// Storage errors
	CodeStorageUnavailable Code = "STORAGE_UNAVAILABLE"
)

// Class groups codes by how callers must react to them.
type Class string

const (
	// ClassConfiguration errors are fatal at startup.
	ClassConfiguration Class = "configuration"
	// ClassIntegrity errors mean a valid key has no dataset entry.
	ClassIntegrity Class = "integrity"
	// ClassInput errors come from caller-supplied values.
	ClassInput Class = "input"
	// ClassInternal covers everything else.
	ClassInternal Class = "internal"
)

// Class maps a code to its class.
func (c Code) Class() Class {
	switch c {
	case CodeDatasetMissing,
		CodeDatasetMalformed,
		CodeDatasetInvalid,
		CodeStorageUnavailable:
		return ClassConfiguration

	case CodeEntryMissing:
		return ClassIntegrity

	case CodeKeyOutOfRange,
		CodeKingWenOutOfRange,
		CodeUnknownTrigram,
		CodeUnknownFormat:
		return ClassInput

	default:
		return ClassInternal
	}
}
