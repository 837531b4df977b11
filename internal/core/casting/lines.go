package casting

// Traditional line values.
const (
	OldYin    = 6
	YoungYang = 7
	YoungYin  = 8
	OldYang   = 9
)

// Bits holds six line states, 1 for solid (yang) and 0 for broken (yin).
type Bits [LineCount]int

// ChangedValue resolves a moving line into its post-change value.
// Stable lines are returned unchanged.
func ChangedValue(v int) int {
	switch v {
	case OldYin:
		return YoungYang
	case OldYang:
		return YoungYin
	default:
		return v
	}
}

// ApplyChanges resolves every moving line.
func ApplyChanges(lines Lines) Lines {
	var out Lines
	for i, v := range lines {
		out[i] = ChangedValue(v)
	}
	return out
}

// IsMoving reports whether v is an old line.
func IsMoving(v int) bool {
	return v == OldYin || v == OldYang
}

// IsSolid reports whether v is drawn as a solid line as cast.
func IsSolid(v int) bool {
	return v == YoungYang || v == OldYang
}

// PrimaryBits returns the as-cast line states.
func PrimaryBits(lines Lines) Bits {
	var bits Bits
	for i, v := range lines {
		if IsSolid(v) {
			bits[i] = 1
		}
	}
	return bits
}

// ChangedBits returns the line states after resolving moving lines.
func ChangedBits(lines Lines) Bits {
	var bits Bits
	for i, v := range lines {
		if ChangedValue(v) == YoungYang {
			bits[i] = 1
		}
	}
	return bits
}

// ChangingLines returns the ascending positions of moving lines. The result
// is empty, not nil, when no line moves.
func ChangingLines(lines Lines) []int {
	indices := make([]int, 0, LineCount)
	for i, v := range lines {
		if IsMoving(v) {
			indices = append(indices, i)
		}
	}
	return indices
}
