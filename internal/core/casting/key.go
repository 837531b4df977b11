package casting

const (
	// KeyCount is the size of the hexagram key space.
	KeyCount = 1 << LineCount
	// MaxKey is the largest valid key.
	MaxKey = KeyCount - 1
)

// Key packs line states into a 6-bit key, line i at bit i. Each element is
// masked to its lowest bit first, so out-of-range inputs never widen the key.
func Key(bits Bits) int {
	key := 0
	for i, b := range bits {
		key |= (b & 1) << i
	}
	return key
}

// Unpack reverses Key. Only the low six bits of key are read.
func Unpack(key int) Bits {
	var bits Bits
	for i := range bits {
		bits[i] = (key >> i) & 1
	}
	return bits
}

// Complement flips every line of key.
func Complement(key int) int {
	return MaxKey - (key & MaxKey)
}

// ValidKey reports whether key lies in [0, MaxKey].
func ValidKey(key int) bool {
	return key >= 0 && key <= MaxKey
}

// LinesFromKey returns the stable (non-moving) lines for key.
func LinesFromKey(key int) Lines {
	var lines Lines
	for i, b := range Unpack(key) {
		if b == 1 {
			lines[i] = YoungYang
		} else {
			lines[i] = YoungYin
		}
	}
	return lines
}
