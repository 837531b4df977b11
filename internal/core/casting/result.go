package casting

// Result bundles a cast with its derived keys. It carries no reference to
// the hexagram dataset; entries are resolved by key.
type Result struct {
	Seed          int64  `json:"seed"`
	MethodID      string `json:"method_id"`
	Lines         Lines  `json:"lines"`
	KeyPrimary    int    `json:"key_primary"`
	KeyChanged    int    `json:"key_changed"`
	ChangingLines []int  `json:"changing_lines"`
}

// Cast runs the three-coin method for seed and derives both keys.
func Cast(seed int64) Result {
	return FromLines(seed, CastCoins3(seed))
}

// FromLines derives keys and moving lines for already-cast lines.
func FromLines(seed int64, lines Lines) Result {
	return Result{
		Seed:          seed,
		MethodID:      MethodCoins3,
		Lines:         lines,
		KeyPrimary:    Key(PrimaryBits(lines)),
		KeyChanged:    Key(ChangedBits(lines)),
		ChangingLines: ChangingLines(lines),
	}
}

// HasChanges reports whether any line moves.
func (r Result) HasChanges() bool {
	return len(r.ChangingLines) > 0
}
