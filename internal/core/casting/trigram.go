package casting

import (
	"fmt"
	"strings"
)

// Trigram is one of the eight three-line figures. Its value packs the three
// lines bottom-first, the same way Key packs a hexagram.
type Trigram int

const (
	Earth    Trigram = 0 // ☷ 000
	Thunder  Trigram = 1 // ☳ 100
	Water    Trigram = 2 // ☵ 010
	Lake     Trigram = 3 // ☱ 110
	Mountain Trigram = 4 // ☶ 001
	Fire     Trigram = 5 // ☲ 101
	Wind     Trigram = 6 // ☴ 011
	Heaven   Trigram = 7 // ☰ 111
)

// Trigrams lists the eight trigrams in the order used for menus.
var Trigrams = []Trigram{Heaven, Earth, Thunder, Water, Lake, Mountain, Fire, Wind}

var trigramNames = map[Trigram]string{
	Earth:    "Earth",
	Thunder:  "Thunder",
	Water:    "Water",
	Lake:     "Lake",
	Mountain: "Mountain",
	Fire:     "Fire",
	Wind:     "Wind",
	Heaven:   "Heaven",
}

// String returns the English name of the trigram.
func (t Trigram) String() string {
	if name, ok := trigramNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Trigram(%d)", int(t))
}

// TrigramByName resolves a trigram by its case-insensitive English name.
func TrigramByName(name string) (Trigram, bool) {
	name = strings.TrimSpace(name)
	for t, n := range trigramNames {
		if strings.EqualFold(n, name) {
			return t, true
		}
	}
	return 0, false
}

// Compose builds a hexagram key with lower as lines 0-2 and upper as lines 3-5.
func Compose(lower, upper Trigram) int {
	return int(lower&7) | int(upper&7)<<3
}

// Split returns the lower and upper trigrams of key.
func Split(key int) (lower, upper Trigram) {
	return Trigram(key & 7), Trigram((key >> 3) & 7)
}
