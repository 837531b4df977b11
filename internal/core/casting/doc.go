// Package casting simulates the three-coin I Ching cast and encodes its lines.
//
// # Line values
//
// Each line is the sum of three coins worth 2 or 3, giving the traditional
// values 6 (old yin), 7 (young yang), 8 (young yin) and 9 (old yang). Old
// lines are moving: they flip polarity to form the changed hexagram.
//
// # Keys
//
// Six line states pack into a 6-bit key with line 0 (the bottom line) as the
// least significant bit. Keys index the hexagram dataset; the King Wen
// ordinal is a separate numbering carried by the dataset itself.
//
// # Determinism
//
// CastCoins3 consumes exactly DrawsPerCast generator draws in a fixed order,
// so the same seed always reproduces the same Lines.
package casting
