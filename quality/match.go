package quality

import "github.com/jsphweid/chordprog/util"

var triadsBySignature = map[[3]int]Quality{
	{0, 4, 7}: Major,
	{0, 3, 7}: Minor,
	{0, 4, 8}: Augmented,
	{0, 3, 6}: Diminished,
}

// MatchTriad finds the triad whose intervals above the root are the given
// offsets. Offsets are measured from the first element and reduced mod 12.
func MatchTriad(offsets [3]int) (Quality, bool) {
	var signature [3]int
	for i := 1; i < 3; i++ {
		signature[i] = util.Mod(offsets[i]-offsets[0], 12)
	}
	q, ok := triadsBySignature[signature]
	return q, ok
}
