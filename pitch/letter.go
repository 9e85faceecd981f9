package pitch

import "github.com/jsphweid/chordprog/util"

// Letter is one of the seven natural note names in diatonic order.
type Letter int

const (
	C Letter = iota
	D
	E
	F
	G
	A
	B
)

var letterSemitones = [7]int{0, 2, 4, 5, 7, 9, 11}

var letterNames = [7]string{"C", "D", "E", "F", "G", "A", "B"}

// Semitone is the letter's position above C. Out-of-range letters wrap.
func (l Letter) Semitone() int {
	return letterSemitones[util.Mod(l, 7)]
}

func (l Letter) String() string {
	return letterNames[util.Mod(l, 7)]
}

// NthLetterFrom steps n letters away from l, wrapping around B to C.
func NthLetterFrom(l Letter, n int) Letter {
	return Letter(util.Mod(int(l)+n, 7))
}
