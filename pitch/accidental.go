package pitch

import "strings"

// Accidental is a signed semitone offset from the natural letter.
type Accidental int

const (
	DoubleFlat  Accidental = -2
	Flat        Accidental = -1
	Natural     Accidental = 0
	Sharp       Accidental = 1
	DoubleSharp Accidental = 2
)

const (
	sharpGlyph      = "♯"
	flatGlyph       = "♭"
	asciiSharpGlyph = "#"
	asciiFlatGlyph  = "b"
)

// Valid reports whether a lies between double flat and double sharp.
func (a Accidental) Valid() bool {
	return a >= DoubleFlat && a <= DoubleSharp
}

func (a Accidental) String() string {
	return a.render(sharpGlyph, flatGlyph)
}

// ASCII renders the accidental with '#' and 'b'.
func (a Accidental) ASCII() string {
	return a.render(asciiSharpGlyph, asciiFlatGlyph)
}

func (a Accidental) render(sharp, flat string) string {
	switch {
	case a > 0:
		return strings.Repeat(sharp, int(a))
	case a < 0:
		return strings.Repeat(flat, int(-a))
	}
	return ""
}
