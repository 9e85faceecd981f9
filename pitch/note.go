package pitch

import "github.com/jsphweid/chordprog/util"

// Note is a concrete pitch class spelled as a letter plus an accidental.
type Note struct {
	letter     Letter
	accidental Accidental
}

func NewNote(letter Letter, accidental Accidental) Note {
	return Note{letter: NthLetterFrom(letter, 0), accidental: accidental}
}

func (n Note) Letter() Letter {
	return n.letter
}

func (n Note) Accidental() Accidental {
	return n.accidental
}

func (n *Note) SetLetter(letter Letter) {
	n.letter = NthLetterFrom(letter, 0)
}

func (n *Note) SetAccidental(accidental Accidental) {
	n.accidental = accidental
}

// PitchClass is the enharmonic value of the note, 0 through 11.
func (n Note) PitchClass() int {
	return util.Mod(n.letter.Semitone()+int(n.accidental), 12)
}

func (n Note) String() string {
	return n.letter.String() + n.accidental.String()
}

// ASCII renders the note with '#' and 'b' instead of the music glyphs.
func (n Note) ASCII() string {
	return n.letter.String() + n.accidental.ASCII()
}

// Transpose moves the note by semitones, keeping its letter.
func (n *Note) Transpose(semitones int) {
	n.accidental += Accidental(semitones)
}

func (n Note) Transposed(semitones int) Note {
	n.Transpose(semitones)
	return n
}

// Shift moves the letter by steps diatonic letters, keeping the accidental.
func (n *Note) Shift(steps int) {
	n.letter = NthLetterFrom(n.letter, steps)
}

func (n Note) Shifted(steps int) Note {
	n.Shift(steps)
	return n
}

// Equal reports enharmonic equivalence.
func (n Note) Equal(other Note) bool {
	return n.PitchClass() == other.PitchClass()
}

// Same reports identical spelling.
func (n Note) Same(other Note) bool {
	return n.letter == other.letter && n.accidental == other.accidental
}

// NoteRelativeTo spells letter so that it sits semitones above root. The
// accidental never goes beyond a double sharp: anything above is taken an
// octave lower.
func NoteRelativeTo(letter Letter, root Note, semitones int) Note {
	accidental := semitones - util.Mod(letter.Semitone()-root.PitchClass()+int(root.accidental), 12)
	if accidental > 2 {
		accidental -= 12
	}
	return NewNote(letter, Accidental(accidental)+root.accidental)
}
