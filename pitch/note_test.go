package pitch

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func noteGenerator() *rapid.Generator[Note] {
	return rapid.Custom(func(t *rapid.T) Note {
		letter := Letter(rapid.IntRange(int(C), int(B)).Draw(t, "letter"))
		accidental := Accidental(rapid.IntRange(-2, 2).Draw(t, "accidental"))
		return NewNote(letter, accidental)
	})
}

func TestNthLetterFromWraps(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(E, NthLetterFrom(C, 2))
	assert.Equal(C, NthLetterFrom(B, 1))
	assert.Equal(B, NthLetterFrom(C, -1))
	assert.Equal(A, NthLetterFrom(C, 12))
	assert.Equal(D, NthLetterFrom(D, 7))
}

func TestNoteRendering(t *testing.T) {
	cases := []struct {
		note  Note
		str   string
		ascii string
	}{
		{NewNote(C, Natural), "C", "C"},
		{NewNote(F, Sharp), "F♯", "F#"},
		{NewNote(B, Flat), "B♭", "Bb"},
		{NewNote(G, DoubleSharp), "G♯♯", "G##"},
		{NewNote(E, DoubleFlat), "E♭♭", "Ebb"},
	}

	for _, c := range cases {
		t.Run(c.ascii, func(t *testing.T) {
			assert.Equal(t, c.str, c.note.String())
			assert.Equal(t, c.ascii, c.note.ASCII())
		})
	}
}

func TestPitchClass(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0, NewNote(C, Natural).PitchClass())
	assert.Equal(11, NewNote(C, Flat).PitchClass())
	assert.Equal(0, NewNote(B, Sharp).PitchClass())
	assert.Equal(6, NewNote(G, Flat).PitchClass())
	assert.True(NewNote(F, Sharp).Equal(NewNote(G, Flat)))
	assert.False(NewNote(F, Sharp).Same(NewNote(G, Flat)))
}

func TestTransposeKeepsLetter(t *testing.T) {
	n := NewNote(D, Natural)
	up := n.Transposed(1)

	assert := assert.New(t)
	assert.Equal("D", n.String())
	assert.Equal("D♯", up.String())

	n.Transpose(-2)
	assert.Equal("D♭♭", n.String())
}

func TestShiftKeepsAccidental(t *testing.T) {
	n := NewNote(B, Flat)

	assert := assert.New(t)
	assert.Equal("C♭", n.Shifted(1).String())
	assert.Equal("A♭", n.Shifted(-1).String())

	n.Shift(3)
	assert.Equal("E♭", n.String())
}

func TestNoteRelativeTo(t *testing.T) {
	cases := []struct {
		letter    Letter
		root      Note
		semitones int
		want      string
	}{
		{E, NewNote(C, Natural), 4, "E"},
		{E, NewNote(C, Natural), 3, "E♭"},
		{G, NewNote(E, Flat), 3, "G♭"},
		{A, NewNote(F, Sharp), 4, "A♯"},
		{D, NewNote(B, Natural), 3, "D"},
		{A, NewNote(D, Sharp), 6, "A"},
		{F, NewNote(D, Natural), 4, "F♯"},
		{A, NewNote(C, Natural), 21, "A"},
		{D, NewNote(C, Natural), 14, "D"},
		{C, NewNote(C, Sharp), 0, "C♯"},
	}

	for _, c := range cases {
		name := fmt.Sprintf("%v above %v is %v", c.semitones, c.root, c.want)
		t.Run(name, func(t *testing.T) {
			got := NoteRelativeTo(c.letter, c.root, c.semitones)
			assert.Equal(t, c.want, got.String())
			assert.Equal(t, (c.root.PitchClass()+c.semitones)%12, got.PitchClass())
		})
	}
}

func TestTransposeRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := noteGenerator().Draw(t, "note")
		s := rapid.IntRange(-48, 48).Draw(t, "semitones")

		back := n.Transposed(s).Transposed(-s)
		if !back.Equal(n) || !back.Same(n) {
			t.Fatalf("%v +%d -%d gave %v", n, s, s, back)
		}
	})
}

func TestEnharmonicEqualityIsEquivalence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := noteGenerator().Draw(t, "a")
		b := noteGenerator().Draw(t, "b")
		c := noteGenerator().Draw(t, "c")

		if !a.Equal(a) {
			t.Fatalf("%v not equal to itself", a)
		}
		if a.Equal(b) != b.Equal(a) {
			t.Fatalf("equality of %v and %v is not symmetric", a, b)
		}
		if a.Equal(b) && b.Equal(c) && !a.Equal(c) {
			t.Fatalf("equality of %v, %v, %v is not transitive", a, b, c)
		}
	})
}

func TestNoteRelativeToRespellsEnharmonically(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		root := noteGenerator().Draw(t, "root")
		steps := rapid.IntRange(0, 6).Draw(t, "steps")
		semitones := rapid.IntRange(0, 11).Draw(t, "semitones")

		got := NoteRelativeTo(NthLetterFrom(root.Letter(), steps), root, semitones)
		if got.PitchClass() != (root.PitchClass()+semitones)%12 {
			t.Fatalf("%v spelled %d above %v has pitch class %d", got, semitones, root, got.PitchClass())
		}
	})
}

func TestParseNote(t *testing.T) {
	cases := map[string]string{
		"C":   "C",
		"f#":  "F♯",
		"Bb":  "B♭",
		"E♭":  "E♭",
		"Gx":  "G♯♯",
		"Abb": "A♭♭",
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			n, err := ParseNote(in)
			require.NoError(t, err)
			assert.Equal(t, want, n.String())
		})
	}

	for _, bad := range []string{"", "H", "C#b?", "C###"} {
		_, err := ParseNote(bad)
		assert.ErrorIs(t, err, ErrInvalidNote, bad)
	}
}

func TestOutOfRangeLettersWrap(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(11, Letter(-1).Semitone())
	assert.Equal("D", Letter(8).String())

	n := NewNote(Letter(7), Sharp)
	assert.Equal(C, n.Letter())
	assert.Equal(1, n.PitchClass())

	n.SetLetter(Letter(13))
	assert.Equal(B, n.Letter())
}
