// Package chord builds concrete chords from a root note and quality, and
// their key-independent Roman numeral counterparts.
package chord

import (
	"strings"

	"github.com/jsphweid/chordprog/modifier"
	"github.com/jsphweid/chordprog/pitch"
	"github.com/jsphweid/chordprog/quality"
	"github.com/jsphweid/chordprog/util"
	"github.com/pkg/errors"
)

var ErrNoteNotInChord = errors.New("note not in chord")

// Chord is a root, a quality, attached modifiers and an inversion. Its notes
// are derived from those and recomputed after every change.
type Chord struct {
	root      pitch.Note
	quality   quality.Quality
	modifiers modifier.Set
	inversion int
	notes     []pitch.Note
}

func New(root pitch.Note, q quality.Quality) Chord {
	c := Chord{root: root, quality: q}
	c.calculateNotes()
	return c
}

func (c Chord) Root() pitch.Note {
	return c.root
}

func (c Chord) Quality() quality.Quality {
	return c.quality
}

func (c Chord) Inversion() int {
	return c.inversion
}

func (c Chord) Modifiers() modifier.Set {
	return c.modifiers.Clone()
}

// Notes returns the chord tones from the bass up.
func (c Chord) Notes() []pitch.Note {
	return append([]pitch.Note(nil), c.notes...)
}

// Bass is the lowest note of the current inversion.
func (c Chord) Bass() pitch.Note {
	return c.notes[0]
}

// NoteString joins the notes with '-', e.g. "E-G-C".
func (c Chord) NoteString() string {
	names := make([]string, 0, len(c.notes))
	for _, n := range c.notes {
		names = append(names, n.String())
	}
	return strings.Join(names, "-")
}

func (c Chord) String() string {
	var sb strings.Builder
	sb.WriteString(c.root.String())
	sb.WriteString(c.quality.String())
	sb.WriteString(c.quality.FiguredBass(0))
	sb.WriteString(c.modifiers.String())
	if c.inversion != 0 {
		sb.WriteString("/")
		sb.WriteString(c.notes[0].String())
	}
	return sb.String()
}

// Clone returns a chord sharing no state with c.
func (c Chord) Clone() Chord {
	c.modifiers = c.modifiers.Clone()
	c.notes = append([]pitch.Note(nil), c.notes...)
	return c
}

// Equal compares the notes in order, enharmonically.
func (c Chord) Equal(other Chord) bool {
	if len(c.notes) != len(other.notes) {
		return false
	}
	for i := range c.notes {
		if !c.notes[i].Equal(other.notes[i]) {
			return false
		}
	}
	return true
}

func (c *Chord) SetRoot(root pitch.Note) {
	c.root = root
	c.calculateNotes()
}

func (c *Chord) SetQuality(q quality.Quality) {
	c.quality = q
	c.calculateNotes()
}

// SetModifiers replaces the modifier set with a copy of mods.
func (c *Chord) SetModifiers(mods modifier.Set) {
	c.modifiers = mods.Clone()
	c.calculateNotes()
}

// Attach adds m, evicting attached modifiers that conflict with it.
func (c *Chord) Attach(m modifier.Modifier) error {
	if err := c.modifiers.Attach(m, c.quality); err != nil {
		return err
	}
	c.calculateNotes()
	return nil
}

func (c *Chord) Detach(m modifier.Modifier) error {
	if err := c.modifiers.Detach(m); err != nil {
		return err
	}
	c.calculateNotes()
	return nil
}

// With returns a copy of c with m attached.
func (c Chord) With(m modifier.Modifier) (Chord, error) {
	res := c.Clone()
	if err := res.Attach(m); err != nil {
		return c, err
	}
	return res, nil
}

// Without returns a copy of c with m detached.
func (c Chord) Without(m modifier.Modifier) (Chord, error) {
	res := c.Clone()
	if err := res.Detach(m); err != nil {
		return c, err
	}
	return res, nil
}

// Invert rotates the chord by n inversions; negative n rotates downwards.
func (c *Chord) Invert(n int) {
	c.inversion = util.Mod(c.inversion+n, inversionCeiling(c.quality, c.modifiers))
	c.calculateNotes()
}

func (c Chord) Inverted(n int) Chord {
	res := c.Clone()
	res.Invert(n)
	return res
}

// SetBass rotates the chord until bass, spelled exactly, is the lowest
// note. c is unchanged when bass is not a chord tone.
func (c *Chord) SetBass(bass pitch.Note) error {
	res, err := c.Over(bass)
	if err != nil {
		return err
	}
	*c = res
	return nil
}

// Over returns the slash chord c/bass.
func (c Chord) Over(bass pitch.Note) (Chord, error) {
	res := c.Clone()
	for i := 0; i < len(res.notes); i++ {
		if res.notes[0].Same(bass) {
			return res, nil
		}
		res.Invert(1)
	}
	return c, errors.Wrapf(ErrNoteNotInChord, "%s is not in %s", bass, c)
}

// calculateNotes builds the core chord (major for an unknown quality), applies the modifiers in priority
// order, then rotates the result by the inversion.
func (c *Chord) calculateNotes() {
	if !c.quality.Valid() {
		c.quality = quality.Major
	}
	notes := c.modifiers.Apply(c.root, c.quality.BuildCore(c.root))

	// a minor triad that lost its third, or anything reduced to the root
	// alone, is reported as major
	lostThird := len(notes) >= 2 && notes[1].Letter() != pitch.NthLetterFrom(notes[0].Letter(), 2)
	if (c.quality == quality.Minor && lostThird) || len(notes) == 1 {
		c.quality = quality.Major
	}

	c.inversion = util.Mod(c.inversion, len(notes))
	c.notes = append(notes[c.inversion:len(notes):len(notes)], notes[:c.inversion]...)
}

// inversionCeiling is the number of distinct inversions: the core size
// less one for each omitted tone.
func inversionCeiling(q quality.Quality, mods modifier.Set) int {
	n := q.Size() - mods.Omissions()
	if n < 1 {
		return 1
	}
	return n
}
