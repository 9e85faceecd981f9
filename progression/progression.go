// Package progression keeps a sequence of Roman numeral chords tied to a
// mode and resolves it into concrete chords in any key.
package progression

import (
	"strings"

	"github.com/jsphweid/chordprog/chord"
	"github.com/jsphweid/chordprog/mode"
	"github.com/jsphweid/chordprog/pitch"
	"github.com/jsphweid/chordprog/quality"
	"github.com/jsphweid/chordprog/util"
	"github.com/pkg/errors"
)

var (
	ErrIndexOutOfRange     = errors.New("progression index out of range")
	ErrDoubleAccidentalKey = errors.New("cannot have double accidentals as key")
	ErrNoStandardTriad     = errors.New("degree does not form a standard triad")
)

// Progression is an ordered list of RomanChords. Chords added by degree
// carry the accidental mode[d] - relativeTo[d], so the same chords read
// correctly against either mode.
type Progression struct {
	mode       mode.Mode
	relativeTo mode.Mode
	chords     []chord.RomanChord
}

// New builds a progression from scale degrees of m, spelled relative to
// relativeTo.
func New(m mode.Mode, relativeTo mode.Mode, degrees ...int) (*Progression, error) {
	p := &Progression{mode: m, relativeTo: relativeTo}
	for _, d := range degrees {
		if err := p.AppendDegree(d); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *Progression) Mode() mode.Mode {
	return p.mode
}

// SetMode changes the mode used by later degree insertions. Chords already
// present keep their accidentals.
func (p *Progression) SetMode(m mode.Mode) {
	p.mode = m
}

func (p *Progression) RelativeTo() mode.Mode {
	return p.relativeTo
}

// SetRelativeTo re-expresses every chord and target against m.
func (p *Progression) SetRelativeTo(m mode.Mode) {
	old := p.relativeTo
	delta := func(degree int) int {
		return old.Degree(degree) - m.Degree(degree)
	}
	for i := range p.chords {
		p.chords[i].ShiftAccidentals(delta)
	}
	p.relativeTo = m
}

func (p *Progression) Len() int {
	return len(p.chords)
}

// Chords returns copies of the stored chords.
func (p *Progression) Chords() []chord.RomanChord {
	res := make([]chord.RomanChord, 0, len(p.chords))
	for _, rc := range p.chords {
		res = append(res, rc.Clone())
	}
	return res
}

func (p *Progression) String() string {
	names := make([]string, 0, len(p.chords))
	for _, rc := range p.chords {
		names = append(names, rc.String())
	}
	return "[" + strings.Join(names, ", ") + "]"
}

func (p *Progression) Clone() *Progression {
	res := &Progression{mode: p.mode, relativeTo: p.relativeTo}
	res.chords = p.Chords()
	return res
}

// At returns a copy of the chord at index; negative indexes count from the
// end.
func (p *Progression) At(index int) (chord.RomanChord, error) {
	i, err := p.index(index, len(p.chords)-1)
	if err != nil {
		return chord.RomanChord{}, err
	}
	return p.chords[i].Clone(), nil
}

func (p *Progression) Set(index int, rc chord.RomanChord) error {
	i, err := p.index(index, len(p.chords)-1)
	if err != nil {
		return err
	}
	p.chords[i] = rc.Clone()
	return nil
}

func (p *Progression) Append(rc chord.RomanChord) {
	p.chords = append(p.chords, rc.Clone())
}

// AppendDegree adds the diatonic triad on degree d of the mode.
func (p *Progression) AppendDegree(d int) error {
	rc, err := p.degreeChord(d)
	if err != nil {
		return err
	}
	p.chords = append(p.chords, rc)
	return nil
}

// Insert places rc before index; index may equal Len to append.
func (p *Progression) Insert(index int, rc chord.RomanChord) error {
	i, err := p.index(index, len(p.chords))
	if err != nil {
		return err
	}
	p.insert(i, rc.Clone())
	return nil
}

func (p *Progression) InsertDegree(index int, d int) error {
	i, err := p.index(index, len(p.chords))
	if err != nil {
		return err
	}
	rc, err := p.degreeChord(d)
	if err != nil {
		return err
	}
	p.insert(i, rc)
	return nil
}

// Pop removes and returns the chord at index; -1 is the last chord.
func (p *Progression) Pop(index int) (chord.RomanChord, error) {
	i, err := p.index(index, len(p.chords)-1)
	if err != nil {
		return chord.RomanChord{}, err
	}
	rc := p.chords[i]
	p.chords = append(p.chords[:i:i], p.chords[i+1:]...)
	return rc, nil
}

// Concat returns a new progression with the chords of other after p's.
func (p *Progression) Concat(other *Progression) *Progression {
	res := p.Clone()
	res.Extend(other)
	return res
}

// Extend appends copies of other's chords to p.
func (p *Progression) Extend(other *Progression) {
	p.chords = append(p.chords, other.Chords()...)
}

// Scale spells the relative-to mode on key.
func (p *Progression) Scale(key pitch.Note) []pitch.Note {
	return p.relativeTo.Scale(key)
}

// ChordsIn resolves every chord against key. Keys spelled with a double
// accidental are rejected.
func (p *Progression) ChordsIn(key pitch.Note) ([]chord.Chord, error) {
	if key.Accidental() < pitch.Flat || key.Accidental() > pitch.Sharp {
		return nil, errors.Wrapf(ErrDoubleAccidentalKey, "%s", key)
	}

	chords := make([]chord.Chord, 0, len(p.chords))
	for _, rc := range p.chords {
		chords = append(chords, p.resolve(rc, key))
	}
	return chords, nil
}

func (p *Progression) resolve(rc chord.RomanChord, key pitch.Note) chord.Chord {
	degree := rc.Roman().Degree()
	accidental := int(rc.Roman().Accidental())
	if rc.HasTarget() {
		target := rc.Target().Roman()
		degree += target.Degree() - 1
		accidental += int(target.Accidental())
	}
	degree = util.Mod(degree, 7)
	if degree == 0 {
		degree = 7
	}

	root := pitch.NewNote(key.Letter(), pitch.Natural).Shifted(degree - 1)
	accidental += p.relativeTo.Degree(degree) - (root.PitchClass() - key.PitchClass())
	if accidental > 2 {
		accidental -= 12
	}
	root.SetAccidental(pitch.Accidental(accidental))

	c := chord.New(root, rc.Quality())
	c.SetModifiers(rc.Modifiers())
	c.Invert(rc.Inversion())
	return c
}

// degreeChord infers the triad on degree d from the mode's intervals.
func (p *Progression) degreeChord(d int) (chord.RomanChord, error) {
	roman, err := pitch.NewRoman(d, pitch.Accidental(p.mode.Degree(d)-p.relativeTo.Degree(d)))
	if err != nil {
		return chord.RomanChord{}, err
	}

	q, ok := quality.MatchTriad([3]int{p.mode.Degree(d), p.mode.Degree(d + 2), p.mode.Degree(d + 4)})
	if !ok {
		return chord.RomanChord{}, errors.Wrapf(ErrNoStandardTriad, "degree %d of %s", d, p.mode)
	}
	return chord.NewRoman(roman, q), nil
}

func (p *Progression) insert(i int, rc chord.RomanChord) {
	p.chords = append(p.chords, chord.RomanChord{})
	copy(p.chords[i+1:], p.chords[i:])
	p.chords[i] = rc
}

// index resolves a possibly negative index, accepting 0 through limit.
func (p *Progression) index(index int, limit int) (int, error) {
	i := index
	if i < 0 {
		i += len(p.chords)
	}
	if i < 0 || i > limit {
		return 0, errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", index, len(p.chords))
	}
	return i, nil
}
