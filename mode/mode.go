// Package mode defines diatonic scale patterns and spells scales from them.
package mode

import (
	"sort"
	"strings"

	"github.com/jsphweid/chordprog/pitch"
	"github.com/jsphweid/chordprog/util"
	"github.com/pkg/errors"
)

var (
	ErrUnknownMode = errors.New("unknown mode")
	ErrInvalidMode = errors.New("invalid mode")
)

// Mode is a seven-note scale pattern given as semitones above the tonic.
type Mode struct {
	name    string
	degrees [7]int
}

var (
	Ionian        = Mode{"ionian", [7]int{0, 2, 4, 5, 7, 9, 11}}
	Dorian        = Mode{"dorian", [7]int{0, 2, 3, 5, 7, 9, 10}}
	Phrygian      = Mode{"phrygian", [7]int{0, 1, 3, 5, 7, 8, 10}}
	Lydian        = Mode{"lydian", [7]int{0, 2, 4, 6, 7, 9, 11}}
	Mixolydian    = Mode{"mixolydian", [7]int{0, 2, 4, 5, 7, 9, 10}}
	Aeolian       = Mode{"aeolian", [7]int{0, 2, 3, 5, 7, 8, 10}}
	Locrian       = Mode{"locrian", [7]int{0, 1, 3, 5, 6, 8, 10}}
	HarmonicMinor = Mode{"harmonic-minor", [7]int{0, 2, 3, 5, 7, 8, 11}}
	MelodicMinor  = Mode{"melodic-minor", [7]int{0, 2, 3, 5, 7, 9, 11}}
)

var builtins = []Mode{Ionian, Dorian, Phrygian, Lydian, Mixolydian, Aeolian, Locrian, HarmonicMinor, MelodicMinor}

var aliases = map[string]Mode{
	"major": Ionian,
	"minor": Aeolian,
}

// New defines a custom mode. Degrees must start at 0 and rise strictly
// within one octave.
func New(name string, degrees [7]int) (Mode, error) {
	if degrees[0] != 0 {
		return Mode{}, errors.Wrapf(ErrInvalidMode, "%s: first degree must be 0", name)
	}
	for i := 1; i < 7; i++ {
		if degrees[i] <= degrees[i-1] || degrees[i] > 11 {
			return Mode{}, errors.Wrapf(ErrInvalidMode, "%s: degrees %v must rise within an octave", name, degrees)
		}
	}
	return Mode{name: name, degrees: degrees}, nil
}

// All returns the built-in modes.
func All() []Mode {
	return append([]Mode(nil), builtins...)
}

// Names lists the built-in names and aliases, sorted.
func Names() []string {
	var names []string
	for _, m := range builtins {
		names = append(names, m.name)
	}
	for alias := range aliases {
		names = append(names, alias)
	}
	sort.Strings(names)
	return names
}

// Lookup finds a built-in mode by name, ignoring case.
func Lookup(name string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if m, ok := aliases[key]; ok {
		return m, nil
	}
	for _, m := range builtins {
		if m.name == key {
			return m, nil
		}
	}
	return Mode{}, errors.Wrapf(ErrUnknownMode, "%q", name)
}

func (m Mode) Name() string {
	return m.name
}

func (m Mode) String() string {
	return m.name
}

// Degrees returns the semitone offsets of degrees I through VII.
func (m Mode) Degrees() [7]int {
	return m.degrees
}

// Degree is the semitone offset of the 1-based degree d. Out-of-range
// degrees wrap, so 0 reads as VII.
func (m Mode) Degree(d int) int {
	return m.degrees[util.Mod(d-1, 7)]
}

// Scale spells the seven notes of the mode on key, one per letter.
func (m Mode) Scale(key pitch.Note) []pitch.Note {
	scale := make([]pitch.Note, 7)
	for i := range scale {
		n := key.Shifted(i)
		semitones := util.Mod(m.degrees[i]+key.PitchClass()-n.PitchClass(), 12)
		if semitones > 2 {
			semitones -= 12
		}
		n.Transpose(semitones)
		scale[i] = n
	}
	return scale
}
