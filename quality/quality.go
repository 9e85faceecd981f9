// Package quality describes the interval structure of chords.
package quality

import "github.com/jsphweid/chordprog/pitch"

// Quality is a closed set of chord qualities. The zero value is Major.
type Quality int

const (
	Major Quality = iota
	Minor
	Augmented
	Diminished
	Dominant7
	Major7
	Minor7
	HalfDiminished7
	Diminished7
	MinorMajor7
	AugmentedMajor7
	Augmented7
	Ninth
	Eleventh
	Thirteenth
)

type family int

const (
	triad family = iota
	seventh
	extended
)

type descriptor struct {
	name      string
	token     string
	family    family
	intervals []int
}

var descriptors = map[Quality]descriptor{
	Major:           {"Major", "", triad, []int{0, 4, 7}},
	Minor:           {"Minor", "m", triad, []int{0, 3, 7}},
	Augmented:       {"Augmented", "+", triad, []int{0, 4, 8}},
	Diminished:      {"Diminished", "o", triad, []int{0, 3, 6}},
	Dominant7:       {"Dominant7", "", seventh, []int{0, 4, 7, 10}},
	Major7:          {"Major7", "M", seventh, []int{0, 4, 7, 11}},
	Minor7:          {"Minor7", "m", seventh, []int{0, 3, 7, 10}},
	HalfDiminished7: {"HalfDiminished7", "ø", seventh, []int{0, 3, 6, 10}},
	Diminished7:     {"Diminished7", "o", seventh, []int{0, 3, 6, 9}},
	MinorMajor7:     {"MinorMajor7", "mM", seventh, []int{0, 3, 7, 11}},
	AugmentedMajor7: {"AugmentedMajor7", "+M", seventh, []int{0, 4, 8, 11}},
	Augmented7:      {"Augmented7", "+", seventh, []int{0, 4, 8, 10}},
	Ninth:           {"Ninth", "", extended, []int{0, 4, 7, 10, 14}},
	Eleventh:        {"Eleventh", "", extended, []int{0, 4, 7, 10, 14, 17}},
	Thirteenth:      {"Thirteenth", "", extended, []int{0, 4, 7, 10, 14, 17, 21}},
}

// All lists every quality in declaration order.
func All() []Quality {
	res := make([]Quality, 0, len(descriptors))
	for q := Major; q <= Thirteenth; q++ {
		res = append(res, q)
	}
	return res
}

func (q Quality) Valid() bool {
	_, ok := descriptors[q]
	return ok
}

// Name is the Go-style identifier of the quality, e.g. "Dominant7".
func (q Quality) Name() string {
	return descriptors[q].name
}

// String is the token used in chord symbols: "" for major, "m", "+", "o"...
func (q Quality) String() string {
	return descriptors[q].token
}

// Intervals returns the semitones above the root, ascending from 0.
func (q Quality) Intervals() []int {
	intervals := descriptors[q].intervals
	res := make([]int, len(intervals))
	copy(res, intervals)
	return res
}

// Size is the number of notes in the core chord.
func (q Quality) Size() int {
	return len(descriptors[q].intervals)
}

func (q Quality) IsTriad() bool {
	return descriptors[q].family == triad
}

func (q Quality) IsSeventh() bool {
	return descriptors[q].family == seventh
}

func (q Quality) IsExtended() bool {
	return descriptors[q].family == extended
}

// FiguredBass is the inversion figure used in Roman numeral analysis.
func (q Quality) FiguredBass(inversion int) string {
	d := descriptors[q]
	switch d.family {
	case triad:
		switch inversion {
		case 1:
			return "6"
		case 2:
			return "6/4"
		}
		return ""
	case seventh:
		switch inversion {
		case 1:
			return "6/5"
		case 2:
			return "4/3"
		case 3:
			return "4/2"
		}
		return "7"
	}
	// extensions are named by their top interval whatever the inversion
	switch q {
	case Ninth:
		return "9"
	case Eleventh:
		return "11"
	}
	return "13"
}

// BuildCore spells one note per interval, stacking letters in thirds from
// root so no letter is skipped.
func (q Quality) BuildCore(root pitch.Note) []pitch.Note {
	intervals := descriptors[q].intervals
	notes := make([]pitch.Note, 0, len(intervals))
	for i, semitones := range intervals {
		letter := pitch.NthLetterFrom(root.Letter(), i*2)
		notes = append(notes, pitch.NoteRelativeTo(letter, root, semitones))
	}
	return notes
}
