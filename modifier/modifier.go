// Package modifier holds the transformations that add, alter or omit a
// single chord tone, and the ordered set a chord keeps them in.
package modifier

import (
	"github.com/jsphweid/chordprog/pitch"
	"github.com/jsphweid/chordprog/quality"
)

// Modifier is a data record: a display token, a sort priority, the tokens
// it cannot coexist with, the qualities it applies to and the note
// transformation itself. Two modifiers with the same token are the same
// modifier.
type Modifier struct {
	token     string
	priority  int
	conflicts []string
	omission  bool
	accepts   func(q quality.Quality) bool
	modify    func(root pitch.Note, notes []pitch.Note) []pitch.Note
}

// chord factors located by their stacked-thirds letter distance from root
const (
	third = 2
	fifth = 4
)

var (
	Sus2 = Modifier{
		token:     "sus2",
		priority:  1,
		conflicts: []string{"sus4", "no3"},
		accepts:   notExtended,
		modify:    replaceFactor(third, 1, 2),
	}
	Sus4 = Modifier{
		token:     "sus4",
		priority:  2,
		conflicts: []string{"sus2", "no3"},
		accepts:   notExtended,
		modify:    replaceFactor(third, 3, 5),
	}
	Flat5 = Modifier{
		token:     "b5",
		priority:  3,
		conflicts: []string{"#5", "no5"},
		accepts:   hasPerfectFifth,
		modify:    replaceFactor(fifth, fifth, 6),
	}
	Sharp5 = Modifier{
		token:     "#5",
		priority:  4,
		conflicts: []string{"b5", "no5"},
		accepts:   hasPerfectFifth,
		modify:    replaceFactor(fifth, fifth, 8),
	}
	No3 = Modifier{
		token:     "no3",
		priority:  9,
		conflicts: []string{"sus2", "sus4"},
		omission:  true,
		accepts:   anyQuality,
		modify:    removeFactor(third),
	}
	No5 = Modifier{
		token:     "no5",
		priority:  10,
		conflicts: []string{"b5", "#5"},
		omission:  true,
		accepts:   anyQuality,
		modify:    removeFactor(fifth),
	}
)

// All lists the known modifiers in priority order.
func All() []Modifier {
	return []Modifier{Sus2, Sus4, Flat5, Sharp5, No3, No5}
}

// Lookup finds a modifier by its token.
func Lookup(token string) (Modifier, bool) {
	for _, m := range All() {
		if m.token == token {
			return m, true
		}
	}
	return Modifier{}, false
}

func (m Modifier) String() string {
	return m.token
}

func (m Modifier) Priority() int {
	return m.priority
}

// Omission reports whether the modifier removes a note from the chord.
func (m Modifier) Omission() bool {
	return m.omission
}

func (m Modifier) Is(other Modifier) bool {
	return m.token == other.token
}

// CompatibleWithQuality reports whether m may be attached to a chord of q.
func (m Modifier) CompatibleWithQuality(q quality.Quality) bool {
	if m.accepts == nil {
		return true
	}
	return m.accepts(q)
}

// CompatibleWith reports whether other may stay attached once m is added.
func (m Modifier) CompatibleWith(other Modifier) bool {
	for _, token := range m.conflicts {
		if other.token == token {
			return false
		}
	}
	return true
}

// Modify returns a new note list with m applied. notes is left untouched.
func (m Modifier) Modify(root pitch.Note, notes []pitch.Note) []pitch.Note {
	if m.modify == nil {
		return append([]pitch.Note(nil), notes...)
	}
	return m.modify(root, notes)
}

func anyQuality(quality.Quality) bool {
	return true
}

func notExtended(q quality.Quality) bool {
	return !q.IsExtended()
}

func hasPerfectFifth(q quality.Quality) bool {
	intervals := q.Intervals()
	return len(intervals) > 2 && intervals[2] == 7
}

func factorIndex(root pitch.Note, notes []pitch.Note, factor int) int {
	letter := pitch.NthLetterFrom(root.Letter(), factor)
	for i, n := range notes {
		if i > 0 && n.Letter() == letter {
			return i
		}
	}
	return -1
}

func removeFactor(factor int) func(pitch.Note, []pitch.Note) []pitch.Note {
	return func(root pitch.Note, notes []pitch.Note) []pitch.Note {
		res := make([]pitch.Note, 0, len(notes))
		idx := factorIndex(root, notes, factor)
		for i, n := range notes {
			if i != idx {
				res = append(res, n)
			}
		}
		return res
	}
}

// replaceFactor swaps the chord tone found at factor for the note spelled
// steps letters above root and semitones above it.
func replaceFactor(factor int, steps int, semitones int) func(pitch.Note, []pitch.Note) []pitch.Note {
	return func(root pitch.Note, notes []pitch.Note) []pitch.Note {
		res := append([]pitch.Note(nil), notes...)
		idx := factorIndex(root, res, factor)
		if idx < 0 {
			return res
		}
		res[idx] = pitch.NoteRelativeTo(pitch.NthLetterFrom(root.Letter(), steps), root, semitones)
		return res
	}
}
