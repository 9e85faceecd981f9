package modifier

import (
	"sort"
	"strings"

	"github.com/jsphweid/chordprog/pitch"
	"github.com/jsphweid/chordprog/quality"
	"github.com/pkg/errors"
)

var (
	ErrIncompatibleModifier = errors.New("modifier is incompatible with quality")
	ErrModifierNotFound     = errors.New("modifier not attached")
)

// Set is a priority-ordered list of distinct modifiers. The zero value is an
// empty set ready to use.
type Set struct {
	mods []Modifier
}

func NewSet(mods ...Modifier) Set {
	var s Set
	for _, m := range mods {
		s.add(m)
	}
	return s
}

func (s Set) Len() int {
	return len(s.mods)
}

// List returns the modifiers in ascending priority.
func (s Set) List() []Modifier {
	return append([]Modifier(nil), s.mods...)
}

func (s Set) Contains(m Modifier) bool {
	return s.index(m) >= 0
}

// Omissions counts the attached modifiers that remove a note.
func (s Set) Omissions() int {
	var n int
	for _, m := range s.mods {
		if m.omission {
			n++
		}
	}
	return n
}

func (s Set) Clone() Set {
	return Set{mods: s.List()}
}

func (s Set) String() string {
	var sb strings.Builder
	for _, m := range s.mods {
		sb.WriteString(m.token)
	}
	return sb.String()
}

// Attach adds m for a chord of quality q. Modifiers m conflicts with are
// evicted. Nothing changes when m rejects q.
func (s *Set) Attach(m Modifier, q quality.Quality) error {
	if !m.CompatibleWithQuality(q) {
		return errors.Wrapf(ErrIncompatibleModifier, "cannot apply %s to %s", m, q.Name())
	}
	s.add(m)
	return nil
}

// Detach removes m, failing if it is not attached.
func (s *Set) Detach(m Modifier) error {
	idx := s.index(m)
	if idx < 0 {
		return errors.Wrapf(ErrModifierNotFound, "%s", m)
	}
	s.mods = append(s.mods[:idx:idx], s.mods[idx+1:]...)
	return nil
}

// Apply runs every modifier over notes in priority order.
func (s Set) Apply(root pitch.Note, notes []pitch.Note) []pitch.Note {
	res := append([]pitch.Note(nil), notes...)
	for _, m := range s.mods {
		res = m.Modify(root, res)
	}
	return res
}

func (s *Set) add(m Modifier) {
	mods := make([]Modifier, 0, len(s.mods)+1)
	if s.index(m) < 0 {
		mods = append(mods, m)
	}
	for _, existing := range s.mods {
		if m.CompatibleWith(existing) {
			mods = append(mods, existing)
		}
	}
	sort.SliceStable(mods, func(i, j int) bool {
		return mods[i].priority < mods[j].priority
	})
	s.mods = mods
}

func (s Set) index(m Modifier) int {
	for i, existing := range s.mods {
		if existing.Is(m) {
			return i
		}
	}
	return -1
}
