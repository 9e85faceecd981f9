package chord

import (
	"strings"

	"github.com/jsphweid/chordprog/modifier"
	"github.com/jsphweid/chordprog/pitch"
	"github.com/jsphweid/chordprog/quality"
	"github.com/jsphweid/chordprog/util"
)

// RomanChord is a chord on a scale degree rather than a concrete root. An
// optional target makes it a secondary chord, e.g. V/V.
type RomanChord struct {
	roman     pitch.Roman
	quality   quality.Quality
	modifiers modifier.Set
	inversion int
	target    *RomanChord
}

func NewRoman(roman pitch.Roman, q quality.Quality) RomanChord {
	if !q.Valid() {
		q = quality.Major
	}
	return RomanChord{roman: roman, quality: q}
}

func (rc RomanChord) Roman() pitch.Roman {
	return rc.roman
}

func (rc *RomanChord) SetRoman(roman pitch.Roman) {
	rc.roman = roman
}

func (rc RomanChord) Quality() quality.Quality {
	return rc.quality
}

func (rc *RomanChord) SetQuality(q quality.Quality) {
	if !q.Valid() {
		q = quality.Major
	}
	rc.quality = q
	rc.clampInversion()
}

func (rc RomanChord) Inversion() int {
	return rc.inversion
}

func (rc RomanChord) Modifiers() modifier.Set {
	return rc.modifiers.Clone()
}

// HasTarget reports whether a secondary target is set.
func (rc RomanChord) HasTarget() bool {
	return rc.target != nil
}

// Target is the chord this one resolves to, the tonic triad when unset.
func (rc RomanChord) Target() RomanChord {
	if rc.target == nil {
		return NewRoman(pitch.Tonic(), quality.Major)
	}
	return rc.target.Clone()
}

// SetTarget makes rc a secondary chord of target. A tonic target clears it.
func (rc *RomanChord) SetTarget(target RomanChord) {
	if target.roman.Equal(pitch.Tonic()) {
		rc.target = nil
		return
	}
	t := target.Clone()
	rc.target = &t
}

func (rc *RomanChord) ClearTarget() {
	rc.target = nil
}

// Of returns a copy of rc targeting target, e.g. V.Of(V) is V/V.
func (rc RomanChord) Of(target RomanChord) RomanChord {
	res := rc.Clone()
	res.SetTarget(target)
	return res
}

// ShiftAccidentals adds delta(degree) to the accidental of rc and of its
// target, each looked up by its own degree.
func (rc *RomanChord) ShiftAccidentals(delta func(degree int) int) {
	rc.roman.Transpose(delta(rc.roman.Degree()))
	if rc.target != nil {
		rc.target.roman.Transpose(delta(rc.target.roman.Degree()))
	}
}

func (rc RomanChord) Clone() RomanChord {
	rc.modifiers = rc.modifiers.Clone()
	if rc.target != nil {
		t := rc.target.Clone()
		rc.target = &t
	}
	return rc
}

func (rc RomanChord) String() string {
	numeral := rc.roman.String()
	token := rc.quality.String()

	switch token {
	case "m", "o", "ø":
		numeral = strings.ToLower(numeral)
	}

	var sb strings.Builder
	sb.WriteString(numeral)
	if token != "m" {
		sb.WriteString(token)
	}
	sb.WriteString(rc.quality.FiguredBass(rc.inversion))
	sb.WriteString(rc.modifiers.String())
	if rc.target != nil {
		sb.WriteString("/")
		sb.WriteString(rc.target.String())
	}
	return sb.String()
}

func (rc *RomanChord) Invert(n int) {
	rc.inversion = util.Mod(rc.inversion+n, inversionCeiling(rc.quality, rc.modifiers))
}

func (rc RomanChord) Inverted(n int) RomanChord {
	res := rc.Clone()
	res.Invert(n)
	return res
}

func (rc *RomanChord) Attach(m modifier.Modifier) error {
	if err := rc.modifiers.Attach(m, rc.quality); err != nil {
		return err
	}
	rc.clampInversion()
	return nil
}

func (rc *RomanChord) Detach(m modifier.Modifier) error {
	return rc.modifiers.Detach(m)
}

func (rc RomanChord) With(m modifier.Modifier) (RomanChord, error) {
	res := rc.Clone()
	if err := res.Attach(m); err != nil {
		return rc, err
	}
	return res, nil
}

func (rc RomanChord) Without(m modifier.Modifier) (RomanChord, error) {
	res := rc.Clone()
	if err := res.Detach(m); err != nil {
		return rc, err
	}
	return res, nil
}

// clampInversion keeps the inversion legal once an omission shrinks the
// chord.
func (rc *RomanChord) clampInversion() {
	rc.inversion = util.Mod(rc.inversion, inversionCeiling(rc.quality, rc.modifiers))
}
