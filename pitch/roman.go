package pitch

import (
	"github.com/jsphweid/chordprog/util"
	"github.com/pkg/errors"
)

var numerals = [7]string{"I", "II", "III", "IV", "V", "VI", "VII"}

// Roman is a scale degree with an accidental, independent of any key.
type Roman struct {
	degree     int
	accidental Accidental
}

func NewRoman(degree int, accidental Accidental) (Roman, error) {
	if degree < 1 || degree > 7 {
		return Roman{}, errors.Wrapf(ErrDegreeOutOfRange, "got %d", degree)
	}
	return Roman{degree: degree, accidental: accidental}, nil
}

// MustRoman is like NewRoman but panics on an invalid degree.
func MustRoman(degree int, accidental Accidental) Roman {
	r, err := NewRoman(degree, accidental)
	if err != nil {
		panic(err)
	}
	return r
}

// Tonic is the natural first degree.
func Tonic() Roman {
	return Roman{degree: 1}
}

func (r Roman) Degree() int {
	return r.degree
}

func (r Roman) Accidental() Accidental {
	return r.accidental
}

func (r *Roman) SetAccidental(accidental Accidental) {
	r.accidental = accidental
}

// PitchClass mixes the ordinal degree with semitones. Progression
// resolution depends on this exact value.
func (r Roman) PitchClass() int {
	return util.Mod(r.degree+int(r.accidental), 12)
}

func (r Roman) String() string {
	if r.degree < 1 || r.degree > 7 {
		return "?"
	}
	return numerals[r.degree-1] + r.accidental.String()
}

func (r *Roman) Transpose(semitones int) {
	r.accidental += Accidental(semitones)
}

func (r Roman) Transposed(semitones int) Roman {
	r.Transpose(semitones)
	return r
}

// Shift moves the degree by steps, wrapping VII to I.
func (r *Roman) Shift(steps int) {
	r.degree = util.Mod(r.degree-1+steps, 7) + 1
}

func (r Roman) Shifted(steps int) Roman {
	r.Shift(steps)
	return r
}

func (r Roman) Equal(other Roman) bool {
	return r.PitchClass() == other.PitchClass()
}
