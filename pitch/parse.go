package pitch

import (
	"strings"

	"github.com/pkg/errors"
)

// ParseNote reads a note name such as "C", "F#", "Bb", "E♭" or "Gx".
// Lower-case letters are accepted.
func ParseNote(s string) (Note, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Note{}, errors.Wrap(ErrInvalidNote, "empty")
	}

	var letter Letter
	switch strings.ToUpper(s[:1]) {
	case "C":
		letter = C
	case "D":
		letter = D
	case "E":
		letter = E
	case "F":
		letter = F
	case "G":
		letter = G
	case "A":
		letter = A
	case "B":
		letter = B
	default:
		return Note{}, errors.Wrapf(ErrInvalidNote, "%q", s)
	}

	var accidental Accidental
	for _, r := range s[1:] {
		switch r {
		case '#', '♯':
			accidental++
		case 'b', '♭':
			accidental--
		case 'x', '𝄪':
			accidental += 2
		case '𝄫':
			accidental -= 2
		default:
			return Note{}, errors.Wrapf(ErrInvalidNote, "%q", s)
		}
	}
	if !accidental.Valid() {
		return Note{}, errors.Wrapf(ErrInvalidNote, "%q has more than two accidentals", s)
	}
	return NewNote(letter, accidental), nil
}
