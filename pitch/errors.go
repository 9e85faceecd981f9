package pitch

import "github.com/pkg/errors"

var (
	ErrDegreeOutOfRange = errors.New("degree must be between 1 and 7")
	ErrInvalidNote      = errors.New("invalid note name")
)
