package util

import "golang.org/x/exp/constraints"

// Mod is the floor modulo: the result always has the sign of m.
func Mod[A constraints.Integer](a A, m A) A {
	r := a % m
	if r != 0 && (r < 0) != (m < 0) {
		r += m
	}
	return r
}
