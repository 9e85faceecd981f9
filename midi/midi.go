// Package midi turns chords into MIDI key numbers and note messages. It
// never opens ports or files.
package midi

import (
	"fmt"
	"sort"

	"github.com/jsphweid/chordprog/chord"
	"github.com/jsphweid/chordprog/pitch"
	"github.com/pkg/errors"
	gomidi "gitlab.com/gomidi/midi/v2"
)

var ErrKeyOutOfRange = errors.New("voicing does not fit the MIDI key range")

// Key is the MIDI key of n in octave, where C4 is 60. Accidentals may cross
// the octave: Cb4 is 59.
func Key(n pitch.Note, octave int) int {
	return 12*(octave+1) + n.Letter().Semitone() + int(n.Accidental())
}

// Voice stacks the chord from its bass in octave, each note placed on the
// lowest key above the previous one.
func Voice(c chord.Chord, octave int) ([]uint8, error) {
	notes := c.Notes()
	keys := make([]uint8, 0, len(notes))

	prev := -1
	for i, n := range notes {
		key := Key(n, octave)
		if i > 0 {
			for key <= prev {
				key += 12
			}
			for key-12 > prev {
				key -= 12
			}
		}
		if key < 0 || key > 127 {
			return nil, errors.Wrapf(ErrKeyOutOfRange, "%s in octave %d", c, octave)
		}
		keys = append(keys, uint8(key))
		prev = key
	}
	return keys, nil
}

// NoteOns returns one note-on message per voiced key.
func NoteOns(c chord.Chord, octave int, channel uint8, velocity uint8) ([]gomidi.Message, error) {
	keys, err := Voice(c, octave)
	if err != nil {
		return nil, err
	}
	return NoteOnsFor(keys, channel, velocity), nil
}

// NoteOnsFor returns one note-on message per key.
func NoteOnsFor(keys []uint8, channel uint8, velocity uint8) []gomidi.Message {
	msgs := make([]gomidi.Message, 0, len(keys))
	for _, key := range keys {
		msgs = append(msgs, gomidi.NoteOn(channel, key, velocity))
	}
	return msgs
}

// NoteOffs returns the matching note-off messages.
func NoteOffs(c chord.Chord, octave int, channel uint8) ([]gomidi.Message, error) {
	keys, err := Voice(c, octave)
	if err != nil {
		return nil, err
	}
	return NoteOffsFor(keys, channel), nil
}

func NoteOffsFor(keys []uint8, channel uint8) []gomidi.Message {
	msgs := make([]gomidi.Message, 0, len(keys))
	for _, key := range keys {
		msgs = append(msgs, gomidi.NoteOff(channel, key))
	}
	return msgs
}

// ChordKey joins sorted keys with '-', e.g. "60-64-67". keys is not
// modified.
func ChordKey(keys []uint8) string {
	sorted := append([]uint8(nil), keys...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	var res string
	for i, key := range sorted {
		res += fmt.Sprintf("%v", key)
		if i < len(sorted)-1 {
			res += "-"
		}
	}
	return res
}
