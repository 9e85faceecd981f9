package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsphweid/chordprog/constants"
	"github.com/jsphweid/chordprog/midi"
	"github.com/jsphweid/chordprog/mode"
	"github.com/jsphweid/chordprog/model"
	"github.com/jsphweid/chordprog/pitch"
	"github.com/jsphweid/chordprog/progression"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	resolveKey        string
	resolveMode       string
	resolveRelativeTo string
	resolveOctave     int
	resolveEvents     bool
)

func init() {
	resolveCmd.Flags().StringVarP(&resolveKey, "key", "k", constants.DefaultKey, "tonal center, e.g. C, F#, Bb")
	resolveCmd.Flags().StringVarP(&resolveMode, "mode", "m", constants.DefaultMode, "mode the degrees are taken from")
	resolveCmd.Flags().StringVarP(&resolveRelativeTo, "relative-to", "r", "", "mode the numerals are spelled against (defaults to --mode)")
	resolveCmd.Flags().IntVarP(&resolveOctave, "octave", "o", constants.DefaultOctave, "octave of the bass for MIDI keys")
	resolveCmd.Flags().BoolVarP(&resolveEvents, "events", "e", false, "print the note-on and note-off messages of each chord")
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve DEGREE...",
	Short: "Resolves scale degrees into chords",
	Long:  `Builds the diatonic triad on each degree (1-7) of the mode and spells it in the given key.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		degrees := make([]int, 0, len(args))
		for _, arg := range args {
			d, err := strconv.Atoi(arg)
			if err != nil {
				return errors.Wrapf(err, "degree %q", arg)
			}
			degrees = append(degrees, d)
		}

		res, err := Resolve(model.ResolveRequestBody{
			Key:        resolveKey,
			Mode:       resolveMode,
			RelativeTo: resolveRelativeTo,
			Degrees:    degrees,
			Octave:     &resolveOctave,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s (relative to %s)\n", res.Key, res.Mode, res.RelativeTo)
		for _, c := range res.Chords {
			fmt.Fprintf(out, "%-8s %-10s %-16s %s\n", c.Roman, c.Name, strings.Join(c.Notes, "-"), c.Key)
		}
		if resolveEvents {
			return printEvents(cmd, res)
		}
		return nil
	},
}

func printEvents(cmd *cobra.Command, res model.ResolveResponse) error {
	out := cmd.OutOrStdout()
	for _, c := range res.Chords {
		fmt.Fprintf(out, "%s:\n", c.Roman)
		for _, msg := range midi.NoteOnsFor(c.Midi, constants.DefaultChannel, constants.DefaultVelocity) {
			fmt.Fprintf(out, "  %s\n", msg)
		}
		for _, msg := range midi.NoteOffsFor(c.Midi, constants.DefaultChannel) {
			fmt.Fprintf(out, "  %s\n", msg)
		}
	}
	return nil
}

// Resolve builds the progression described by body and spells it in
// body.Key.
func Resolve(body model.ResolveRequestBody) (model.ResolveResponse, error) {
	var res model.ResolveResponse

	key, err := pitch.ParseNote(body.Key)
	if err != nil {
		return res, err
	}
	m, err := mode.Lookup(body.Mode)
	if err != nil {
		return res, err
	}
	relativeTo := m
	if body.RelativeTo != "" {
		if relativeTo, err = mode.Lookup(body.RelativeTo); err != nil {
			return res, err
		}
	}
	octave := constants.DefaultOctave
	if body.Octave != nil {
		octave = *body.Octave
	}

	p, err := progression.New(m, relativeTo, body.Degrees...)
	if err != nil {
		return res, err
	}
	chords, err := p.ChordsIn(key)
	if err != nil {
		return res, err
	}

	res.Key = key.String()
	res.Mode = m.Name()
	res.RelativeTo = relativeTo.Name()
	res.Chords = make([]model.ResolvedChord, 0, len(chords))
	for i, romanChord := range p.Chords() {
		c := chords[i]
		keys, err := midi.Voice(c, octave)
		if err != nil {
			return res, err
		}
		var notes []string
		for _, n := range c.Notes() {
			notes = append(notes, n.String())
		}
		res.Chords = append(res.Chords, model.ResolvedChord{
			Roman: romanChord.String(),
			Name:  c.String(),
			Notes: notes,
			Midi:  keys,
			Key:   midi.ChordKey(keys),
		})
	}
	return res, nil
}
