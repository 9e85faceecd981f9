package chord

import (
	"testing"

	"github.com/jsphweid/chordprog/modifier"
	"github.com/jsphweid/chordprog/pitch"
	"github.com/jsphweid/chordprog/quality"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var (
	noteC = pitch.NewNote(pitch.C, pitch.Natural)
	noteE = pitch.NewNote(pitch.E, pitch.Natural)
	noteF = pitch.NewNote(pitch.F, pitch.Natural)
	noteG = pitch.NewNote(pitch.G, pitch.Natural)
)

func chordGenerator() *rapid.Generator[Chord] {
	return rapid.Custom(func(t *rapid.T) Chord {
		root := pitch.NewNote(
			pitch.Letter(rapid.IntRange(0, 6).Draw(t, "letter")),
			pitch.Accidental(rapid.IntRange(-1, 1).Draw(t, "accidental")),
		)
		c := New(root, rapid.SampledFrom(quality.All()).Draw(t, "quality"))
		for _, m := range rapid.SliceOfN(rapid.SampledFrom(modifier.All()), 0, 3).Draw(t, "mods") {
			_ = c.Attach(m)
		}
		c.Invert(rapid.IntRange(0, 6).Draw(t, "inversion"))
		return c
	})
}

func TestChordString(t *testing.T) {
	cases := []struct {
		root    pitch.Note
		quality quality.Quality
		want    string
		notes   string
	}{
		{noteC, quality.Major, "C", "C-E-G"},
		{noteC, quality.Minor, "Cm", "C-E♭-G"},
		{noteC, quality.Diminished, "Co", "C-E♭-G♭"},
		{noteG, quality.Dominant7, "G7", "G-B-D-F"},
		{noteC, quality.Major7, "CM7", "C-E-G-B"},
		{pitch.NewNote(pitch.B, pitch.Natural), quality.HalfDiminished7, "Bø7", "B-D-F-A"},
		{noteC, quality.MinorMajor7, "CmM7", "C-E♭-G-B"},
		{noteC, quality.Ninth, "C9", "C-E-G-B♭-D"},
		{pitch.NewNote(pitch.F, pitch.Sharp), quality.Minor, "F♯m", "F♯-A-C♯"},
	}

	for _, c := range cases {
		t.Run(c.want, func(t *testing.T) {
			ch := New(c.root, c.quality)
			assert.Equal(t, c.want, ch.String())
			assert.Equal(t, c.notes, ch.NoteString())
		})
	}
}

func TestMinorWithoutThirdReportsMajor(t *testing.T) {
	c := New(noteC, quality.Minor)
	require.NoError(t, c.Attach(modifier.No3))

	assert := assert.New(t)
	assert.Equal(quality.Major, c.Quality())
	assert.Equal("Cno3", c.String())
	assert.Equal("C-G", c.NoteString())
}

func TestMinorSuspendedReportsMajor(t *testing.T) {
	c := New(noteC, quality.Minor)
	require.NoError(t, c.Attach(modifier.Sus4))

	assert.Equal(t, quality.Major, c.Quality())
	assert.Equal(t, "C-F-G", c.NoteString())
}

func TestRootAloneReportsMajor(t *testing.T) {
	c := New(noteC, quality.Diminished)
	require.NoError(t, c.Attach(modifier.No3))
	require.NoError(t, c.Attach(modifier.No5))

	assert := assert.New(t)
	assert.Equal(quality.Major, c.Quality())
	assert.Equal("C", c.NoteString())
	assert.Equal("Cno3no5", c.String())

	c.Invert(1)
	assert.Equal(0, c.Inversion())
}

func TestInversions(t *testing.T) {
	c := New(noteC, quality.Major)

	first := c.Inverted(1)
	assert := assert.New(t)
	assert.Equal("E-G-C", first.NoteString())
	assert.Equal("C/E", first.String())
	assert.Equal("C-E-G", c.NoteString())

	second := c.Inverted(-1)
	assert.Equal("G-C-E", second.NoteString())
	assert.Equal(2, second.Inversion())

	c.Invert(3)
	assert.Equal("C", c.String())
}

func TestSeventhChordReachesThirdInversion(t *testing.T) {
	c := New(noteC, quality.Dominant7).Inverted(3)

	assert.Equal(t, "B♭-C-E-G", c.NoteString())
	assert.Equal(t, "C7/B♭", c.String())
}

func TestOmissionsReduceInversions(t *testing.T) {
	c, err := New(noteC, quality.Major).With(modifier.No5)
	require.NoError(t, err)

	assert.Equal(t, "E-C", c.Inverted(1).NoteString())
	assert.Equal(t, "C-E", c.Inverted(2).NoteString())
}

func TestAttachIncompatibleLeavesChordUntouched(t *testing.T) {
	c := New(noteC, quality.Augmented)
	err := c.Attach(modifier.Flat5)

	assert.ErrorIs(t, err, modifier.ErrIncompatibleModifier)
	assert.Equal(t, "C+", c.String())
	assert.Equal(t, 0, c.Modifiers().Len())

	_, err = c.With(modifier.Sharp5)
	assert.ErrorIs(t, err, modifier.ErrIncompatibleModifier)
}

func TestWithAndWithoutCopy(t *testing.T) {
	c := New(noteC, quality.Major)
	with, err := c.With(modifier.No3)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal("C", c.String())
	assert.Equal("Cno3", with.String())

	without, err := with.Without(modifier.No3)
	require.NoError(t, err)
	assert.Equal("C", without.String())
	assert.Equal("Cno3", with.String())

	_, err = c.Without(modifier.No5)
	assert.ErrorIs(err, modifier.ErrModifierNotFound)
	assert.ErrorIs(c.Detach(modifier.No5), modifier.ErrModifierNotFound)
}

func TestAttachEvictsConflictingModifiers(t *testing.T) {
	c := New(noteC, quality.Major)
	require.NoError(t, c.Attach(modifier.Sus2))
	require.NoError(t, c.Attach(modifier.No3))

	assert.Equal(t, "Cno3", c.String())
	assert.Equal(t, "C-G", c.NoteString())
}

func TestSlashChord(t *testing.T) {
	c := New(noteC, quality.Major)

	overE, err := c.Over(noteE)
	require.NoError(t, err)
	assert := assert.New(t)
	assert.Equal("E-G-C", overE.NoteString())
	assert.Equal("C/E", overE.String())

	_, err = c.Over(noteF)
	assert.ErrorIs(err, ErrNoteNotInChord)

	// enharmonic spelling is not enough
	_, err = c.Over(pitch.NewNote(pitch.F, pitch.Flat))
	assert.ErrorIs(err, ErrNoteNotInChord)

	require.NoError(t, c.SetBass(noteG))
	assert.Equal("G-C-E", c.NoteString())
	assert.ErrorIs(c.SetBass(noteF), ErrNoteNotInChord)
	assert.Equal("G-C-E", c.NoteString())
}

func TestSettersRecompute(t *testing.T) {
	c := New(noteC, quality.Major).Inverted(1)
	c.SetRoot(noteG)
	assert.Equal(t, "B-D-G", c.NoteString())

	c.SetQuality(quality.Minor)
	assert.Equal(t, "B♭-D-G", c.NoteString())
	assert.Equal(t, "Gm/B♭", c.String())
}

func TestCloneIsIndependent(t *testing.T) {
	c := New(noteC, quality.Major)
	clone := c.Clone()
	require.NoError(t, clone.Attach(modifier.No5))
	clone.Invert(1)

	assert.Equal(t, "C-E-G", c.NoteString())
	assert.Equal(t, 0, c.Modifiers().Len())
	assert.False(t, c.Equal(clone))
}

func TestEqualIsEnharmonic(t *testing.T) {
	fSharp := New(pitch.NewNote(pitch.F, pitch.Sharp), quality.Major)
	gFlat := New(pitch.NewNote(pitch.G, pitch.Flat), quality.Major)

	assert.True(t, fSharp.Equal(gFlat))
	assert.False(t, fSharp.Equal(gFlat.Inverted(1)))
}

func TestRotationIsCyclic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := chordGenerator().Draw(t, "chord")
		k := rapid.IntRange(-20, 20).Draw(t, "k")

		back := c.Inverted(k).Inverted(-k)
		if back.NoteString() != c.NoteString() {
			t.Fatalf("%s >> %d >> %d gave %s, want %s", c, k, -k, back.NoteString(), c.NoteString())
		}
		full := c.Inverted(len(c.Notes()))
		if full.NoteString() != c.NoteString() {
			t.Fatalf("%s rotated by its size gave %s", c, full.NoteString())
		}
	})
}

func TestAttachTwiceIsIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := chordGenerator().Draw(t, "chord")
		m := rapid.SampledFrom(modifier.All()).Draw(t, "mod")

		once, err := c.With(m)
		if err != nil {
			return
		}
		twice, err := once.With(m)
		if err != nil {
			t.Fatalf("second attach of %s failed: %v", m, err)
		}
		if once.Modifiers().String() != twice.Modifiers().String() {
			t.Fatalf("%s then %s: %q vs %q", c, m, once.Modifiers(), twice.Modifiers())
		}
	})
}

func TestUnknownQualityFallsBackToMajor(t *testing.T) {
	c := New(noteC, quality.Quality(99))
	assert.Equal(t, quality.Major, c.Quality())
	assert.Equal(t, "C-E-G", c.NoteString())

	c = New(noteC, quality.Minor)
	c.SetQuality(quality.Quality(-1))
	assert.Equal(t, quality.Major, c.Quality())
	assert.Equal(t, "E-G-C", c.Inverted(1).NoteString())
}
