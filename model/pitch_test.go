package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePitch(t *testing.T) {
	assert := assert.New(t)

	p, err := ParsePitch("G4")
	assert.NoError(err)
	assert.Equal(Pitch{Letter: 'G', Accidental: Natural, Octave: 4}, p)

	p, err = ParsePitch("F#3")
	assert.NoError(err)
	assert.Equal(Pitch{Letter: 'F', Accidental: Sharp, Octave: 3}, p)

	p, err = ParsePitch("Ab5")
	assert.NoError(err)
	assert.Equal(Pitch{Letter: 'A', Accidental: Flat, Octave: 5}, p)

	p, err = ParsePitch("g4")
	assert.NoError(err)
	assert.Equal(byte('G'), p.Letter)
}

func TestParsePitchRejectsGarbage(t *testing.T) {
	for _, bad := range []string{"", "4", "H4", "G", "G#", "G##4", "Gb", "G4b", "Gx"} {
		_, err := ParsePitch(bad)
		assert.Error(t, err, "expected %q to fail", bad)
	}
}

func TestKey(t *testing.T) {
	assert := assert.New(t)

	middleC, _ := ParsePitch("C4")
	assert.Equal(uint8(60), middleC.Key())

	a4, _ := ParsePitch("A4")
	assert.Equal(uint8(69), a4.Key())

	gSharp, _ := ParsePitch("G#4")
	aFlat, _ := ParsePitch("Ab4")
	assert.Equal(gSharp.Key(), aFlat.Key())
	assert.Equal(uint8(68), gSharp.Key())
}

func TestPitchFromKeySpellsFlats(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("Ab4", PitchFromKey(68).String())
	assert.Equal("Bb3", PitchFromKey(58).String())
	assert.Equal("C4", PitchFromKey(60).String())
	assert.Equal("F5", PitchFromKey(77).String())
}

func TestDiatonicStep(t *testing.T) {
	assert := assert.New(t)

	cases := map[string]int{
		"C4": 29,
		"G4": 33,
		"A4": 34,
		"B4": 35, // the stem-flip boundary
		"C5": 36,
	}
	for name, want := range cases {
		p, err := ParsePitch(name)
		assert.NoError(err)
		assert.Equal(want, p.DiatonicStep(), "step of %v", name)
	}

	// accidentals do not move the note head
	gSharp, _ := ParsePitch("G#4")
	g, _ := ParsePitch("G4")
	assert.Equal(g.DiatonicStep(), gSharp.DiatonicStep())
}

func TestFlatName(t *testing.T) {
	assert := assert.New(t)

	gSharp, _ := ParsePitch("G#4")
	assert.Equal("Ab4", gSharp.FlatName())

	aFlat, _ := ParsePitch("Ab4")
	assert.Equal("Ab4", aFlat.FlatName())

	g, _ := ParsePitch("G4")
	assert.Equal("G4", g.FlatName())
}
