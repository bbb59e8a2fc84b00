package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajepson/stavekit/errs"
	"github.com/ajepson/stavekit/model"
)

func TestDecodeTwoNotes(t *testing.T) {
	assert := assert.New(t)

	seq, err := Decode("G4:quarter, A4:half")
	assert.NoError(err)
	assert.Len(seq, 2)

	assert.Equal("G4", seq[0].Pitch().String())
	assert.Equal(1.0, seq[0].Duration)
	assert.Equal("A4", seq[1].Pitch().String())
	assert.Equal(2.0, seq[1].Duration)
}

func TestDecodeNumericAndNamedDurations(t *testing.T) {
	assert := assert.New(t)

	seq, err := Decode("C4:16th, D4:0.75, Eb4:WHOLE")
	assert.NoError(err)
	assert.Equal(0.25, seq[0].Duration)
	assert.Equal(0.75, seq[1].Duration)
	assert.Equal(4.0, seq[2].Duration)
}

func TestDecodeEmptyTextIsSilence(t *testing.T) {
	seq, err := Decode("   ")
	assert.NoError(t, err)
	assert.Empty(t, seq)
}

func TestDecodeFailsOnBadToken(t *testing.T) {
	assert := assert.New(t)

	cases := []string{
		"G4:notaduration",
		"G4:quarter, A4",
		"H4:quarter",
		"G4:-1",
		"G4:0",
	}
	for _, text := range cases {
		seq, err := Decode(text)
		assert.Error(err, "expected %q to fail", text)
		assert.Nil(seq, "no partial sequence for %q", text)
		assert.Equal(errs.KindParse, errs.KindOf(err))
	}
}

func TestDecodeErrorNamesOffendingToken(t *testing.T) {
	_, err := Decode("G4:quarter, A4:notaduration")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "notaduration")
}

func TestEncode(t *testing.T) {
	seq, err := Decode("G4:quarter, A4:half, Bb4:0.75")
	assert.NoError(t, err)
	assert.Equal(t, "G4:quarter, A4:half, Bb4:0.75", Encode(seq))
}

func TestEncodeChordIsSummaryOnly(t *testing.T) {
	assert := assert.New(t)

	c4, _ := model.ParsePitch("C4")
	e4, _ := model.ParsePitch("E4")
	g4, _ := model.ParsePitch("G4")
	chord := model.Note{Pitches: []model.Pitch{c4, e4, g4}, Duration: 1.0}

	text := Encode(model.Sequence{chord})
	assert.Equal("[C4 E4 G4]:quarter", text)

	// chord syntax is not part of the correction grammar
	_, err := Decode(text)
	assert.Error(err)
}

func TestDecodeEncodeDecodeIsIdempotent(t *testing.T) {
	assert := assert.New(t)

	first, err := Decode("G4:quarter, A4:half, F#2:eighth, C5:1.5")
	assert.NoError(err)

	second, err := Decode(Encode(first))
	assert.NoError(err)

	assert.Len(second, len(first))
	for i := range first {
		// Encode keeps the original spelling, so pairs match exactly.
		assert.Equal(first[i].Pitch().String(), second[i].Pitch().String())
		assert.Equal(first[i].Duration, second[i].Duration)
	}
}

func TestDurationLabel(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("16th", DurationLabel(0.25))
	assert.Equal("eighth", DurationLabel(0.5))
	assert.Equal("quarter", DurationLabel(1.0))
	assert.Equal("half", DurationLabel(2.0))
	assert.Equal("whole", DurationLabel(4.0))
	assert.Equal("0.75", DurationLabel(0.75))
}
