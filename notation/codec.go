// Package notation converts between the textual correction format
// "Pitch:Duration, Pitch:Duration, ..." and note sequences.
package notation

import (
	"strconv"
	"strings"

	"github.com/ajepson/stavekit/errs"
	"github.com/ajepson/stavekit/model"
)

var durationNames = map[string]float64{
	"16th":    0.25,
	"eighth":  0.5,
	"quarter": 1.0,
	"half":    2.0,
	"whole":   4.0,
}

var durationLabels = map[float64]string{
	0.25: "16th",
	0.5:  "eighth",
	1.0:  "quarter",
	2.0:  "half",
	4.0:  "whole",
}

// DurationLabel names a quarter-note length, falling back to a decimal
// literal for lengths without a standard name.
func DurationLabel(quarterLength float64) string {
	if name, ok := durationLabels[quarterLength]; ok {
		return name
	}
	return strconv.FormatFloat(quarterLength, 'g', -1, 64)
}

// Decode parses correction text like "G4:quarter, A4:half" into a
// sequence. One bad entry abandons the whole decode; no partial sequence
// is returned. Chord and rest syntax is not accepted, only single notes.
func Decode(text string) (model.Sequence, error) {
	if strings.TrimSpace(text) == "" {
		return model.Sequence{}, nil
	}

	var seq model.Sequence
	for _, raw := range strings.Split(text, ",") {
		entry := strings.TrimSpace(raw)

		pitchTok, durTok, found := strings.Cut(entry, ":")
		if !found {
			return nil, errs.Parse("cannot parse %q: missing ':' separator, use the format 'Pitch:Duration' (e.g. 'G4:quarter, A4:half')", entry)
		}

		pitch, err := model.ParsePitch(strings.TrimSpace(pitchTok))
		if err != nil {
			return nil, errs.Parse("cannot parse %q: %v", entry, err)
		}

		quarterLength, err := parseDuration(strings.TrimSpace(durTok))
		if err != nil {
			return nil, errs.Parse("cannot parse %q: %v", entry, err)
		}

		seq = append(seq, model.NewNote(pitch, quarterLength))
	}
	return seq, nil
}

func parseDuration(tok string) (float64, error) {
	if quarterLength, ok := durationNames[strings.ToLower(tok)]; ok {
		return quarterLength, nil
	}
	quarterLength, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, errs.Parse("%q is neither a duration name nor a number", tok)
	}
	if quarterLength <= 0 {
		return 0, errs.Parse("duration %q must be greater than zero", tok)
	}
	return quarterLength, nil
}

// Encode renders a sequence as summary text. Plain notes round-trip
// through Decode; chords are emitted as a bracketed pitch set which
// Decode does not accept, so the output is for human consumption only.
func Encode(seq model.Sequence) string {
	entries := make([]string, 0, len(seq))
	for _, n := range seq {
		entries = append(entries, encodeNote(n))
	}
	return strings.Join(entries, ", ")
}

func encodeNote(n model.Note) string {
	label := DurationLabel(n.Duration)
	if n.IsChord() {
		names := make([]string, 0, len(n.Pitches))
		for _, p := range n.Pitches {
			names = append(names, p.String())
		}
		return "[" + strings.Join(names, " ") + "]:" + label
	}
	return n.Pitch().String() + ":" + label
}
