// Package score persists note sequences as Standard MIDI Files: one
// track, channel 0, 960 ticks per quarter note, title and part carried
// as meta events. Each write fully replaces the document.
package score

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/ajepson/stavekit/constants"
	"github.com/ajepson/stavekit/errs"
	"github.com/ajepson/stavekit/model"
	"github.com/ajepson/stavekit/notation"
)

const noteVelocity = 90

// Write serializes the sequence to path, overwriting whatever is there.
// There is no atomic rename; a crash mid-write can leave a torn file.
func Write(path string, seq model.Sequence, meta model.Metadata) error {
	clock := smf.MetricTicks(constants.TicksPerQuarter)
	s := smf.New()
	s.TimeFormat = clock

	var tr smf.Track
	if meta.Title != "" {
		tr.Add(0, smf.MetaTrackSequenceName(meta.Title))
	}
	if meta.Part != "" {
		tr.Add(0, smf.MetaInstrument(meta.Part))
	}

	for _, n := range seq {
		ticks := uint32(math.Round(n.Duration * float64(clock.Ticks4th())))
		for _, p := range n.Pitches {
			tr.Add(0, midi.NoteOn(0, p.Key(), noteVelocity))
		}
		for i, p := range n.Pitches {
			delta := uint32(0)
			if i == 0 {
				delta = ticks
			}
			tr.Add(delta, midi.NoteOff(0, p.Key()))
		}
	}
	tr.Close(0)
	s.Add(tr)

	if err := s.WriteFile(path); err != nil {
		return fmt.Errorf("error writing score file... %s", err.Error())
	}
	return nil
}

// readSMF parses the raw bytes, turning gomidi panics into errors.
// https://github.com/gomidi/midi/issues/20
func readSMF(data []byte) (*smf.SMF, error) {
	return recoverParse(func() (*smf.SMF, error) {
		return smf.ReadFrom(bytes.NewReader(data))
	})
}

// recoverParse converts any panic out of parse, whatever its value,
// into an error so callers never see a nil score with a nil error.
func recoverParse(parse func() (*smf.SMF, error)) (s *smf.SMF, e error) {
	defer func() {
		if r := recover(); r != nil {
			e = fmt.Errorf("%v", r)
		}
	}()
	return parse()
}

type noteSpan struct {
	start uint64
	key   uint8
	ticks uint64
}

// Read loads the document at path back into a sequence. Notes that
// start on the same tick are grouped into a single chord event.
func Read(path string) (model.Sequence, model.Metadata, error) {
	var meta model.Metadata

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, meta, errs.NotFound("score not found: %v", path)
		}
		return nil, meta, errs.NotFound("error reading score file... %s", err.Error())
	}

	s, err := readSMF(data)
	if err != nil {
		return nil, meta, errs.Format("error parsing score file... %s", err.Error())
	}

	clock, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return nil, meta, errs.Format("score file %v has unsupported time format %v", path, s.TimeFormat)
	}

	var spans []noteSpan
	for _, events := range s.Tracks {
		var absTicks uint64
		pending := make(map[uint8][]uint64)
		endNote := func(key uint8) {
			starts := pending[key]
			if len(starts) == 0 {
				return
			}
			start := starts[0]
			pending[key] = starts[1:]
			spans = append(spans, noteSpan{start: start, key: key, ticks: absTicks - start})
		}
		for _, event := range events {
			absTicks += uint64(event.Delta)
			var channel, key, velocity uint8
			var text string
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				// a NoteOn with zero velocity is a note off
				if velocity == 0 {
					endNote(key)
				} else {
					pending[key] = append(pending[key], absTicks)
				}
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				endNote(key)
			case event.Message.GetMetaTrackName(&text):
				meta.Title = text
			case event.Message.GetMetaInstrument(&text):
				meta.Part = text
			}
		}
	}

	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].start < spans[j].start
	})

	var seq model.Sequence
	for i := 0; i < len(spans); {
		j := i
		var pitches []model.Pitch
		for ; j < len(spans) && spans[j].start == spans[i].start; j++ {
			pitches = append(pitches, model.PitchFromKey(spans[j].key))
		}
		quarterLength := float64(spans[i].ticks) / float64(clock.Ticks4th())
		seq = append(seq, model.Note{Pitches: pitches, Duration: quarterLength})
		i = j
	}

	return seq, meta, nil
}

// Summarize reads the document and flattens it into the textual note
// list handed back to the calling agent.
func Summarize(path string) (string, error) {
	seq, _, err := Read(path)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Found the score: %v\n--- NOTES DETECTED ---: %v", path, notation.Encode(seq)), nil
}
