// Package playback performs a sequence in real time against a library
// of pre-recorded samples, one blocking time slice per note so that
// consecutive notes never overlap.
package playback

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"go.uber.org/zap"

	"github.com/ajepson/stavekit/constants"
	"github.com/ajepson/stavekit/errs"
	"github.com/ajepson/stavekit/model"
	"github.com/ajepson/stavekit/util"
)

const sessionRate = beep.SampleRate(44100)

// Player holds one playback session's configuration. The audio device
// is acquired when Play starts and released when it returns, whatever
// happened per note.
type Player struct {
	SampleDir      string
	SecondsPerBeat float64
	Logger         *zap.Logger

	// swappable for tests
	sleep      func(time.Duration)
	playSample func(path string, ring time.Duration) error
	initDevice func() error
	teardown   func()
}

func NewPlayer(sampleDir string, secondsPerBeat float64, logger *zap.Logger) *Player {
	p := &Player{
		SampleDir:      sampleDir,
		SecondsPerBeat: secondsPerBeat,
		Logger:         logger,
	}
	p.sleep = time.Sleep
	p.playSample = p.playFile
	p.initDevice = func() error {
		return speaker.Init(sessionRate, sessionRate.N(time.Second/10))
	}
	p.teardown = speaker.Clear
	return p
}

// Report accumulates the outcome of one playback session.
type Report struct {
	Played   int
	Missing  map[string]int
	Failures []string
}

func (r *Report) addMissing(filename string) {
	if r.Missing == nil {
		r.Missing = make(map[string]int)
	}
	r.Missing[filename]++
}

func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Played %d notes.", r.Played)

	names := util.GetKeys(r.Missing)
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, " Missing from library: %v.", name)
	}
	for _, failure := range r.Failures {
		fmt.Fprintf(&b, " Error playing %v.", failure)
	}
	b.WriteString(" Performance finished.")
	return b.String()
}

// Play walks the sequence in order. A missing sample skips the audio
// but still blocks for the note's duration so the rhythm is preserved.
// Rests and chords are skipped entirely. Per-note failures accumulate
// in the report instead of aborting the run.
func (p *Player) Play(seq model.Sequence) (*Report, error) {
	if err := p.initDevice(); err != nil {
		return nil, errs.Device("audio device unavailable: %v", err)
	}
	defer p.teardown()

	rep := &Report{}
	for _, n := range seq {
		if !n.IsNote() {
			continue
		}

		filename := n.Pitch().FlatName() + constants.SampleExt
		path := filepath.Join(p.SampleDir, filename)
		ring := time.Duration(n.Duration * p.SecondsPerBeat * float64(time.Second))

		if _, err := os.Stat(path); err != nil {
			rep.addMissing(filename)
			p.Logger.Warn("sample missing, keeping time", zap.String("sample", filename))
			p.sleep(ring)
			continue
		}

		if err := p.playSample(path, ring); err != nil {
			rep.Failures = append(rep.Failures, fmt.Sprintf("%v: %v", filename, err))
			p.Logger.Warn("sample playback failed", zap.String("sample", filename), zap.Error(err))
			p.sleep(ring)
			continue
		}
		rep.Played++
	}
	return rep, nil
}

// playFile starts the sample asynchronously, lets it ring for the
// note's time slice, then triggers a short fade so there is no pop
// between notes. The fade runs while the next note starts.
func (p *Player) playFile(path string, ring time.Duration) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return err
	}

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	streamer.Close()

	shot := beep.Resample(4, format.SampleRate, sessionRate, buf.Streamer(0, buf.Len()))
	vol := &effects.Volume{Streamer: shot, Base: 2}
	speaker.Play(vol)

	p.sleep(ring)
	go fadeOut(vol, constants.FadeOut)
	return nil
}

func fadeOut(vol *effects.Volume, d time.Duration) {
	const steps = 10
	for i := 0; i < steps; i++ {
		speaker.Lock()
		vol.Volume -= 0.8
		speaker.Unlock()
		time.Sleep(d / steps)
	}
	speaker.Lock()
	vol.Silent = true
	speaker.Unlock()
}
