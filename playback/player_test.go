package playback

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	testifyassert "github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/ajepson/stavekit/errs"
	"github.com/ajepson/stavekit/notation"
)

// fakePlayer stubs out the audio device and clock so tests can assert
// on timing behavior without a speaker.
type fakePlayer struct {
	*Player
	slept    time.Duration
	played   []string
	tornDown bool
}

func newFakePlayer(t *testing.T, sampleDir string) *fakePlayer {
	t.Helper()
	fp := &fakePlayer{Player: NewPlayer(sampleDir, 0.6, zap.NewNop())}
	fp.sleep = func(d time.Duration) { fp.slept += d }
	fp.playSample = func(path string, ring time.Duration) error {
		fp.played = append(fp.played, filepath.Base(path))
		fp.sleep(ring)
		return nil
	}
	fp.initDevice = func() error { return nil }
	fp.teardown = func() { fp.tornDown = true }
	return fp
}

func writeSample(t *testing.T, dir, name string) {
	t.Helper()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("mp3"), 0644))
}

func TestPlayBlocksForMissingAndPresentNotes(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	writeSample(t, dir, "A4.mp3")

	fp := newFakePlayer(t, dir)
	seq, err := notation.Decode("G4:quarter, A4:half")
	assert.NoError(err)

	rep, err := fp.Play(seq)
	assert.NoError(err)

	// one quarter missing + one half present, both at 0.6s per beat
	want := time.Duration((1.0*0.6 + 2.0*0.6) * float64(time.Second))
	assert.Equal(want, fp.slept)

	assert.Equal(1, rep.Played)
	assert.Len(rep.Missing, 1)
	assert.Equal(1, rep.Missing["G4.mp3"])
	assert.Equal([]string{"A4.mp3"}, fp.played)
	assert.True(fp.tornDown)
}

func TestPlayLooksUpSharpsAsFlats(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	writeSample(t, dir, "Ab4.mp3")

	fp := newFakePlayer(t, dir)
	seq, _ := notation.Decode("G#4:quarter")

	rep, err := fp.Play(seq)
	assert.NoError(err)
	assert.Equal(1, rep.Played)
	assert.Empty(rep.Missing)
	assert.Equal([]string{"Ab4.mp3"}, fp.played)
}

func TestPlayDeviceFailure(t *testing.T) {
	fp := newFakePlayer(t, t.TempDir())
	fp.initDevice = func() error { return assert.AnError }

	seq, _ := notation.Decode("G4:quarter")
	_, err := fp.Play(seq)
	assert.Error(t, err)
	assert.Equal(t, errs.KindDevice, errs.KindOf(err))
}

func TestPlayAccumulatesPerNoteFailures(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	writeSample(t, dir, "C4.mp3")
	writeSample(t, dir, "D4.mp3")

	fp := newFakePlayer(t, dir)
	fp.playSample = func(path string, ring time.Duration) error {
		if filepath.Base(path) == "C4.mp3" {
			return testifyassert.AnError
		}
		fp.sleep(ring)
		return nil
	}

	seq, _ := notation.Decode("C4:quarter, D4:quarter")
	rep, err := fp.Play(seq)
	assert.NoError(err)
	assert.Equal(1, rep.Played)
	assert.Len(rep.Failures, 1)

	// the failed note still takes up its time slice
	want := time.Duration(2 * 0.6 * float64(time.Second))
	assert.Equal(want, fp.slept)
	assert.True(fp.tornDown)
}

func TestReportString(t *testing.T) {
	assert := assert.New(t)

	rep := &Report{Played: 2}
	rep.addMissing("G4.mp3")
	text := rep.String()
	assert.Contains(text, "Played 2 notes")
	assert.Contains(text, "Missing from library: G4.mp3")
	assert.Contains(text, "Performance finished")
}
