package playback

import (
	"bufio"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ajepson/stavekit/errs"
	"github.com/ajepson/stavekit/model"
	"github.com/ajepson/stavekit/score"
)

// RenderAudio is the no-audio-device fallback: it writes the sequence
// to a throwaway MIDI file and shells out to fluidsynth to synthesize a
// durable audio file next to the document. Subprocess output is
// streamed line by line to the logger; there is no mid-run cancel.
func RenderAudio(docPath string, seq model.Sequence, meta model.Metadata, soundFont string, logger *zap.Logger) (string, error) {
	midiPath := filepath.Join(os.TempDir(), uuid.New().String()+".mid")
	if err := score.Write(midiPath, seq, meta); err != nil {
		return "", err
	}
	defer os.Remove(midiPath)

	out := strings.TrimSuffix(docPath, filepath.Ext(docPath)) + ".wav"
	cmd := exec.Command("fluidsynth", "-ni", soundFont, midiPath, "-F", out, "-r", "44100")

	pr, pw := io.Pipe()
	cmd.Stdout = pw
	cmd.Stderr = pw

	if err := cmd.Start(); err != nil {
		return "", errs.ExternalTool("'fluidsynth' command not found or failed to start: %v", err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		scanner := bufio.NewScanner(pr)
		for scanner.Scan() {
			logger.Info("fluidsynth", zap.String("line", scanner.Text()))
		}
	}()

	err := cmd.Wait()
	pw.Close()
	<-done

	if err != nil {
		return "", errs.ExternalTool("fluidsynth exited with an error: %v", err)
	}
	return out, nil
}
