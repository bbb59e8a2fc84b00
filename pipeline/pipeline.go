// Package pipeline wires the codec, store, renderer and playback engine
// into the stage operations exposed to the calling agent. No stage lets
// an error escape as a fault; everything becomes a Result.
package pipeline

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ajepson/stavekit/catalog"
	"github.com/ajepson/stavekit/config"
	"github.com/ajepson/stavekit/model"
	"github.com/ajepson/stavekit/notation"
	"github.com/ajepson/stavekit/playback"
	"github.com/ajepson/stavekit/render"
	"github.com/ajepson/stavekit/score"
)

type Pipeline struct {
	cfg     config.Config
	logger  *zap.Logger
	catalog *catalog.Client

	// stage seams, overridable in tests
	renderStage func(path string, seq model.Sequence, meta model.Metadata, display bool) (string, error)
	playStage   func(seq model.Sequence) (string, error)
	renderAudio func(path string, seq model.Sequence, meta model.Metadata) (string, error)
}

func New(cfg config.Config, logger *zap.Logger, cat *catalog.Client) *Pipeline {
	pl := &Pipeline{cfg: cfg, logger: logger, catalog: cat}

	pl.renderStage = func(path string, seq model.Sequence, meta model.Metadata, display bool) (string, error) {
		out, err := render.Sheet(path, seq, meta, render.Options{GlyphDir: cfg.GlyphDir, Display: display})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Visualization saved to: %v", out), nil
	}
	pl.playStage = func(seq model.Sequence) (string, error) {
		player := playback.NewPlayer(cfg.SampleDir, cfg.SecondsPerBeat, logger)
		rep, err := player.Play(seq)
		if err != nil {
			return "", err
		}
		return rep.String(), nil
	}
	pl.renderAudio = func(path string, seq model.Sequence, meta model.Metadata) (string, error) {
		out, err := playback.RenderAudio(path, seq, meta, cfg.SoundFont, logger)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Audio rendered to: %v", out), nil
	}
	return pl
}

// ListenAddr exposes the configured HTTP listen address.
func (pl *Pipeline) ListenAddr() string {
	return pl.cfg.ListenAddr
}

// Update decodes the correction text and fully replaces the document at
// path. A decode failure leaves the document untouched.
func (pl *Pipeline) Update(path, correction string) Result {
	seq, err := notation.Decode(correction)
	if err != nil {
		return Err(err)
	}

	meta := pl.documentMeta(path)
	if err := score.Write(path, seq, meta); err != nil {
		return Err(err)
	}

	if pl.catalog != nil {
		rec := catalog.Record{
			Path:      path,
			Title:     meta.Title,
			Part:      meta.Part,
			NoteCount: len(seq),
			UpdatedAt: time.Now(),
		}
		if err := pl.catalog.Put(rec); err != nil {
			pl.logger.Warn("catalog update failed", zap.String("path", path), zap.Error(err))
		}
	}

	return pl.Summary(path)
}

// Summary reads the document and returns the flattened note list.
func (pl *Pipeline) Summary(path string) Result {
	text, err := score.Summarize(path)
	if err != nil {
		return Err(err)
	}
	return Ok(text)
}

// Render draws the sheet for the document, trying the interactive
// display first and falling back to a file-only save.
func (pl *Pipeline) Render(path string) Result {
	seq, meta, err := score.Read(path)
	if err != nil {
		return Err(err)
	}
	detail, err := Chain(
		func() (string, error) { return pl.renderStage(path, seq, meta, true) },
		func() (string, error) { return pl.renderStage(path, seq, meta, false) },
	)
	if err != nil {
		return Err(err)
	}
	return Ok(detail)
}

// Play performs the document, falling back from live playback to
// rendering a durable audio file when no device is available.
func (pl *Pipeline) Play(path string) Result {
	seq, meta, err := score.Read(path)
	if err != nil {
		return Err(err)
	}
	detail, err := Chain(
		func() (string, error) { return pl.playStage(seq) },
		func() (string, error) { return pl.renderAudio(path, seq, meta) },
	)
	if err != nil {
		return Err(err)
	}
	return Ok(detail)
}

// Process runs the whole pipeline for a document: render, play, then
// summarize. Render and playback tiers degrade to a textual explanation
// in the combined detail; only the summary decides success.
func (pl *Pipeline) Process(path string) Result {
	seq, meta, err := score.Read(path)
	if err != nil {
		return Err(err)
	}

	var lines []string

	detail, err := Chain(
		func() (string, error) { return pl.renderStage(path, seq, meta, true) },
		func() (string, error) { return pl.renderStage(path, seq, meta, false) },
	)
	if err != nil {
		pl.logger.Warn("render failed", zap.String("path", path), zap.Error(err))
		lines = append(lines, fmt.Sprintf("Rendering failed: %v", err))
	} else {
		lines = append(lines, detail)
	}

	detail, err = Chain(
		func() (string, error) { return pl.playStage(seq) },
		func() (string, error) { return pl.renderAudio(path, seq, meta) },
	)
	if err != nil {
		pl.logger.Warn("playback failed", zap.String("path", path), zap.Error(err))
		lines = append(lines, fmt.Sprintf("Playback failed: %v", err))
	} else {
		lines = append(lines, detail)
	}

	summary, err := score.Summarize(path)
	if err != nil {
		return Err(err)
	}
	lines = append(lines, summary)

	return Ok(strings.Join(lines, "\n"))
}

// documentMeta keeps the existing title and part when the document
// already exists, otherwise derives the title from the filename.
func (pl *Pipeline) documentMeta(path string) model.Metadata {
	meta := model.Metadata{Part: pl.cfg.Part}

	base := filepath.Base(path)
	meta.Title = strings.TrimSuffix(base, filepath.Ext(base))

	if _, existing, err := score.Read(path); err == nil {
		if existing.Title != "" {
			meta.Title = existing.Title
		}
		if existing.Part != "" {
			meta.Part = existing.Part
		}
	}
	return meta
}
