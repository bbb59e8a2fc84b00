// Package render lays a sequence out as sticker glyphs on a staff
// canvas. There is no real measure logic: a line simply wraps once it
// has accumulated four quarter-note units.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ajepson/stavekit/constants"
	"github.com/ajepson/stavekit/errs"
	"github.com/ajepson/stavekit/model"
)

// glyphDurations lists the available note stickers, longest first.
var glyphDurations = []struct {
	quarterLength float64
	name          string
}{
	{4.0, "whole"},
	{2.0, "half"},
	{1.0, "quarter"},
	{0.5, "eighth"},
	{0.25, "16th"},
}

// glyphName picks the sticker for a duration. Durations without a
// sticker of their own borrow the longest one that fits, so a dotted
// quarter (1.5) draws with the quarter glyph.
func glyphName(quarterLength float64) string {
	for _, g := range glyphDurations {
		if quarterLength >= g.quarterLength {
			return g.name
		}
	}
	return glyphDurations[len(glyphDurations)-1].name
}

type Options struct {
	GlyphDir string
	// Display opens the rendered image with the platform viewer.
	// Render fails with a device error if that does not work, so the
	// caller can retry file-only.
	Display bool
}

// Placement is a single glyph position computed by Layout.
type Placement struct {
	Glyph string // preferred glyph base name, e.g. "quarter_rev"
	X, Y  int
	Line  int
}

// Layout walks the sequence with a horizontal cursor and a running
// duration accumulator, wrapping to a new staff line each time the
// accumulator exceeds the per-line capacity. Chords and other non-note
// events are skipped, matching playback.
func Layout(seq model.Sequence) []Placement {
	x := float64(constants.XOrigin)
	line := 0
	var accumulated float64

	var placements []Placement
	for _, n := range seq {
		if !n.IsNote() {
			continue
		}
		if accumulated > constants.MaxLineDuration {
			x = float64(constants.XOrigin)
			line++
			accumulated = 0
		}

		step := n.Pitch().DiatonicStep()
		name := glyphName(n.Duration)
		if step >= constants.StemFlipStep {
			name += "_rev"
		}

		lineY := line * constants.LineSpacing
		placements = append(placements, Placement{
			Glyph: name,
			X:     int(x),
			Y:     constants.BaselineY + lineY - step*constants.PixelsPerStep,
			Line:  line,
		})

		x += n.Duration * constants.BeatWidth * 2
		accumulated += n.Duration
	}
	return placements
}

// Sheet renders the sequence next to docPath as rendered_<stem>.png and
// returns the output path.
func Sheet(docPath string, seq model.Sequence, meta model.Metadata, opts Options) (string, error) {
	staff, err := loadImage(filepath.Join(opts.GlyphDir, constants.StaffTile))
	if err != nil {
		return "", err
	}

	canvas := image.NewRGBA(image.Rect(0, 0, constants.CanvasWidth, constants.CanvasHeight))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	composite(canvas, staff, 0, 0)
	drawTitle(canvas, meta.Title)

	lastLine := 0
	for _, p := range Layout(seq) {
		if p.Line > lastLine {
			for line := lastLine + 1; line <= p.Line; line++ {
				composite(canvas, staff, 0, line*constants.LineSpacing)
			}
			lastLine = p.Line
		}

		glyph, err := loadGlyph(opts.GlyphDir, p.Glyph)
		if err != nil {
			return "", err
		}
		composite(canvas, glyph, p.X, p.Y)
	}

	out := OutputPath(docPath)
	if err := savePNG(out, canvas); err != nil {
		return "", err
	}

	if opts.Display {
		if err := display(out); err != nil {
			return out, err
		}
	}
	return out, nil
}

// OutputPath derives the rendered image path from the document path's
// stem, e.g. songs/tune.mid -> songs/rendered_tune.png.
func OutputPath(docPath string) string {
	base := filepath.Base(docPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(docPath), "rendered_"+stem+constants.GlyphExt)
}

// loadGlyph resolves a glyph base name to an image, falling back from
// the reversed stem variant to the plain one when the file is absent.
func loadGlyph(dir, name string) (image.Image, error) {
	img, err := loadImage(filepath.Join(dir, name+constants.GlyphExt))
	if err != nil && strings.HasSuffix(name, "_rev") {
		plain := strings.TrimSuffix(name, "_rev")
		return loadImage(filepath.Join(dir, plain+constants.GlyphExt))
	}
	return img, err
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.NotFound("glyph asset not found: %v", path)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, errs.Format("error decoding glyph %v... %s", path, err.Error())
	}
	return img, nil
}

// composite alpha-blends src onto dst with its top-left corner at (x, y).
func composite(dst *image.RGBA, src image.Image, x, y int) {
	r := src.Bounds().Sub(src.Bounds().Min).Add(image.Pt(x, y))
	draw.Draw(dst, r, src, src.Bounds().Min, draw.Over)
}

func drawTitle(canvas *image.RGBA, title string) {
	if title == "" {
		return
	}
	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.Black,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(constants.XOrigin, 40),
	}
	d.DrawString(title)
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return errs.NotFound("could not create rendered image %v... %s", path, err.Error())
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return errs.Format("error encoding rendered image... %s", err.Error())
	}
	return nil
}

func display(path string) error {
	viewer := "xdg-open"
	if runtime.GOOS == "darwin" {
		viewer = "open"
	}
	if err := exec.Command(viewer, path).Run(); err != nil {
		return errs.Device("could not open image viewer: %v", err)
	}
	return nil
}
