package constants

import "time"

// Canvas geometry for the sticker-sheet renderer. The numbers are tied
// to the glyph library artwork: 15 px per diatonic step, note heads
// anchored 544 px below the top of a staff line.
const (
	CanvasWidth  = 2500
	CanvasHeight = 3000

	XOrigin       = 100
	BeatWidth     = 150
	LineSpacing   = 500
	BaselineY     = 544
	PixelsPerStep = 15

	// a line holds four quarter-note units before wrapping
	MaxLineDuration = 4.0

	// B4 and above get the reversed (stem down) glyph
	StemFlipStep = 35
)

// Playback pacing.
const (
	SecondsPerBeat = 0.6
	FadeOut        = 150 * time.Millisecond
)

// Document format.
const TicksPerQuarter = 960

// Asset naming conventions.
const (
	SampleExt = ".mp3"
	GlyphExt  = ".png"
	StaffTile = "blank_staff.png"
)
