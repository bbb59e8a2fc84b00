package model

import (
	"fmt"
	"strconv"
)

type Accidental int8

const (
	Natural Accidental = 0
	Sharp   Accidental = 1
	Flat    Accidental = -1
)

// Pitch is a spelled musical tone: letter name, accidental and octave.
// C4 is middle C (MIDI key 60).
type Pitch struct {
	Letter     byte // 'A'..'G'
	Accidental Accidental
	Octave     int
}

// semitone offset of each letter from C within an octave
var letterSemitones = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// scale position of each letter, C=1 .. B=7
var letterSteps = map[byte]int{
	'C': 1, 'D': 2, 'E': 3, 'F': 4, 'G': 5, 'A': 6, 'B': 7,
}

// flat spelling for every pitch class, used when a pitch comes back from
// a MIDI key and when normalizing names for the sample library
var flatSpellings = [12]struct {
	letter byte
	acc    Accidental
}{
	{'C', Natural}, {'D', Flat}, {'D', Natural}, {'E', Flat},
	{'E', Natural}, {'F', Natural}, {'G', Flat}, {'G', Natural},
	{'A', Flat}, {'A', Natural}, {'B', Flat}, {'B', Natural},
}

// ParsePitch parses names like "G4", "F#3" and "Ab5".
func ParsePitch(s string) (Pitch, error) {
	var p Pitch
	if len(s) < 2 || len(s) > 3 {
		return p, fmt.Errorf("invalid pitch %q", s)
	}

	letter := s[0]
	if letter >= 'a' && letter <= 'g' {
		letter -= 'a' - 'A'
	}
	if letter < 'A' || letter > 'G' {
		return p, fmt.Errorf("invalid pitch letter in %q", s)
	}

	rest := s[1:]
	acc := Natural
	switch rest[0] {
	case '#':
		acc = Sharp
		rest = rest[1:]
	case 'b':
		acc = Flat
		rest = rest[1:]
	}

	if len(rest) != 1 || rest[0] < '0' || rest[0] > '9' {
		return p, fmt.Errorf("invalid octave in pitch %q", s)
	}
	octave, _ := strconv.Atoi(rest)

	return Pitch{Letter: letter, Accidental: acc, Octave: octave}, nil
}

// Key returns the MIDI key number for the pitch.
func (p Pitch) Key() uint8 {
	return uint8((p.Octave+1)*12 + letterSemitones[p.Letter] + int(p.Accidental))
}

// PitchFromKey spells a MIDI key number using flats for the black keys.
func PitchFromKey(key uint8) Pitch {
	spelling := flatSpellings[key%12]
	return Pitch{
		Letter:     spelling.letter,
		Accidental: spelling.acc,
		Octave:     int(key)/12 - 1,
	}
}

// DiatonicStep is the pitch's position on the staff's vertical scale,
// counting letter names from C0 (C=1 per octave, so B4 = 35). Accidentals
// do not move a note head, so they are ignored here.
func (p Pitch) DiatonicStep() int {
	return p.Octave*7 + letterSteps[p.Letter]
}

// String returns the pitch as spelled, e.g. "G#4" or "Ab4".
func (p Pitch) String() string {
	switch p.Accidental {
	case Sharp:
		return fmt.Sprintf("%c#%d", p.Letter, p.Octave)
	case Flat:
		return fmt.Sprintf("%cb%d", p.Letter, p.Octave)
	default:
		return fmt.Sprintf("%c%d", p.Letter, p.Octave)
	}
}

// FlatName re-spells sharps as their enharmonic flat and returns the
// name + octave, matching the sample library's flat-only filenames
// (e.g. G#4 becomes "Ab4").
func (p Pitch) FlatName() string {
	if p.Accidental == Sharp {
		return PitchFromKey(p.Key()).String()
	}
	return p.String()
}
