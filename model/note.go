package model

// Note is one timed event in a sequence. A plain note carries a single
// pitch; a chord carries several sounding together. Duration is measured
// in quarter-note units and is always > 0.
type Note struct {
	Pitches  []Pitch
	Duration float64
}

func NewNote(p Pitch, duration float64) Note {
	return Note{Pitches: []Pitch{p}, Duration: duration}
}

func (n Note) IsNote() bool {
	return len(n.Pitches) == 1
}

func (n Note) IsChord() bool {
	return len(n.Pitches) > 1
}

// Pitch returns the first (or only) pitch of the event.
func (n Note) Pitch() Pitch {
	return n.Pitches[0]
}

// Sequence is an ordered list of notes; insertion order is performance
// order. An empty sequence is valid and means silence.
type Sequence []Note

// Metadata is the layout information persisted alongside a sequence.
type Metadata struct {
	Title string
	Part  string
}
