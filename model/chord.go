package model

type Notes = []uint8

// SoundingChord is the set of notes held at one moment of a MIDI file.
type SoundingChord struct {
	// microseconds from the start of the file
	Offset int64
	Notes  Notes
}

type ReducedEvent struct {
	Offset    int64
	IsNoteOff bool
	Note      uint8
}
