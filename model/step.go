package model

import "fmt"

// Step is the gap in semitones between two neighbouring scale members.
type Step uint8

const (
	Half      Step = 1
	Whole     Step = 2
	WholeHalf Step = 3
)

func (s Step) String() string {
	switch s {
	case Half:
		return "H"
	case Whole:
		return "W"
	case WholeHalf:
		return "WH"
	}
	return fmt.Sprintf("S%d", uint8(s))
}
