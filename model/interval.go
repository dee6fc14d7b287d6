package model

import "fmt"

// Interval is a distance in semitones from a root.
type Interval uint8

const (
	Unison          Interval = 0
	MinorSecond     Interval = 1
	MajorSecond     Interval = 2
	MinorThird      Interval = 3
	MajorThird      Interval = 4
	PerfectFourth   Interval = 5
	AugmentedFourth Interval = 6
	DiminishedFifth Interval = 6
	PerfectFifth    Interval = 7
	MinorSixth      Interval = 8
	MajorSixth      Interval = 9
	MinorSeventh    Interval = 10
	MajorSeventh    Interval = 11
	Octave          Interval = 12
)

var intervalNames = [...]string{"P1", "m2", "M2", "m3", "M3", "P4", "d5", "P5", "m6", "M6", "m7", "M7", "P8"}

func (i Interval) AddStep(s Step) Interval {
	return i + Interval(s)
}

func (i Interval) String() string {
	if int(i) < len(intervalNames) {
		return intervalNames[i]
	}
	return fmt.Sprintf("I%d", uint8(i))
}
