package scale

import "github.com/jsphweid/muzze/util"

var (
	Major         = FromU16(0b0000_1101_0101_1010)
	NaturalMinor  = FromU16(0b0000_1010_1101_0110)
	HarmonicMinor = FromU16(0b0000_1100_1101_0110)
	MelodicMinor  = FromU16(0b0000_1101_0101_0110)

	Dorian     = FromSteps(2, 1, 2, 2, 2, 1, 2)
	Phrygian   = FromSteps(1, 2, 2, 2, 1, 2, 2)
	Lydian     = FromSteps(2, 2, 2, 1, 2, 2, 1)
	Mixolydian = FromSteps(2, 2, 1, 2, 2, 1, 2)
	Locrian    = FromSteps(1, 2, 2, 1, 2, 2, 2)

	MajorPentatonic = FromIntervals(2, 4, 7, 9, 12)
	MinorPentatonic = FromIntervals(3, 5, 7, 10, 12)
	Blues           = FromIntervals(3, 5, 6, 7, 10, 12)
	BebopDominant   = FromIntervals(2, 4, 5, 7, 9, 10, 11, 12)

	WholeTone           = FromSteps(2, 2, 2, 2, 2, 2)
	DiminishedWholeHalf = FromSteps(2, 1, 2, 1, 2, 1, 2, 1)
	DiminishedHalfWhole = FromSteps(1, 2, 1, 2, 1, 2, 1, 2)
	Chromatic           = FromSteps(1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1)
)

var byName = map[string]Scale{
	"major":                 Major,
	"natural-minor":         NaturalMinor,
	"harmonic-minor":        HarmonicMinor,
	"melodic-minor":         MelodicMinor,
	"dorian":                Dorian,
	"phrygian":              Phrygian,
	"lydian":                Lydian,
	"mixolydian":            Mixolydian,
	"locrian":               Locrian,
	"major-pentatonic":      MajorPentatonic,
	"minor-pentatonic":      MinorPentatonic,
	"blues":                 Blues,
	"bebop-dominant":        BebopDominant,
	"whole-tone":            WholeTone,
	"diminished-whole-half": DiminishedWholeHalf,
	"diminished-half-whole": DiminishedHalfWhole,
	"chromatic":             Chromatic,
}

func ByName(name string) (Scale, bool) {
	s, ok := byName[name]
	return s, ok
}

func Names() []string {
	return util.GetKeys(byName)
}
