package chord

import "github.com/jsphweid/muzze/util"

var (
	MajorTriad      = WithRoot("major-triad").SetDegree(Third).SetDegree(Fifth).Build()
	MinorTriad      = WithRoot("minor-triad").SetDegree(FlatThird).SetDegree(Fifth).Build()
	DiminishedTriad = WithRoot("diminished-triad").SetDegree(FlatThird).SetDegree(FlatFifth).Build()
	AugmentedTriad  = WithRoot("augmented-triad").SetDegree(Third).SetDegree(SharpFifth).Build()

	MajorSeventh          = WithRoot("major-seventh").SetDegree(Third).SetDegree(Fifth).SetDegree(Seventh).Build()
	MinorSeventh          = WithRoot("minor-seventh").SetDegree(FlatThird).SetDegree(Fifth).SetDegree(FlatSeventh).Build()
	DominantSeventh       = WithRoot("dominant-seventh").SetDegree(Third).SetDegree(Fifth).SetDegree(FlatSeventh).Build()
	HalfDiminishedSeventh = WithRoot("half-diminished-seventh").SetDegree(FlatThird).SetDegree(FlatFifth).SetDegree(FlatSeventh).Build()
	DiminishedSeventh     = WithRoot("diminished-seventh").SetDegree(FlatThird).SetDegree(FlatFifth).SetDegree(DoubleFlatSeventh).Build()
	AugmentedSeventh      = WithRoot("augmented-seventh").SetDegree(Third).SetDegree(SharpFifth).SetDegree(FlatSeventh).Build()
	MinorMajorSeventh     = WithRoot("minor-major-seventh").SetDegree(FlatThird).SetDegree(Fifth).SetDegree(Seventh).Build()

	SixthChord      = WithRoot("sixth").SetDegree(Third).SetDegree(Fifth).SetDegree(Sixth).Build()
	MinorSixthChord = WithRoot("minor-sixth").SetDegree(FlatThird).SetDegree(Fifth).SetDegree(Sixth).Build()
	SixthNinthChord = WithRoot("sixth-ninth").SetDegree(Third).SetDegree(Fifth).SetDegree(Sixth).SetDegree(Ninth).Build()
	FifthChord      = WithRoot("fifth").SetDegree(Fifth).Build()

	DominantNinth = WithRoot("dominant-ninth").
		SetDegree(Third).SetDegree(Fifth).SetDegree(FlatSeventh).SetDegree(Ninth).Build()
	MinorNinth = WithRoot("minor-ninth").
		SetDegree(FlatThird).SetDegree(Fifth).SetDegree(FlatSeventh).SetDegree(Ninth).Build()
	MajorNinth = WithRoot("major-ninth").
		SetDegree(Third).SetDegree(Fifth).SetDegree(Seventh).SetDegree(Ninth).Build()
	// dominant eleventh, the major seventh version is MajorEleventh
	EleventhChord = WithRoot("eleventh").
		SetDegree(Third).SetDegree(Fifth).SetDegree(FlatSeventh).SetDegree(Ninth).SetDegree(Eleventh).Build()
	MinorEleventh = WithRoot("minor-eleventh").
		SetDegree(FlatThird).SetDegree(Fifth).SetDegree(FlatSeventh).SetDegree(Ninth).SetDegree(Eleventh).Build()
	MajorEleventh = WithRoot("major-eleventh").
		SetDegree(Third).SetDegree(Fifth).SetDegree(Seventh).SetDegree(Ninth).SetDegree(Eleventh).Build()
	ThirteenthChord = WithRoot("thirteenth").
		SetDegree(Third).SetDegree(Fifth).SetDegree(FlatSeventh).SetDegree(Ninth).SetDegree(Eleventh).SetDegree(Thirteenth).Build()
	MinorThirteenth = WithRoot("minor-thirteenth").
		SetDegree(FlatThird).SetDegree(Fifth).SetDegree(FlatSeventh).SetDegree(Ninth).SetDegree(Eleventh).SetDegree(Thirteenth).Build()
	MajorThirteenth = WithRoot("major-thirteenth").
		SetDegree(Third).SetDegree(Fifth).SetDegree(Seventh).SetDegree(Ninth).SetDegree(Eleventh).SetDegree(Thirteenth).Build()

	SuspendedSecond = WithRoot("suspended-second").SetDegree(Second).SetDegree(Fifth).Build()
	SuspendedFourth = WithRoot("suspended-fourth").SetDegree(Fourth).SetDegree(Fifth).Build()
	AddedSecond     = WithRoot("added-second").SetDegree(Second).SetDegree(Third).SetDegree(Fifth).Build()
	AddedNinth      = WithRoot("added-ninth").SetDegree(Third).SetDegree(Fifth).SetDegree(Ninth).Build()
	AddedEleventh   = WithRoot("added-eleventh").SetDegree(Third).SetDegree(Fifth).SetDegree(Eleventh).Build()

	DominantSeventhFlatFive  = WithRoot("dominant-seventh-flat-five").SetDegree(Third).SetDegree(FlatFifth).SetDegree(FlatSeventh).Build()
	// same tones as AugmentedSeventh, spelled the way lead sheets write it
	DominantSeventhSharpFive = WithRoot("dominant-seventh-sharp-five").SetDegree(Third).SetDegree(SharpFifth).SetDegree(FlatSeventh).Build()
)

// ordered from simplest to most extended, Identify reports matches in this order
var all = []Chord{
	FifthChord,
	MajorTriad, MinorTriad, DiminishedTriad, AugmentedTriad,
	SuspendedSecond, SuspendedFourth,
	MajorSeventh, MinorSeventh, DominantSeventh, HalfDiminishedSeventh,
	DiminishedSeventh, AugmentedSeventh, MinorMajorSeventh,
	SixthChord, MinorSixthChord,
	AddedSecond, AddedNinth, AddedEleventh,
	DominantSeventhFlatFive, DominantSeventhSharpFive,
	SixthNinthChord, DominantNinth, MinorNinth, MajorNinth,
	EleventhChord, MinorEleventh, MajorEleventh,
	ThirteenthChord, MinorThirteenth, MajorThirteenth,
}

var byName = func() map[string]Chord {
	res := make(map[string]Chord, len(all))
	for _, c := range all {
		res[c.Name()] = c
	}
	return res
}()

func All() []Chord {
	res := make([]Chord, len(all))
	copy(res, all)
	return res
}

func ByName(name string) (Chord, bool) {
	c, ok := byName[name]
	return c, ok
}

func Names() []string {
	return util.GetKeys(byName)
}
