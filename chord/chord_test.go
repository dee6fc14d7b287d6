package chord

import (
	"fmt"
	"testing"

	"github.com/jsphweid/muzze/bitflags"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestAccidentalDisplay(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("", Natural.String())
	assert.Equal("♭", Flat.String())
	assert.Equal("♭♭", DoubleFlat.String())
	assert.Equal("♯", Sharp.String())
}

func TestParseDegreeAccidental(t *testing.T) {
	for code := uint8(1); code <= 4; code++ {
		t.Run(fmt.Sprintf("code %d", code), func(t *testing.T) {
			acc, err := ParseDegreeAccidental(code)
			assert.NoError(t, err)
			assert.Equal(t, code, uint8(acc))
		})
	}

	for _, code := range []uint8{0, 5, 15, 255} {
		t.Run(fmt.Sprintf("invalid code %d", code), func(t *testing.T) {
			_, err := ParseDegreeAccidental(code)
			assert.True(t, errors.Is(err, ErrInvalidAccidental))
		})
	}
}

func TestDegreeDisplay(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("R", Root.String())
	assert.Equal("3", Third.String())
	assert.Equal("♭3", FlatThird.String())
	assert.Equal("♯5", SharpFifth.String())
	assert.Equal("♭♭7", DoubleFlatSeventh.String())
	assert.Equal("♯2", NewDegree(2, Sharp).String())
}

func TestDegreeSemitones(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0, Root.Semitones())
	assert.Equal(4, Third.Semitones())
	assert.Equal(3, FlatThird.Semitones())
	assert.Equal(8, SharpFifth.Semitones())
	assert.Equal(9, DoubleFlatSeventh.Semitones())
	assert.Equal(14, Ninth.Semitones())
	assert.Equal(21, Thirteenth.Semitones())
	assert.Panics(func() { NewDegree(17, Natural).Semitones() })
}

func TestDegreePack(t *testing.T) {
	assert := assert.New(t)
	p := FlatSeventh.Pack()
	assert.Equal(uint8(6), p.First())
	assert.Equal(uint8(Flat), p.Second())

	d, err := UnpackDegree(p)
	assert.NoError(err)
	assert.Equal(FlatSeventh, d)

	top := NewDegree(16, Sharp)
	d, err = UnpackDegree(top.Pack())
	assert.NoError(err)
	assert.Equal(top, d)

	_, err = UnpackDegree(bitflags.NewU4x2(2, 0))
	assert.True(errors.Is(err, ErrInvalidAccidental))
	assert.Panics(func() { NewDegree(0, Natural).Pack() })
}

func TestMajorTriadScenario(t *testing.T) {
	assert := assert.New(t)
	c := WithRoot("major triad").
		SetDegree(NewDegree(3, Natural)).
		SetDegree(NewDegree(5, Natural)).
		Build()
	d := c.Degrees()
	assert.Equal([]Degree{{1, Natural}, {3, Natural}, {5, Natural}}, d.Collect())
	assert.Equal("major triad", c.Name())
	assert.Equal(uint64(0x0001_0101), c.Raw())
}

func TestWithRootOnly(t *testing.T) {
	assert := assert.New(t)
	c := WithRoot("root").Build()
	d := c.Degrees()
	assert.Equal([]Degree{Root}, d.Collect())
	assert.Equal(1, c.Len())
	assert.Equal("R", c.String())
}

func TestSetDegreeLastWriteWins(t *testing.T) {
	assert := assert.New(t)
	c := WithRoot("x").SetDegree(Third).SetDegree(FlatThird).Build()
	d := c.Degrees()
	assert.Equal([]Degree{Root, FlatThird}, d.Collect())
	acc, ok := c.Accidental(3)
	assert.True(ok)
	assert.Equal(Flat, acc)
}

func TestDegreesSkipAbsentSlots(t *testing.T) {
	assert := assert.New(t)
	c := WithRoot("spread").SetDegree(NewDegree(16, Sharp)).SetDegree(FlatSeventh).Build()
	d := c.Degrees()
	assert.Equal([]Degree{Root, FlatSeventh, NewDegree(16, Sharp)}, d.Collect())
	assert.True(c.Has(16))
	assert.False(c.Has(2))
	assert.False(c.Has(0))
	assert.False(c.Has(17))
}

func TestBuilderContract(t *testing.T) {
	assert := assert.New(t)
	assert.Panics(func() { WithRoot("x").SetDegree(NewDegree(0, Natural)) })
	assert.Panics(func() { WithRoot("x").SetDegree(NewDegree(17, Natural)) })
	assert.Panics(func() { WithRoot("x").SetDegree(NewDegree(3, DegreeAccidental(9))) })

	b := WithRoot("once")
	b.Build()
	assert.Panics(func() { b.Build() })
	assert.Panics(func() { b.SetDegree(Third) })
}

func TestBuilderMatchesDirectPacking(t *testing.T) {
	built := WithRoot("m7").SetDegree(FlatThird).SetDegree(Fifth).SetDegree(FlatSeventh).Build()
	direct := bitflags.NewU4Vec16Builder().
		SetItem(0, uint8(Natural)).
		SetItem(2, uint8(Flat)).
		SetItem(4, uint8(Natural)).
		SetItem(6, uint8(Flat)).
		Build()
	assert.Equal(t, direct.Inner(), built.Raw())
	assert.Equal(t, MinorSeventh.Raw(), built.Raw())
}

func TestFromRaw(t *testing.T) {
	assert := assert.New(t)
	c, err := FromRaw("decoded", DominantSeventh.Raw())
	assert.NoError(err)
	assert.Equal(DominantSeventh.Raw(), c.Raw())
	assert.Equal("R-3-5-♭7", c.String())

	_, err = FromRaw("bad", 0x0000_0501)
	assert.Error(err)
	assert.True(errors.Is(err, ErrInvalidAccidental))
	assert.Contains(err.Error(), "degree 3")

	empty, err := FromRaw("empty", 0)
	assert.NoError(err)
	assert.Equal(0, empty.Len())
}

func TestDegreeOrdering(t *testing.T) {
	for _, c := range All() {
		it := c.Degrees()
		var last uint8
		for it.HasNext() {
			d := it.Next()
			assert.Greater(t, d.Number, last, c.Name())
			assert.NotZero(t, uint8(d.Accidental), c.Name())
			last = d.Number
		}
	}
}

func TestDegreeIterExhausted(t *testing.T) {
	it := MajorTriad.Degrees()
	it.Collect()
	assert.False(t, it.HasNext())
	assert.Panics(t, func() { it.Next() })
}

func TestCatalog(t *testing.T) {
	cases := []struct {
		chord    Chord
		expected string
	}{
		{MajorTriad, "R-3-5"},
		{MinorTriad, "R-♭3-5"},
		{DiminishedTriad, "R-♭3-♭5"},
		{AugmentedTriad, "R-3-♯5"},
		{MajorSeventh, "R-3-5-7"},
		{MinorSeventh, "R-♭3-5-♭7"},
		{DominantSeventh, "R-3-5-♭7"},
		{HalfDiminishedSeventh, "R-♭3-♭5-♭7"},
		{DiminishedSeventh, "R-♭3-♭5-♭♭7"},
		{SixthNinthChord, "R-3-5-6-9"},
		{FifthChord, "R-5"},
		{ThirteenthChord, "R-3-5-♭7-9-11-13"},
		{SuspendedFourth, "R-4-5"},
		{DominantSeventhSharpFive, "R-3-♯5-♭7"},
		{EleventhChord, "R-3-5-♭7-9-11"},
		{MajorEleventh, "R-3-5-7-9-11"},
	}
	for _, c := range cases {
		t.Run(c.chord.Name(), func(t *testing.T) {
			assert.Equal(t, c.expected, c.chord.String())
			found, ok := ByName(c.chord.Name())
			assert.True(t, ok)
			assert.Equal(t, c.chord, found)
		})
	}
	assert.Len(t, All(), 31)
	assert.Len(t, Names(), 31)
}

func TestApply(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]uint8{60, 64, 67}, MajorTriad.Apply(60))
	assert.Equal([]uint8{57, 60, 64, 67}, MinorSeventh.Apply(57))
	assert.Equal([]uint8{60, 63, 66, 69}, DiminishedSeventh.Apply(60))
	assert.Equal([]uint8{48, 52, 55, 58, 62}, DominantNinth.Apply(48))
}

func TestCatalogRawValuesAreDistinct(t *testing.T) {
	synonyms := map[string]string{"dominant-seventh-sharp-five": "augmented-seventh"}
	seen := make(map[uint64]string)
	for _, c := range All() {
		if other, ok := seen[c.Raw()]; ok {
			assert.Equal(t, synonyms[c.Name()], other, "%s and %s share raw value %#x", c.Name(), other, c.Raw())
			continue
		}
		seen[c.Raw()] = c.Name()
	}
	assert.NotEqual(t, EleventhChord.Raw(), MajorEleventh.Raw())
}
