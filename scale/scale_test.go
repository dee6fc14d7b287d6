package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collectIntervals(s Scale) []uint8 {
	var res []uint8
	it := s.Intervals()
	for it.HasNext() {
		res = append(res, it.Next())
	}
	return res
}

func collectSteps(s Scale) []uint8 {
	var res []uint8
	it := s.Steps()
	for it.HasNext() {
		res = append(res, it.Next())
	}
	return res
}

func collectPitches(s Scale, root uint8) []uint8 {
	var res []uint8
	it := s.Apply(root)
	for it.HasNext() {
		res = append(res, it.Next())
	}
	return res
}

func TestNamedScales(t *testing.T) {
	cases := []struct {
		name      string
		scale     Scale
		intervals []uint8
		steps     []uint8
	}{
		{"major", Major, []uint8{2, 4, 5, 7, 9, 11, 12}, []uint8{2, 2, 1, 2, 2, 2, 1}},
		{"natural minor", NaturalMinor, []uint8{2, 3, 5, 7, 8, 10, 12}, []uint8{2, 1, 2, 2, 1, 2, 2}},
		{"harmonic minor", HarmonicMinor, []uint8{2, 3, 5, 7, 8, 11, 12}, []uint8{2, 1, 2, 2, 1, 3, 1}},
		{"melodic minor", MelodicMinor, []uint8{2, 3, 5, 7, 9, 11, 12}, []uint8{2, 1, 2, 2, 2, 2, 1}},
		{"dorian", Dorian, []uint8{2, 3, 5, 7, 9, 10, 12}, []uint8{2, 1, 2, 2, 2, 1, 2}},
		{"major pentatonic", MajorPentatonic, []uint8{2, 4, 7, 9, 12}, []uint8{2, 2, 3, 2, 3}},
		{"blues", Blues, []uint8{3, 5, 6, 7, 10, 12}, []uint8{3, 2, 1, 1, 3, 2}},
		{"whole tone", WholeTone, []uint8{2, 4, 6, 8, 10, 12}, []uint8{2, 2, 2, 2, 2, 2}},
		{"chromatic", Chromatic, []uint8{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, []uint8{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert := assert.New(t)
			assert.Equal(c.intervals, collectIntervals(c.scale))
			assert.Equal(c.steps, collectSteps(c.scale))
			assert.Equal(len(c.intervals), c.scale.Len())
		})
	}
}

func TestApply(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]uint8{60, 62, 64, 65, 67, 69, 71, 72}, collectPitches(Major, 60))
	assert.Equal([]uint8{60, 62, 63, 65, 67, 68, 70, 72}, collectPitches(NaturalMinor, 60))
}

func TestEmptyScale(t *testing.T) {
	assert := assert.New(t)
	empty := FromU16(0)
	assert.Nil(collectIntervals(empty))
	assert.Nil(collectSteps(empty))
	assert.Equal([]uint8{48}, collectPitches(empty, 48))
	assert.Equal(0, empty.Len())
}

func TestHighestInterval(t *testing.T) {
	assert := assert.New(t)
	s := FromU16(0x8000)
	assert.Equal([]uint8{16}, collectIntervals(s))
	assert.True(s.Contains(16))
	assert.False(s.Contains(17))
	assert.False(s.Contains(0))
}

func TestIntervalsStrictlyIncreasing(t *testing.T) {
	for v := 0; v <= 0xFFFF; v += 31 {
		intervals := collectIntervals(FromU16(uint16(v)))
		for i := 1; i < len(intervals); i++ {
			if intervals[i] <= intervals[i-1] {
				t.Fatalf("intervals of %016b not increasing: %v", v, intervals)
			}
		}
	}
}

func TestStepsSumToLastInterval(t *testing.T) {
	for v := 1; v <= 0xFFFF; v += 37 {
		s := FromU16(uint16(v))
		intervals := collectIntervals(s)
		steps := collectSteps(s)
		assert.Equal(t, len(intervals), len(steps))
		var total uint8
		for _, step := range steps {
			total += step
		}
		assert.Equal(t, intervals[len(intervals)-1], total)
	}
}

func TestIteratorsRestart(t *testing.T) {
	assert := assert.New(t)
	first := collectIntervals(Major)
	second := collectIntervals(Major)
	assert.Equal(first, second)
}

func TestBuilderEquivalence(t *testing.T) {
	assert := assert.New(t)
	byIntervals := NewBuilder().
		SetInterval(2).
		SetInterval(4).
		SetInterval(5).
		SetInterval(7).
		SetInterval(9).
		SetInterval(11).
		SetInterval(12).
		Build()
	bySteps := NewStepBuilder().
		AddStep(2).
		AddStep(2).
		AddStep(1).
		AddStep(2).
		AddStep(2).
		AddStep(2).
		AddStep(1).
		Build()
	assert.Equal(Major.Raw(), byIntervals.Raw())
	assert.Equal(Major.Raw(), bySteps.Raw())
}

func TestBuilderEquivalenceForCatalog(t *testing.T) {
	for _, name := range Names() {
		s, _ := ByName(name)
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			assert.Equal(s, FromIntervals(collectIntervals(s)...))
			assert.Equal(s, FromSteps(collectSteps(s)...))
		})
	}
}

func TestBuilderRejectsBadInterval(t *testing.T) {
	assert := assert.New(t)
	assert.Panics(func() { NewBuilder().SetInterval(0) })
	assert.Panics(func() { NewBuilder().SetInterval(17) })
	assert.Panics(func() { NewStepBuilder().AddStep(10).AddStep(7) })
	// 10 + 250 wraps to 4 in a byte
	assert.Panics(func() { FromSteps(10, 250) })
	assert.Panics(func() { NewStepBuilder().AddStep(255) })
	assert.NotPanics(func() { FromSteps(10, 6) })
	assert.NotPanics(func() { NewBuilder().SetInterval(16) })
}

func TestBuilderIsSingleUse(t *testing.T) {
	assert := assert.New(t)
	b := NewBuilder().SetInterval(3)
	b.Build()
	assert.Panics(func() { b.Build() })
	assert.Panics(func() { b.SetInterval(5) })

	sb := NewStepBuilder().AddStep(2)
	sb.Build()
	assert.Panics(func() { sb.AddStep(2) })
}

func TestCatalog(t *testing.T) {
	assert := assert.New(t)
	s, ok := ByName("major")
	assert.True(ok)
	assert.Equal(Major, s)
	_, ok = ByName("nope")
	assert.False(ok)

	names := Names()
	assert.Len(names, 17)
	assert.Equal("bebop-dominant", names[0])
}

func TestString(t *testing.T) {
	assert.Equal(t, "[W-W-H-W-W-W-H]", Major.String())
	assert.Equal(t, "[W-H-W-W-H-WH-H]", HarmonicMinor.String())
	assert.Equal(t, "[]", FromU16(0).String())
}
