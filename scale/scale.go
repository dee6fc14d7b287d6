package scale

import (
	"fmt"
	"math/bits"

	"github.com/jsphweid/muzze/bitflags"
	"github.com/jsphweid/muzze/model"
)

// Scale is a set of semitone intervals above a root. Bit i of the raw value
// means interval i+1 belongs to the scale, so intervals 1 through 16 can be
// represented. The root itself is implicit.
type Scale struct {
	bits bitflags.BitVec16
}

func FromU16(value uint16) Scale {
	return Scale{bits: bitflags.FromU16(value)}
}

func (s Scale) Raw() uint16 {
	return s.bits.Inner()
}

func (s Scale) Bits() bitflags.BitVec16 {
	return s.bits
}

func (s Scale) Len() int {
	return bits.OnesCount16(s.bits.Inner())
}

func (s Scale) Contains(interval uint8) bool {
	if interval < 1 || interval > 16 {
		return false
	}
	return s.bits.Bit(int(interval) - 1)
}

// Intervals yields member intervals in ascending order.
func (s Scale) Intervals() IntervalIter {
	return IntervalIter{on: s.bits.IndicesOn()}
}

// Steps yields the gaps between consecutive intervals, the first one
// measured from the root.
func (s Scale) Steps() StepIter {
	return StepIter{intervals: s.Intervals()}
}

// Apply yields root followed by root+interval for every interval. The
// addition is not checked for overflow.
func (s Scale) Apply(root uint8) PitchIter {
	return PitchIter{root: root, intervals: s.Intervals()}
}

func (s Scale) String() string {
	var res string
	it := s.Steps()
	for it.HasNext() {
		if res != "" {
			res += "-"
		}
		res += model.Step(it.Next()).String()
	}
	return fmt.Sprintf("[%s]", res)
}

type IntervalIter struct {
	on bitflags.IndexIter
}

func (it *IntervalIter) HasNext() bool {
	return it.on.HasNext()
}

func (it *IntervalIter) Next() uint8 {
	return uint8(it.on.Next() + 1)
}

type StepIter struct {
	intervals IntervalIter
	last      uint8
}

func (it *StepIter) HasNext() bool {
	return it.intervals.HasNext()
}

func (it *StepIter) Next() uint8 {
	interval := it.intervals.Next()
	step := interval - it.last
	it.last = interval
	return step
}

type PitchIter struct {
	root      uint8
	intervals IntervalIter
	rootDone  bool
}

func (it *PitchIter) HasNext() bool {
	return !it.rootDone || it.intervals.HasNext()
}

func (it *PitchIter) Next() uint8 {
	if !it.rootDone {
		it.rootDone = true
		return it.root
	}
	return it.root + it.intervals.Next()
}
