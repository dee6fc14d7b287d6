package chord

import (
	"github.com/jsphweid/muzze/bitflags"
	"golang.org/x/exp/slices"
)

type Match struct {
	// lowest of the given notes carrying the root's pitch class
	Root  uint8
	Chord Chord
}

// pitchClasses folds notes into a 12-bit mask, bit n set for pitch class n.
func pitchClasses(notes []uint8) bitflags.BitVec16 {
	b := bitflags.NewBitVec16Builder()
	for _, n := range notes {
		b = b.SetIndex(int(n % 12))
	}
	return b.Build()
}

func (c Chord) pitchClassesFrom(root uint8) bitflags.BitVec16 {
	b := bitflags.NewBitVec16Builder()
	it := c.Degrees()
	for it.HasNext() {
		pc := ((int(root%12)+it.Next().Semitones())%12 + 12) % 12
		b = b.SetIndex(pc)
	}
	return b.Build()
}

// Identify finds every catalog chord whose pitch classes equal those of notes,
// trying each note as the root from the lowest upwards.
func Identify(notes []uint8) []Match {
	if len(notes) == 0 {
		return nil
	}
	sorted := make([]uint8, len(notes))
	copy(sorted, notes)
	slices.Sort(sorted)

	target := pitchClasses(sorted)
	seen := bitflags.NewBitVec16Builder()
	var res []Match
	for _, root := range sorted {
		pc := int(root % 12)
		if seen.Build().Bit(pc) {
			continue
		}
		seen = seen.SetIndex(pc)
		for _, c := range all {
			if c.pitchClassesFrom(root) == target {
				res = append(res, Match{Root: root, Chord: c})
			}
		}
	}
	return res
}
