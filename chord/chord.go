package chord

import (
	"strings"

	"github.com/jsphweid/muzze/bitflags"
	"github.com/pkg/errors"
)

// Chord is a set of scale degrees with their accidentals. Slot i of the
// packed vector holds the accidental code of degree i+1, zero when the
// degree is absent.
type Chord struct {
	name  string
	slots bitflags.U4Vec16
}

// FromRaw decodes a packed chord from data that may not have come from a
// Builder. Every non-zero slot must hold a known accidental code.
func FromRaw(name string, raw uint64) (Chord, error) {
	slots := bitflags.FromU64(raw)
	it := slots.Iter()
	for it.HasNext() {
		index, code := it.Next()
		if code == 0 {
			continue
		}
		if _, err := ParseDegreeAccidental(code); err != nil {
			return Chord{}, errors.Wrapf(err, "degree %d of %q", index+1, name)
		}
	}
	return Chord{name: name, slots: slots}, nil
}

func (c Chord) Name() string {
	return c.name
}

func (c Chord) Raw() uint64 {
	return c.slots.Inner()
}

// Degrees yields the present degrees in ascending order.
func (c Chord) Degrees() DegreeIter {
	return DegreeIter{slots: c.slots.Iter()}
}

func (c Chord) Has(number uint8) bool {
	if number < 1 || number > 16 {
		return false
	}
	return c.slots.Item(int(number)-1) != 0
}

func (c Chord) Accidental(number uint8) (DegreeAccidental, bool) {
	if !c.Has(number) {
		return 0, false
	}
	return DegreeAccidental(c.slots.Item(int(number) - 1)), true
}

func (c Chord) Len() int {
	var n int
	it := c.Degrees()
	for it.HasNext() {
		it.Next()
		n++
	}
	return n
}

// Semitones returns the distance of every degree above the root, in degree order.
func (c Chord) Semitones() []int {
	var res []int
	it := c.Degrees()
	for it.HasNext() {
		res = append(res, it.Next().Semitones())
	}
	return res
}

// Apply spells the chord upwards from root. The addition is not checked for
// overflow.
func (c Chord) Apply(root uint8) []uint8 {
	var res []uint8
	for _, s := range c.Semitones() {
		res = append(res, uint8(int(root)+s))
	}
	return res
}

func (c Chord) String() string {
	var parts []string
	it := c.Degrees()
	for it.HasNext() {
		parts = append(parts, it.Next().String())
	}
	return strings.Join(parts, "-")
}

type DegreeIter struct {
	slots bitflags.U4Vec16Iter
	next  Degree
	ready bool
}

func (it *DegreeIter) advance() {
	for !it.ready && it.slots.HasNext() {
		index, code := it.slots.Next()
		if code != 0 {
			it.next = NewDegree(uint8(index+1), DegreeAccidental(code))
			it.ready = true
		}
	}
}

func (it *DegreeIter) HasNext() bool {
	it.advance()
	return it.ready
}

func (it *DegreeIter) Next() Degree {
	it.advance()
	if !it.ready {
		panic("chord: Next called on exhausted DegreeIter")
	}
	it.ready = false
	return it.next
}

func (it *DegreeIter) Collect() []Degree {
	var res []Degree
	for it.HasNext() {
		res = append(res, it.Next())
	}
	return res
}
