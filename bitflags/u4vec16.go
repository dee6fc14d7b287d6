package bitflags

import "fmt"

const (
	itemMask     = 0b1111
	itemSize     = 4
	itemMaxValue = 15
)

// U4Vec16 packs sixteen 4-bit unsigned fields into a uint64. Field i
// occupies bits [4i, 4i+4), field 0 is the least significant nibble.
type U4Vec16 struct {
	raw uint64
}

func checkItem(value uint8) {
	if value > itemMaxValue {
		panic(fmt.Sprintf("bitflags: value %d does not fit in 4 bits", value))
	}
}

func FromU64(value uint64) U4Vec16 {
	return U4Vec16{raw: value}
}

// FromItems packs items in order. It panics if any item is greater than 15.
func FromItems(items [16]uint8) U4Vec16 {
	var value uint64
	for i, item := range items {
		checkItem(item)
		value |= uint64(item) << (itemSize * i)
	}
	return FromU64(value)
}

func (v U4Vec16) Capacity() int {
	return bitVec16Capacity
}

func (v U4Vec16) Inner() uint64 {
	return v.raw
}

func (v U4Vec16) Item(index int) uint8 {
	checkIndex(index)
	return uint8((v.raw >> (itemSize * index)) & itemMask)
}

// ResetItem clears field index, leaving every other field untouched.
func (v U4Vec16) ResetItem(index int) U4Vec16 {
	current := uint64(v.Item(index))
	return FromU64(v.raw ^ current<<(itemSize*index))
}

// SetItem returns a copy of v with field index holding value. Values that do
// not fit in 4 bits are rejected with a panic, same as NewU4x2.
func (v U4Vec16) SetItem(index int, value uint8) U4Vec16 {
	checkItem(value)
	cleared := v.ResetItem(index)
	return FromU64(cleared.raw | (uint64(value)&itemMask)<<(itemSize*index))
}

func (v U4Vec16) Items() [16]uint8 {
	var res [16]uint8
	for i := range res {
		res[i] = v.Item(i)
	}
	return res
}

func (v U4Vec16) Iter() U4Vec16Iter {
	return U4Vec16Iter{vec: v}
}

func (v U4Vec16) String() string {
	return fmt.Sprintf("%016X", v.raw)
}

type U4Vec16Iter struct {
	vec   U4Vec16
	index int
}

func (it *U4Vec16Iter) HasNext() bool {
	return it.index < bitVec16Capacity
}

// Next returns the current field and its index, then advances.
func (it *U4Vec16Iter) Next() (int, uint8) {
	index := it.index
	item := it.vec.Item(index)
	it.index++
	return index, item
}

func (it *U4Vec16Iter) Len() int {
	return bitVec16Capacity - it.index
}

type U4Vec16Builder struct {
	vec U4Vec16
}

func NewU4Vec16Builder() U4Vec16Builder {
	return U4Vec16Builder{}
}

func (b U4Vec16Builder) SetItem(index int, value uint8) U4Vec16Builder {
	return U4Vec16Builder{vec: b.vec.SetItem(index, value)}
}

func (b U4Vec16Builder) Build() U4Vec16 {
	return b.vec
}
