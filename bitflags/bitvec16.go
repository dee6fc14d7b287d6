package bitflags

import "fmt"

// BitVec16 is a vector of 16 independent flags backed by a single uint16.
// Bit i of the raw value is position i, bit 0 is the least significant.
type BitVec16 struct {
	raw uint16
}

const bitVec16Capacity = 16

func checkIndex(index int) {
	if index < 0 || index >= bitVec16Capacity {
		panic(fmt.Sprintf("bitflags: index %d out of range [0, 16)", index))
	}
}

func FromU16(value uint16) BitVec16 {
	return BitVec16{raw: value}
}

func FromBools(bits [16]bool) BitVec16 {
	var value uint16
	for i, b := range bits {
		if b {
			value |= 1 << i
		}
	}
	return FromU16(value)
}

func (v BitVec16) Capacity() int {
	return bitVec16Capacity
}

func (v BitVec16) Inner() uint16 {
	return v.raw
}

// Bit reports whether position index is set. It panics if index is not in [0, 16).
func (v BitVec16) Bit(index int) bool {
	checkIndex(index)
	return v.raw&(1<<index) != 0
}

func (v BitVec16) Bits() [16]bool {
	var res [16]bool
	for i := range res {
		res[i] = v.raw&(1<<i) != 0
	}
	return res
}

func (v BitVec16) Iter() BitVec16Iter {
	return BitVec16Iter{vec: v}
}

// IndicesOn yields the positions of set bits in ascending order.
func (v BitVec16) IndicesOn() IndexIter {
	return IndexIter{vec: v, want: true}
}

// IndicesOff yields the positions of unset bits in ascending order.
func (v BitVec16) IndicesOff() IndexIter {
	return IndexIter{vec: v, want: false}
}

func (v BitVec16) String() string {
	return fmt.Sprintf("%016b", v.raw)
}

type BitVec16Iter struct {
	vec   BitVec16
	index int
}

func (it *BitVec16Iter) HasNext() bool {
	return it.index < bitVec16Capacity
}

func (it *BitVec16Iter) Next() bool {
	bit := it.vec.Bit(it.index)
	it.index++
	return bit
}

// Len returns the number of bits not yet visited.
func (it *BitVec16Iter) Len() int {
	return bitVec16Capacity - it.index
}

type IndexIter struct {
	vec   BitVec16
	want  bool
	index int
}

func (it *IndexIter) advance() {
	for it.index < bitVec16Capacity && it.vec.Bit(it.index) != it.want {
		it.index++
	}
}

func (it *IndexIter) HasNext() bool {
	it.advance()
	return it.index < bitVec16Capacity
}

func (it *IndexIter) Next() int {
	it.advance()
	checkIndex(it.index)
	res := it.index
	it.index++
	return res
}

// Collect drains the iterator. Meant for tests and display code.
func (it *IndexIter) Collect() []int {
	var res []int
	for it.HasNext() {
		res = append(res, it.Next())
	}
	return res
}

type BitVec16Builder struct {
	vec BitVec16
}

func NewBitVec16Builder() BitVec16Builder {
	return BitVec16Builder{}
}

func (b BitVec16Builder) SetIndex(index int) BitVec16Builder {
	checkIndex(index)
	return BitVec16Builder{vec: FromU16(b.vec.raw | 1<<index)}
}

func (b BitVec16Builder) Build() BitVec16 {
	return b.vec
}
