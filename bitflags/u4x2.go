package bitflags

const (
	firstMask  = 0b0000_1111
	secondMask = 0b1111_0000
	pairShift  = 4
)

// U4x2 holds two 4-bit values in one byte: first in the low nibble,
// second in the high nibble.
type U4x2 struct {
	raw uint8
}

// NewU4x2 panics if first or second is greater than 15.
func NewU4x2(first, second uint8) U4x2 {
	checkItem(first)
	checkItem(second)
	return U4x2{raw: second<<pairShift | first}
}

func FromU8(value uint8) U4x2 {
	return U4x2{raw: value}
}

func (p U4x2) Inner() uint8 {
	return p.raw
}

func (p U4x2) First() uint8 {
	return p.raw & firstMask
}

func (p U4x2) Second() uint8 {
	return (p.raw & secondMask) >> pairShift
}
