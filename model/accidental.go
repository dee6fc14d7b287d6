package model

import (
	"github.com/jsphweid/muzze/bitflags"
	"github.com/pkg/errors"
)

// Accidental alters a note's pitch. The codes fit in a nibble.
type Accidental uint8

const (
	Natural     Accidental = 0
	Flat        Accidental = 2
	DoubleFlat  Accidental = 3
	Sharp       Accidental = 8
	DoubleSharp Accidental = 9
	Reset       Accidental = 15
)

var ErrInvalidAccidental = errors.New("invalid accidental")

var accidentalSymbols = map[Accidental]string{
	Natural:     "",
	Flat:        "♭",
	DoubleFlat:  "♭♭",
	Sharp:       "♯",
	DoubleSharp: "♯♯",
	Reset:       "♮",
}

// ParseAccidental decodes a raw code, which may come from untrusted data.
func ParseAccidental(value uint8) (Accidental, error) {
	a := Accidental(value)
	if _, ok := accidentalSymbols[a]; !ok {
		return Natural, errors.Wrapf(ErrInvalidAccidental, "value %d", value)
	}
	return a, nil
}

// Semitones is the pitch offset the accidental applies. Reset cancels a
// previous accidental and so moves nothing on its own.
func (a Accidental) Semitones() int {
	switch a {
	case Flat:
		return -1
	case DoubleFlat:
		return -2
	case Sharp:
		return 1
	case DoubleSharp:
		return 2
	}
	return 0
}

func (a Accidental) String() string {
	return accidentalSymbols[a]
}

// PackAccidentals puts two accidentals in one byte, a in the low nibble.
func PackAccidentals(a Accidental, b Accidental) bitflags.U4x2 {
	return bitflags.NewU4x2(uint8(a), uint8(b))
}

func UnpackAccidentals(p bitflags.U4x2) (Accidental, Accidental, error) {
	a, err := ParseAccidental(p.First())
	if err != nil {
		return Natural, Natural, errors.Wrap(err, "first accidental")
	}
	b, err := ParseAccidental(p.Second())
	if err != nil {
		return Natural, Natural, errors.Wrap(err, "second accidental")
	}
	return a, b, nil
}
