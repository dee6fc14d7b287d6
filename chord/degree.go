package chord

import (
	"fmt"

	"github.com/jsphweid/muzze/bitflags"
	"github.com/pkg/errors"
)

// DegreeAccidental is the code stored in a chord slot. Zero is reserved for
// an absent degree and is never a valid accidental.
type DegreeAccidental uint8

const (
	Natural    DegreeAccidental = 1
	Flat       DegreeAccidental = 2
	DoubleFlat DegreeAccidental = 3
	Sharp      DegreeAccidental = 4
)

var (
	ErrInvalidAccidental = errors.New("invalid degree accidental")
	ErrInvalidDegree     = errors.New("invalid degree")
)

func ParseDegreeAccidental(value uint8) (DegreeAccidental, error) {
	switch a := DegreeAccidental(value); a {
	case Natural, Flat, DoubleFlat, Sharp:
		return a, nil
	}
	return 0, errors.Wrapf(ErrInvalidAccidental, "value %d", value)
}

func (a DegreeAccidental) Semitones() int {
	switch a {
	case Flat:
		return -1
	case DoubleFlat:
		return -2
	case Sharp:
		return 1
	}
	return 0
}

func (a DegreeAccidental) String() string {
	switch a {
	case Flat:
		return "♭"
	case DoubleFlat:
		return "♭♭"
	case Sharp:
		return "♯"
	}
	return ""
}

// semitones above the root of each natural degree, the major scale spelled
// across two octaves
var degreeSemitones = [16]int{0, 2, 4, 5, 7, 9, 11, 12, 14, 16, 17, 19, 21, 23, 24, 26}

type Degree struct {
	Number     uint8
	Accidental DegreeAccidental
}

func NewDegree(number uint8, accidental DegreeAccidental) Degree {
	return Degree{Number: number, Accidental: accidental}
}

var (
	Root              = NewDegree(1, Natural)
	Second            = NewDegree(2, Natural)
	Third             = NewDegree(3, Natural)
	FlatThird         = NewDegree(3, Flat)
	Fourth            = NewDegree(4, Natural)
	Fifth             = NewDegree(5, Natural)
	FlatFifth         = NewDegree(5, Flat)
	SharpFifth        = NewDegree(5, Sharp)
	Sixth             = NewDegree(6, Natural)
	Seventh           = NewDegree(7, Natural)
	FlatSeventh       = NewDegree(7, Flat)
	DoubleFlatSeventh = NewDegree(7, DoubleFlat)
	Ninth             = NewDegree(9, Natural)
	Eleventh          = NewDegree(11, Natural)
	Thirteenth        = NewDegree(13, Natural)
)

func (d Degree) valid() bool {
	return d.Number >= 1 && d.Number <= 16
}

// Semitones is the distance of the degree above the chord root.
func (d Degree) Semitones() int {
	if !d.valid() {
		panic(fmt.Sprintf("chord: degree %d out of range [1, 16]", d.Number))
	}
	return degreeSemitones[d.Number-1] + d.Accidental.Semitones()
}

// Pack stores the slot index (Number-1) in the low nibble and the
// accidental code in the high nibble.
func (d Degree) Pack() bitflags.U4x2 {
	if !d.valid() {
		panic(fmt.Sprintf("chord: degree %d out of range [1, 16]", d.Number))
	}
	return bitflags.NewU4x2(d.Number-1, uint8(d.Accidental))
}

func UnpackDegree(p bitflags.U4x2) (Degree, error) {
	acc, err := ParseDegreeAccidental(p.Second())
	if err != nil {
		return Degree{}, errors.Wrapf(err, "unpacking %#02x", p.Inner())
	}
	return NewDegree(p.First()+1, acc), nil
}

func (d Degree) String() string {
	if d.Number == 1 {
		return "R"
	}
	return fmt.Sprintf("%v%d", d.Accidental, d.Number)
}
