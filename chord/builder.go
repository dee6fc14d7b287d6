package chord

import (
	"fmt"

	"github.com/jsphweid/muzze/bitflags"
)

// Builder assembles a Chord. It starts with the root present and can be
// built once.
type Builder struct {
	name  string
	slots bitflags.U4Vec16Builder
	built bool
}

func WithRoot(name string) *Builder {
	b := &Builder{name: name, slots: bitflags.NewU4Vec16Builder()}
	return b.SetDegree(Root)
}

// SetDegree records d, replacing any accidental already set for the same
// degree number.
func (b *Builder) SetDegree(d Degree) *Builder {
	if b.built {
		panic("chord: builder used after Build")
	}
	if !d.valid() {
		panic(fmt.Sprintf("chord: degree %d out of range [1, 16]", d.Number))
	}
	if _, err := ParseDegreeAccidental(uint8(d.Accidental)); err != nil {
		panic(fmt.Sprintf("chord: %v", err))
	}
	b.slots = b.slots.SetItem(int(d.Number)-1, uint8(d.Accidental))
	return b
}

func (b *Builder) Build() Chord {
	if b.built {
		panic("chord: builder used after Build")
	}
	b.built = true
	return Chord{name: b.name, slots: b.slots.Build()}
}
