package scale

import (
	"fmt"

	"github.com/jsphweid/muzze/bitflags"
)

// Builder assembles a Scale from absolute intervals. It is single use:
// once Build has been called any further call panics.
type Builder struct {
	vec   bitflags.BitVec16Builder
	built bool
}

func NewBuilder() *Builder {
	return &Builder{vec: bitflags.NewBitVec16Builder()}
}

func (b *Builder) checkOpen() {
	if b.built {
		panic("scale: builder used after Build")
	}
}

// SetInterval adds interval n, which must be in 1..16.
func (b *Builder) SetInterval(n uint8) *Builder {
	b.checkOpen()
	if n < 1 || n > 16 {
		panic(fmt.Sprintf("scale: interval %d out of range [1, 16]", n))
	}
	b.vec = b.vec.SetIndex(int(n) - 1)
	return b
}

func (b *Builder) Build() Scale {
	b.checkOpen()
	b.built = true
	return Scale{bits: b.vec.Build()}
}

// StepBuilder assembles a Scale from relative steps, keeping a running
// total and forwarding it to a Builder.
type StepBuilder struct {
	inner *Builder
	total uint8
}

func NewStepBuilder() *StepBuilder {
	return &StepBuilder{inner: NewBuilder()}
}

// AddStep moves delta semitones past the previous interval. The running
// total must stay in 1..16.
func (b *StepBuilder) AddStep(delta uint8) *StepBuilder {
	b.inner.checkOpen()
	total := int(b.total) + int(delta)
	if total > 16 {
		panic(fmt.Sprintf("scale: step %d takes interval %d past 16", delta, total))
	}
	b.total = uint8(total)
	b.inner.SetInterval(b.total)
	return b
}

func (b *StepBuilder) Build() Scale {
	return b.inner.Build()
}

func FromIntervals(intervals ...uint8) Scale {
	b := NewBuilder()
	for _, n := range intervals {
		b.SetInterval(n)
	}
	return b.Build()
}

func FromSteps(steps ...uint8) Scale {
	b := NewStepBuilder()
	for _, s := range steps {
		b.AddStep(s)
	}
	return b.Build()
}
