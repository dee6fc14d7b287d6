package midi

import (
	"github.com/jsphweid/muzze/chord"
	"github.com/jsphweid/muzze/scale"
	"github.com/jsphweid/muzze/util"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const ticksPerQuarter = smf.MetricTicks(480)

type RenderOptions struct {
	Channel  uint8
	Velocity uint8
	// length of every rendered note in quarter notes
	Beats uint32
	BPM   float64
}

func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Channel: 0, Velocity: 100, Beats: 1, BPM: 120}
}

func add(tr *smf.Track, delta uint32, msg []byte) {
	*tr = append(*tr, smf.Event{Delta: delta, Message: smf.Message(msg)})
}

func newTrack(name string, opts RenderOptions) smf.Track {
	var tr smf.Track
	add(&tr, 0, smf.MetaTrackSequenceName(name))
	add(&tr, 0, smf.MetaTempo(opts.BPM))
	return tr
}

func newSMF(tr smf.Track) *smf.SMF {
	var res smf.SMF
	res.TimeFormat = ticksPerQuarter
	res.Tracks = append(res.Tracks, tr)
	return &res
}

func (o RenderOptions) noteTicks() uint32 {
	return ticksPerQuarter.Ticks4th() * o.Beats
}

func (o RenderOptions) velocity() uint8 {
	return util.Min(o.Velocity, 127)
}

// RenderScale plays root and every scale member one after another.
func RenderScale(name string, sc scale.Scale, root uint8, opts RenderOptions) *smf.SMF {
	tr := newTrack(name, opts)
	it := sc.Apply(root)
	for it.HasNext() {
		key := it.Next()
		add(&tr, 0, gomidi.NoteOn(opts.Channel, key, opts.velocity()))
		add(&tr, opts.noteTicks(), gomidi.NoteOff(opts.Channel, key))
	}
	tr.Close(0)
	return newSMF(tr)
}

// RenderChord plays every chord tone at once.
func RenderChord(c chord.Chord, root uint8, opts RenderOptions) *smf.SMF {
	tr := newTrack(c.Name(), opts)
	keys := c.Apply(root)
	for _, key := range keys {
		add(&tr, 0, gomidi.NoteOn(opts.Channel, key, opts.velocity()))
	}
	for i, key := range keys {
		var delta uint32
		if i == 0 {
			delta = opts.noteTicks()
		}
		add(&tr, delta, gomidi.NoteOff(opts.Channel, key))
	}
	tr.Close(0)
	return newSMF(tr)
}
