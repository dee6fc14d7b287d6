package midi

import (
	"github.com/jsphweid/muzze/util"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// heldKey packs channel and key so held notes sort by channel then key.
func heldKey(channel uint8, key uint8) uint16 {
	return uint16(channel)<<8 | uint16(key)
}

// Excerpt copies s starting at fromTicks, keeping at most maxNotes note ons
// per track (no limit when maxNotes <= 0). Notes before fromTicks are
// dropped, other messages before it (tempo, program changes...) are moved
// to the start of the excerpt. Notes still held where a track is cut are
// released there.
func Excerpt(s *smf.SMF, fromTicks uint64, maxNotes int) *smf.SMF {
	var res smf.SMF
	res.TimeFormat = s.TimeFormat

	for _, track := range s.Tracks {
		var newTrack smf.Track
		var absTicks uint64
		last := fromTicks
		var numNoteOn int
		held := make(map[uint16]bool)
		cut := false
	TrackEventLoop:
		for _, evt := range track {
			absTicks += uint64(evt.Delta)
			var ch, key, vel uint8
			msg := gomidi.Message(evt.Message)
			isStart := msg.GetNoteStart(&ch, &key, &vel)
			isEnd := !isStart && msg.GetNoteEnd(&ch, &key)
			switch {
			case absTicks < fromTicks && (isStart || isEnd):
				continue
			case absTicks < fromTicks:
				evt.Delta = 0
			default:
				if isStart && maxNotes > 0 && numNoteOn >= maxNotes {
					cut = true
					break TrackEventLoop
				}
				evt.Delta = uint32(absTicks - last)
				last = absTicks
			}
			switch {
			case isStart:
				numNoteOn++
				held[heldKey(ch, key)] = true
			case isEnd:
				delete(held, heldKey(ch, key))
			}
			newTrack = append(newTrack, evt)
		}
		if cut {
			delta := uint32(absTicks - last)
			for _, k := range util.GetKeys(held) {
				add(&newTrack, delta, gomidi.NoteOff(uint8(k>>8), uint8(k)))
				delta = 0
			}
			newTrack.Close(0)
		}
		res.Tracks = append(res.Tracks, newTrack)
	}

	return &res
}
