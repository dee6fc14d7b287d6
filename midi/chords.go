package midi

import (
	"sort"

	"github.com/jsphweid/muzze/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

func getChord(offset int64, pressed map[uint8]int64) model.SoundingChord {
	c := model.SoundingChord{Offset: offset}
	for note := range pressed {
		c.Notes = append(c.Notes, note)
	}
	sort.Slice(c.Notes, func(i, j int) bool {
		return c.Notes[i] < c.Notes[j]
	})
	return c
}

// GetChords returns the notes sounding after every distinct event time,
// ordered by time. Moments of silence are skipped.
func GetChords(s *smf.SMF) ([]model.SoundingChord, error) {
	var reducedEvents []model.ReducedEvent

	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			absTime := s.TimeAt(absTicks)
			var channel uint8
			var key uint8
			var velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, model.ReducedEvent{
					Offset:    absTime,
					IsNoteOff: velocity == 0,
					Note:      key,
				})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, model.ReducedEvent{
					Offset:    absTime,
					IsNoteOff: true,
					Note:      key,
				})
			}
		}
	}

	// prioritize smaller offset values then note off
	sort.SliceStable(reducedEvents, func(i, j int) bool {
		if reducedEvents[i].Offset != reducedEvents[j].Offset {
			return reducedEvents[i].Offset < reducedEvents[j].Offset
		}
		return reducedEvents[i].IsNoteOff && !reducedEvents[j].IsNoteOff
	})

	timestampToChords := make(map[int64]model.SoundingChord)
	pressed := make(map[uint8]int64)
	for _, evt := range reducedEvents {
		if evt.IsNoteOff {
			delete(pressed, evt.Note)
		} else {
			pressed[evt.Note] = evt.Offset
		}
		timestampToChords[evt.Offset] = getChord(evt.Offset, pressed)
	}

	var chords []model.SoundingChord
	for _, c := range timestampToChords {
		if len(c.Notes) > 0 {
			chords = append(chords, c)
		}
	}
	sort.Slice(chords, func(i, j int) bool {
		return chords[i].Offset < chords[j].Offset
	})
	return chords, nil
}
