package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/muzze/chord"
	"github.com/jsphweid/muzze/model"
	"github.com/jsphweid/muzze/scale"
	"github.com/pkg/errors"
)

const maxNote = 127

// checkRoot makes sure every note from root up to root+top is a midi note.
func checkRoot(root uint8, top int) error {
	if int(root)+top > maxNote {
		if top == 0 {
			return errors.Errorf("root %d is not a midi note", root)
		}
		return errors.Errorf("root %d puts the top note at %d, past %d", root, int(root)+top, maxNote)
	}
	return nil
}

// scaleTop is the largest interval of sc.
func scaleTop(sc scale.Scale) int {
	var top int
	it := sc.Intervals()
	for it.HasNext() {
		top = int(it.Next())
	}
	return top
}

// chordTop is the largest semitone offset of c.
func chordTop(c chord.Chord) int {
	var top int
	for _, s := range c.Semitones() {
		if s > top {
			top = s
		}
	}
	return top
}

func describeScale(name string, sc scale.Scale, root *uint8) model.ScaleResponse {
	res := model.ScaleResponse{
		Name:      name,
		Raw:       sc.Raw(),
		Intervals: []string{},
		Steps:     []string{},
	}
	intervals := sc.Intervals()
	for intervals.HasNext() {
		res.Intervals = append(res.Intervals, model.Interval(intervals.Next()).String())
	}
	steps := sc.Steps()
	for steps.HasNext() {
		res.Steps = append(res.Steps, model.Step(steps.Next()).String())
	}
	if root != nil {
		pitches := sc.Apply(*root)
		for pitches.HasNext() {
			res.Notes = append(res.Notes, int(pitches.Next()))
		}
	}
	return res
}

func describeChord(c chord.Chord, root *uint8) model.ChordResponse {
	res := model.ChordResponse{
		Name:    c.Name(),
		Raw:     c.Raw(),
		Degrees: []string{},
	}
	degrees := c.Degrees()
	for degrees.HasNext() {
		res.Degrees = append(res.Degrees, degrees.Next().String())
	}
	if root != nil {
		for _, n := range c.Apply(*root) {
			res.Notes = append(res.Notes, int(n))
		}
	}
	return res
}

func toMatches(matches []chord.Match) []model.ChordMatch {
	res := make([]model.ChordMatch, 0, len(matches))
	for _, m := range matches {
		res = append(res, model.ChordMatch{Root: m.Root, Chord: m.Chord.Name()})
	}
	return res
}

func printMatches(w io.Writer, notes model.Notes) {
	matches := chord.Identify(notes)
	if len(matches) == 0 {
		fmt.Fprintf(w, "%v: no match\n", notes)
		return
	}
	var names []string
	for _, m := range toMatches(matches) {
		names = append(names, fmt.Sprintf("%v (root %v)", m.Chord, m.Root))
	}
	fmt.Fprintf(w, "%v: %v\n", notes, strings.Join(names, ", "))
}
