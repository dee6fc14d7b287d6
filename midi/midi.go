package midi

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// gomidi panics on some malformed files
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s = &blank
			e = errors.New(fmt.Sprint(r))
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &blank, errors.Wrap(err, "error reading midi file")
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, errors.Wrap(err, "error parsing midi file")
	}

	return res, nil
}

func WriteFile(s *smf.SMF, path string) error {
	if err := s.WriteFile(path); err != nil {
		return errors.Wrapf(err, "could not write %v", path)
	}
	return nil
}

// Reload writes s out and parses it again, so that an SMF assembled in
// memory gets the tempo map TimeAt relies on.
func Reload(s *smf.SMF) (*smf.SMF, error) {
	f, err := os.CreateTemp("", "muzze-*.mid")
	if err != nil {
		return nil, errors.Wrap(err, "could not create temp file")
	}
	f.Close()
	defer os.Remove(f.Name())

	if err := WriteFile(s, f.Name()); err != nil {
		return nil, err
	}
	return ReadMidiFile(f.Name())
}
