package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jsphweid/muzze/chord"
	"github.com/jsphweid/muzze/constants"
	"github.com/jsphweid/muzze/midi"
	"github.com/jsphweid/muzze/scale"
	"github.com/jsphweid/muzze/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2/smf"
)

var exportRoot uint8
var exportOut string
var exportOpts = midi.DefaultRenderOptions()

func init() {
	exportCmd.Flags().Uint8VarP(&exportRoot, "root", "r", constants.DefaultRoot, "root note (midi number)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file, a random name in OUT_PATH by default")
	exportCmd.Flags().Uint8Var(&exportOpts.Velocity, "velocity", exportOpts.Velocity, "note velocity")
	exportCmd.Flags().Uint32Var(&exportOpts.Beats, "beats", exportOpts.Beats, "quarter notes per note")
	exportCmd.Flags().Float64Var(&exportOpts.BPM, "bpm", exportOpts.BPM, "tempo")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:       "export scale|chord name",
	Short:     "Writes a scale or chord to a midi file",
	Long:      `Writes a scale (one note after another) or a chord (all notes at once) to a standard midi file.`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"scale", "chord"},
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := render(args[0], args[1])
		if err != nil {
			return err
		}

		path := exportOut
		if path == "" {
			if err := util.EnsureDir(constants.GetOutDir()); err != nil {
				return err
			}
			path = filepath.Join(constants.GetOutDir(), uuid.New().String()+".mid")
		}

		if err := midi.WriteFile(s, path); err != nil {
			return err
		}
		log.WithField("path", path).Info("Wrote midi file")
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func render(kind string, name string) (*smf.SMF, error) {
	switch kind {
	case "scale":
		sc, ok := scale.ByName(name)
		if !ok {
			return nil, errors.Errorf("unknown scale %q", name)
		}
		if err := checkRoot(exportRoot, scaleTop(sc)); err != nil {
			return nil, err
		}
		return midi.RenderScale(name, sc, exportRoot, exportOpts), nil
	case "chord":
		c, ok := chord.ByName(name)
		if !ok {
			return nil, errors.Errorf("unknown chord %q", name)
		}
		if err := checkRoot(exportRoot, chordTop(c)); err != nil {
			return nil, err
		}
		return midi.RenderChord(c, exportRoot, exportOpts), nil
	}
	return nil, errors.Errorf("can only export a scale or a chord, not %q", kind)
}
