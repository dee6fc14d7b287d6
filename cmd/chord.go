package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/muzze/chord"
	"github.com/jsphweid/muzze/constants"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var chordRoot uint8
var chordList bool

func init() {
	chordCmd.Flags().Uint8VarP(&chordRoot, "root", "r", constants.DefaultRoot, "root note (midi number)")
	chordCmd.Flags().BoolVarP(&chordList, "list", "l", false, "list known chords")
	rootCmd.AddCommand(chordCmd)
}

var chordCmd = &cobra.Command{
	Use:   "chord [name]",
	Short: "Shows a chord",
	Long:  `Shows the degrees and notes of a named chord.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if chordList || len(args) == 0 {
			for _, name := range chord.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		}

		c, ok := chord.ByName(args[0])
		if !ok {
			return errors.Errorf("unknown chord %q", args[0])
		}
		if err := checkRoot(chordRoot, chordTop(c)); err != nil {
			return err
		}
		log.WithField("chord", args[0]).Debug("Describing chord")

		d := describeChord(c, &chordRoot)
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "name:    %v\n", d.Name)
		fmt.Fprintf(w, "raw:     %#016x\n", d.Raw)
		fmt.Fprintf(w, "degrees: %v\n", strings.Join(d.Degrees, " "))
		fmt.Fprintf(w, "notes:   %v\n", d.Notes)
		return nil
	},
}
