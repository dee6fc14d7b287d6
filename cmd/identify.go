package cmd

import (
	"strconv"

	"github.com/jsphweid/muzze/model"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(identifyCmd)
}

var identifyCmd = &cobra.Command{
	Use:   "identify note [note...]",
	Short: "Names the chord formed by some notes",
	Long:  `Names the chord formed by some midi note numbers, trying each note as the root.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, err := parseNotes(args)
		if err != nil {
			return err
		}
		printMatches(cmd.OutOrStdout(), notes)
		return nil
	},
}

func parseNotes(args []string) (model.Notes, error) {
	var notes model.Notes
	for _, arg := range args {
		n, err := strconv.ParseUint(arg, 10, 7)
		if err != nil {
			return nil, errors.Wrapf(err, "bad note %q", arg)
		}
		notes = append(notes, uint8(n))
	}
	return notes, nil
}
