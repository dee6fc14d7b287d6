package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/muzze/constants"
	"github.com/jsphweid/muzze/model"
	"github.com/jsphweid/muzze/scale"
	"github.com/jsphweid/muzze/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var scaleRoot uint8
var scaleList bool

func init() {
	scaleCmd.Flags().Uint8VarP(&scaleRoot, "root", "r", constants.DefaultRoot, "root note (midi number)")
	scaleCmd.Flags().BoolVarP(&scaleList, "list", "l", false, "list known scales")
	rootCmd.AddCommand(scaleCmd)
}

var scaleCmd = &cobra.Command{
	Use:   "scale [name]",
	Short: "Shows a scale",
	Long:  `Shows the intervals, steps and notes of a named scale.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if scaleList || len(args) == 0 {
			for _, name := range scale.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		}

		sc, ok := scale.ByName(args[0])
		if !ok {
			return errors.Errorf("unknown scale %q", args[0])
		}
		if err := checkRoot(scaleRoot, scaleTop(sc)); err != nil {
			return err
		}
		log.WithField("scale", args[0]).Debug("Describing scale")

		d := describeScale(args[0], sc, &scaleRoot)
		var steps []uint8
		it := sc.Steps()
		for it.HasNext() {
			steps = append(steps, it.Next())
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "name:      %v\n", d.Name)
		fmt.Fprintf(w, "raw:       %v\n", sc.Bits())
		fmt.Fprintf(w, "intervals: %v\n", strings.Join(d.Intervals, " "))
		fmt.Fprintf(w, "steps:     %v\n", strings.Join(d.Steps, " "))
		fmt.Fprintf(w, "span:      %v\n", model.Interval(util.Sum(steps)))
		fmt.Fprintf(w, "notes:     %v\n", d.Notes)
		return nil
	},
}
