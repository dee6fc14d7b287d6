package cmd

import (
	"fmt"

	"github.com/jsphweid/muzze/midi"
	"github.com/spf13/cobra"
)

var analyzeMinNotes int
var analyzeFrom uint64
var analyzeMaxNotes int
var analyzeSave string

func init() {
	analyzeCmd.Flags().IntVar(&analyzeMinNotes, "min-notes", 2, "ignore moments with fewer notes")
	analyzeCmd.Flags().Uint64Var(&analyzeFrom, "from", 0, "start at this tick")
	analyzeCmd.Flags().IntVar(&analyzeMaxNotes, "max-notes", 0, "stop after this many notes per track, 0 for all")
	analyzeCmd.Flags().StringVar(&analyzeSave, "save", "", "also write the analyzed excerpt to this file")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze file.mid",
	Short: "Names the chords in a midi file",
	Long:  `Reads a midi file, collects the notes sounding at every moment and names the chords they form.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parsed, err := midi.ReadMidiFile(args[0])
		if err != nil {
			return err
		}
		if analyzeFrom > 0 || analyzeMaxNotes > 0 {
			if parsed, err = midi.Reload(midi.Excerpt(parsed, analyzeFrom, analyzeMaxNotes)); err != nil {
				return err
			}
		}
		if analyzeSave != "" {
			if err := midi.WriteFile(parsed, analyzeSave); err != nil {
				return err
			}
		}

		chords, err := midi.GetChords(parsed)
		if err != nil {
			return err
		}
		log.WithField("file", args[0]).WithField("moments", len(chords)).Debug("Read midi file")

		w := cmd.OutOrStdout()
		for _, c := range chords {
			// ignore really short or really long chords
			if len(c.Notes) < analyzeMinNotes || len(c.Notes) > 16 {
				continue
			}
			fmt.Fprintf(w, "%8.3fs  ", float64(c.Offset)/1e6)
			printMatches(w, c.Notes)
		}
		return nil
	},
}
