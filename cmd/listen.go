package cmd

import (
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/muzze/constants"
	"github.com/jsphweid/muzze/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var listenPort int

func init() {
	listenCmd.Flags().IntVarP(&listenPort, "port", "p", 0, "midi in port number")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Names chords played on a midi keyboard",
	Long:  `Listens on a midi in port and names the chord formed by the held keys once they settle.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listen(cmd, listenPort)
	},
}

// heldNotes is written from the driver callback and read from the
// debounce timer goroutine.
type heldNotes struct {
	mu    sync.Mutex
	notes map[uint8]bool
}

func (h *heldNotes) press(key uint8) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.notes[key] = true
}

func (h *heldNotes) release(key uint8) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.notes, key)
}

func (h *heldNotes) snapshot() []uint8 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return util.GetKeys(h.notes)
}

func listen(cmd *cobra.Command, port int) error {
	defer gomidi.CloseDriver()
	in, err := gomidi.InPort(port)
	if err != nil {
		return errors.Wrapf(err, "can't find midi in port %d", port)
	}

	held := &heldNotes{notes: make(map[uint8]bool)}
	debounced := debounce.New(constants.DebounceMillis * time.Millisecond)
	report := func() {
		notes := held.snapshot()
		if len(notes) < 2 {
			return
		}
		printMatches(cmd.OutOrStdout(), notes)
	}

	stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			held.press(key)
			debounced(report)
		case msg.GetNoteEnd(&ch, &key):
			held.release(key)
			debounced(report)
		}
	})
	if err != nil {
		return errors.Wrap(err, "could not listen")
	}
	log.WithField("port", in.String()).Info("Listening, ctrl-c to stop")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	stop()
	return nil
}
