package cmd

import (
	"github.com/jsphweid/muzze/constants"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

var log = logrus.WithField("prefix", "cmd")

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "muzze",
	Short: "Scales and chords as packed bits",
	Long:  `Looks up, spells, identifies and renders scales and chords stored as packed bit vectors.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return errors.Wrap(err, "bad --log-level")
		}
		logrus.SetLevel(level)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	formatter := new(prefixed.TextFormatter)
	formatter.TimestampFormat = "2006-01-02 15:04:05"
	formatter.FullTimestamp = true
	logrus.SetFormatter(formatter)

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", constants.GetLogLevel(), "logrus level")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
