package cmd

import (
	"log/slog"
	"os"

	"github.com/jsphweid/chordprog/constants"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chordprog",
	Short: "Chords and Roman numeral progressions",
	Long:  `chordprog spells chords and resolves Roman numeral progressions in any key and mode.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: constants.GetLogLevel()})
		slog.SetDefault(slog.New(handler))
	},
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
