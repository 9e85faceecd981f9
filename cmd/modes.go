package cmd

import (
	"fmt"

	"github.com/jsphweid/chordprog/mode"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(modesCmd)
}

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "Lists the known modes",
	Long:  `Lists the known modes and their semitone offsets.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, m := range mode.All() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-16s %v\n", m.Name(), m.Degrees())
		}
	},
}
