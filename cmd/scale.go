package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/chordprog/constants"
	"github.com/jsphweid/chordprog/mode"
	"github.com/jsphweid/chordprog/model"
	"github.com/jsphweid/chordprog/pitch"
	"github.com/spf13/cobra"
)

var (
	scaleKey  string
	scaleMode string
)

func init() {
	scaleCmd.Flags().StringVarP(&scaleKey, "key", "k", constants.DefaultKey, "tonic of the scale")
	scaleCmd.Flags().StringVarP(&scaleMode, "mode", "m", constants.DefaultMode, "mode to spell")
	rootCmd.AddCommand(scaleCmd)
}

var scaleCmd = &cobra.Command{
	Use:   "scale",
	Short: "Spells a scale",
	Long:  `Spells the seven notes of a mode on the given key.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := Scale(scaleKey, scaleMode)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(res.Notes, " "))
		return nil
	},
}

func Scale(keyName string, modeName string) (model.ScaleResponse, error) {
	var res model.ScaleResponse
	key, err := pitch.ParseNote(keyName)
	if err != nil {
		return res, err
	}
	m, err := mode.Lookup(modeName)
	if err != nil {
		return res, err
	}

	res.Key = key.String()
	res.Mode = m.Name()
	for _, n := range m.Scale(key) {
		res.Notes = append(res.Notes, n.String())
	}
	return res, nil
}
