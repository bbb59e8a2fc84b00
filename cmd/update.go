package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update <score> <notes>",
	Short: "Replaces a score's notes from correction text",
	Long:  `Replaces a score's notes from correction text like "G4:quarter, A4:half".`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		pl, logger, err := newPipeline()
		cobra.CheckErr(err)
		defer logger.Sync()

		fmt.Println(pl.Update(args[0], args[1]))
	},
}
