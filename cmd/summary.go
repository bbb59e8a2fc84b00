package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(summaryCmd)
}

var summaryCmd = &cobra.Command{
	Use:   "summary <score>",
	Short: "Prints the notes found in a score",
	Long:  `Prints the notes found in a score`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pl, logger, err := newPipeline()
		cobra.CheckErr(err)
		defer logger.Sync()

		fmt.Println(pl.Summary(args[0]))
	},
}
