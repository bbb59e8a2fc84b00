package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(processCmd)
}

var processCmd = &cobra.Command{
	Use:   "process <score>",
	Short: "Renders, plays and summarizes a score",
	Long:  `Renders, plays and summarizes a score in one pass`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pl, logger, err := newPipeline()
		cobra.CheckErr(err)
		defer logger.Sync()

		fmt.Println(pl.Process(args[0]))
	},
}
