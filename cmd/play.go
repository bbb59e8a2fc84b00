package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(playCmd)
}

var playCmd = &cobra.Command{
	Use:   "play <score>",
	Short: "Performs a score against the sample library",
	Long:  `Performs a score against the sample library, rendering an audio file when no device is available`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pl, logger, err := newPipeline()
		cobra.CheckErr(err)
		defer logger.Sync()

		fmt.Println(pl.Play(args[0]))
	},
}
