package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render <score>",
	Short: "Draws a score as a sticker sheet image",
	Long:  `Draws a score as a sticker sheet image`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pl, logger, err := newPipeline()
		cobra.CheckErr(err)
		defer logger.Sync()

		fmt.Println(pl.Render(args[0]))
	},
}
