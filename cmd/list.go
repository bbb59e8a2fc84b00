package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajepson/stavekit/catalog"
	"github.com/ajepson/stavekit/config"
	"github.com/ajepson/stavekit/util"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list [pattern]",
	Short: "Lists files matching a glob pattern",
	Long: `Lists files matching a glob pattern, e.g. "*.mid" or "rendered_*.png".
When a catalog table is configured, listed files are annotated with
their catalog records.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pattern := "*"
		if len(args) == 1 {
			pattern = args[0]
		}
		paths := util.GatherFiles(".", pattern)

		if cfg, err := config.Load(configPath); err == nil && cfg.CatalogTable != "" {
			if cat, err := catalog.New(cfg.CatalogEndpoint, cfg.CatalogTable); err == nil {
				for _, line := range catalog.Describe(cat, paths) {
					fmt.Println(line)
				}
				return
			}
		}

		for _, path := range paths {
			fmt.Println(path)
		}
	},
}
