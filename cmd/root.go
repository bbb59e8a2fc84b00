package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajepson/stavekit/catalog"
	"github.com/ajepson/stavekit/config"
	"github.com/ajepson/stavekit/pipeline"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "stavekit",
	Short: "Sheet-music transcription helper",
	Long:  `Updates, renders and plays back note sequences stored as MIDI score documents.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultFile, "config file")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func newPipeline() (*pipeline.Pipeline, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return nil, nil, err
	}

	var cat *catalog.Client
	if cfg.CatalogTable != "" {
		cat, err = catalog.New(cfg.CatalogEndpoint, cfg.CatalogTable)
		if err != nil {
			logger.Warn("catalog disabled", zap.Error(err))
			cat = nil
		}
	}

	return pipeline.New(cfg, logger, cat), logger, nil
}
