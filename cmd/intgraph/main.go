// Package main provides the CLI entry point for intgraph.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/StefanJo3107/Interference-Graph/internal/config"
	"github.com/StefanJo3107/Interference-Graph/internal/log"
	"github.com/StefanJo3107/Interference-Graph/pkg/intgraph"
	"github.com/StefanJo3107/Interference-Graph/pkg/intgraph/models"
)

func main() {
	rootCmd, err := newRootCmd()
	if err != nil {
		fmt.Fprintln(os.Stderr, "intgraph:", err)
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() (*cobra.Command, error) {
	v := config.New()

	rootCmd := &cobra.Command{
		Use:   "intgraph <filename> <channel>",
		Short: "Plot the brightness of one image column",
		Long: `intgraph samples a pixel column of an image read from the input
directory, keeps the red (r) or green (g) channel, rescales it to [0, 1]
and writes the result as a 1000x300 scatter plot.`,
		Args: positionalArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(v, args)
		},
	}

	flags := rootCmd.Flags()
	flags.String("config", "", "Config file (yaml, toml or json)")
	flags.String("input-dir", intgraph.DefaultInputDir, "Directory source images are read from")
	flags.StringP("output", "o", intgraph.DefaultOutputPath, "Output plot path")
	flags.Int("column", intgraph.DefaultColumn, "Horizontal pixel offset to sample")
	flags.Int("rows", intgraph.DefaultRowCount, "Number of rows to sample from the top")
	flags.Float64("x-scale", intgraph.DefaultXScale, "Plot X units per sampled row")
	flags.String("flat", "error", "Flat signal handling: error or midpoint")
	flags.Bool("debug", false, "Enable debug logging")
	if err := config.BindFlags(v, flags); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}

	return rootCmd, nil
}

// positionalArgs requires exactly a filename and a channel and names the
// first one missing.
func positionalArgs(cmd *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return fmt.Errorf("problem parsing arguments: %w", intgraph.MissingArgument("filename"))
	case len(args) == 1:
		return fmt.Errorf("problem parsing arguments: %w", intgraph.MissingArgument("channel"))
	case len(args) > 2:
		return fmt.Errorf("problem parsing arguments: expected 2 arguments, got %d", len(args))
	}
	return nil
}

func run(v *viper.Viper, args []string) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	if err := log.Init(cfg.Debug); err != nil {
		return err
	}
	defer log.Sync()

	inputPath := cfg.InputPath(args[0])
	channel := models.Channel(args[1])
	log.Infow("plotting column", "input", inputPath, "channel", args[1], "output", cfg.Output)

	if err := intgraph.Run(inputPath, cfg.Output, channel, cfg.Options()); err != nil {
		log.Errorw("plot failed", "input", inputPath, "error", err)
		return fmt.Errorf("plot failed: %w", err)
	}
	return nil
}
