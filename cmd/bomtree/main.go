package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vsinha/bomtree/pkg/interfaces/cli/commands"
)

var version = "0.1.0-dev"

func main() {
	var config commands.Config

	rootCmd := &cobra.Command{
		Use:   "bomtree",
		Short: "Leveled bill of materials reports from coded parts lists",
		Long: `bomtree reads a flat parts list whose rows carry dotted item codes
(1, 1.2, 1.2.3) and writes the implied multi-level bill of materials:
a top-level table, one section per assembly and a recapitulation of
the total quantity consumed for every part number.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&config.ConfigFile, "config", "c", "", "Path to a YAML configuration file (default $BOMTREE_CONFIG)")
	flags.StringVar(&config.Sheet, "sheet", "", "Worksheet to read from .xlsx inputs (default: first sheet)")
	flags.StringVar(&config.Language, "language", "", "Report language: en, fr")
	flags.BoolVarP(&config.Verbose, "verbose", "v", false, "Enable verbose output")
	flags.StringVar(&config.LogMode, "log-mode", "dev", "Log encoding: dev or prod")

	generateCmd := &cobra.Command{
		Use:   "generate <input>...",
		Short: "Write the leveled BOM report for one or more parts lists",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config.Inputs = args
			return commands.NewReportCommand(config).Generate(cmd.Context())
		},
	}
	generateCmd.Flags().StringVarP(&config.OutputDir, "output", "o", "", "Output directory (default: next to each input)")
	generateCmd.Flags().StringVarP(&config.Format, "format", "f", "", "Output format: xlsx, csv, text, json")
	generateCmd.Flags().StringVarP(&config.Title, "title", "t", "", "Title of the top-level table")
	generateCmd.Flags().StringVar(&config.ForkliftLabel, "forklift-label", "", "Forklift label printed above the report")
	generateCmd.Flags().BoolVar(&config.NoRecap, "no-recap", false, "Do not write the recapitulation")

	recapCmd := &cobra.Command{
		Use:   "recap <input>...",
		Short: "Print the recapitulation only",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config.Inputs = args
			return commands.NewReportCommand(config).Recap(cmd.Context())
		},
	}

	checkCmd := &cobra.Command{
		Use:   "check <input>...",
		Short: "Report item code oddities without generating anything",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config.Inputs = args
			return commands.NewReportCommand(config).Check(cmd.Context())
		},
	}

	rootCmd.AddCommand(generateCmd, recapCmd, checkCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
