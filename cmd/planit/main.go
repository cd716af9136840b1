package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/HasnainAbbasi1/planit/internal/server"
	"github.com/HasnainAbbasi1/planit/internal/store"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "planit",
		Short: "Deterministic land-subdivision layout engine",
	}

	rootCmd.AddCommand(planCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func planCmd() *cobra.Command {
	var summary bool
	var terrainPath string

	cmd := &cobra.Command{
		Use:   "plan [request.yaml]",
		Short: "Generate a layout from a request file and print it as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runPlan(args[0], terrainPath, summary)
		},
	}

	cmd.Flags().BoolVar(&summary, "summary", false, "print the area ledger instead of the full JSON result")
	cmd.Flags().StringVar(&terrainPath, "terrain", "", "YAML file of raw elevation/slope samples")
	return cmd
}

func validateCmd() *cobra.Command {
	var terrainPath string

	cmd := &cobra.Command{
		Use:   "validate [request.yaml]",
		Short: "Run a layout and print only the findings report",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0], terrainPath)
		},
	}

	cmd.Flags().StringVar(&terrainPath, "terrain", "", "YAML file of raw elevation/slope samples")
	return cmd
}

func reportCmd() *cobra.Command {
	var output string
	var terrainPath string

	cmd := &cobra.Command{
		Use:   "report [request.yaml]",
		Short: "Generate a layout and write the PDF area report",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runReport(args[0], terrainPath, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "report.pdf", "output PDF path")
	cmd.Flags().StringVar(&terrainPath, "terrain", "", "YAML file of raw elevation/slope samples")
	return cmd
}

func serveCmd() *cobra.Command {
	var configPath string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := server.DefaultConfig()
			if configPath != "" {
				var err error
				cfg, err = server.LoadConfig(configPath)
				if err != nil {
					return err
				}
			}

			level := log.InfoLevel
			if verbose || cfg.LogLevel == "debug" {
				level = log.DebugLevel
			}
			logger := newLogger(os.Stderr, level)

			st, err := store.Open(cfg.DatabasePath)
			if err != nil {
				return err
			}
			defer st.Close()

			return server.New(cfg, st, logger).Start()
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "toml config file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug-level logging")
	return cmd
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}
