package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"shici/pkg/config"
	"shici/pkg/logger"
	"shici/pkg/services"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var log = zap.NewNop()

// errTransformFailed is returned from the root command in strict mode after
// the failure has already been reported.
var errTransformFailed = errors.New("transform failed")

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "shici",
		Short: "Reshape a JSON array of poems into the reader's poems.json layout",
		Long: `Reads a JSON array of {"title", "content": [lines...]} records and writes
an array of {"title", "author", "dynasty", "content", "appreciation"} records.

Paths default to INPUT_PATH and OUTPUT_PATH (or input.json / output.json).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTransform,
	}

	rootCmd.Flags().StringVarP(&config.InputPath, "input", "i", config.InputPath, "source JSON file")
	rootCmd.Flags().StringVarP(&config.OutputPath, "output", "o", config.OutputPath, "destination file")
	rootCmd.Flags().StringVarP(&config.OutputFormat, "format", "f", config.OutputFormat, "output format: json, yaml or toml (default: from the output file extension)")
	rootCmd.Flags().BoolVar(&config.Strict, "strict", config.Strict, "exit with status 1 when the transform fails")

	rootCmd.AddCommand(newServeCmd(), newSourcesCmd())
	return rootCmd
}

func runTransform(cmd *cobra.Command, args []string) error {
	format, err := services.ResolveFormat(config.OutputFormat, config.OutputPath)
	if err != nil {
		return err
	}

	count, err := services.TransformWithFormat(config.InputPath, config.OutputPath, format)
	report(cmd.OutOrStdout(), config.InputPath, config.OutputPath, err)
	if err != nil {
		log.Debug("transform failed",
			zap.String("input", config.InputPath),
			zap.String("kind", services.KindOf(err).String()),
			zap.Error(err))
		if config.Strict {
			return errTransformFailed
		}
		return nil
	}

	log.Debug("transform complete",
		zap.String("input", config.InputPath),
		zap.String("output", config.OutputPath),
		zap.Int("count", count))
	return nil
}

// report prints the one-line outcome of a transform.
func report(w io.Writer, inputPath, outputPath string, err error) {
	if err == nil {
		color.New(color.FgGreen).Fprintf(w, "Done. Results saved to %s\n", outputPath)
		return
	}

	red := color.New(color.FgRed)
	switch services.KindOf(err) {
	case services.SourceNotFound:
		red.Fprintf(w, "Error: file %s does not exist.\n", inputPath)
	case services.MalformedInput:
		red.Fprintf(w, "Error: file %s is not valid JSON.\n", inputPath)
	default:
		red.Fprintf(w, "An error occurred: %v\n", err)
	}
}

func main() {
	dotenv := config.Init()

	log = logger.New(logger.Config{
		Environment: config.Environment,
		LogLevel:    config.LogLevel,
		ServiceName: "shici",
	})
	defer log.Sync()

	if !dotenv {
		log.Debug("no .env file found, using environment only")
	}

	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errTransformFailed) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		log.Sync()
		os.Exit(1)
	}
}
