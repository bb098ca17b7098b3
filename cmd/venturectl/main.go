// Command venturectl is an offline toolbox for venture authors: it parses
// boon text, validates configs, walks the die ladder and simulates turns
// without a running server.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/osse101/VentureBot_Go/internal/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:          "venturectl",
		Short:        "Offline tools for venture configs and turns",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.InitLoggerWithWriter(logger.NewConfig(logLevel, "text", "venturectl", "dev", "cli", false), cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "error", "Log level written to stderr")

	root.AddCommand(
		newBoonsCmd(),
		newLadderCmd(),
		newConfigCmd(),
		newSimulateCmd(),
		newDeadLettersCmd(),
	)
	return root
}

// readInput reads path, or stdin when path is "-" or empty
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
