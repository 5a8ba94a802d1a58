// Package main provides a command line front end to the stream scoring engine.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "advisor-cli",
	Short:         "Score questionnaire answers and inspect the stream tables",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var prettyOutput bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&prettyOutput, "pretty", false, "Indent JSON output")
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	if prettyOutput {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
