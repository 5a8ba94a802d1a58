package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"stream-advisor/internal/common/validation"
	"stream-advisor/internal/engine/questionbank"
	"stream-advisor/internal/engine/streamscorer"

	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend a stream for an answer file",
	Long:  "Read a JSON object of question id to answer text and print the recommended stream with its scores and analysis. Use --answers - to read from stdin.",
	RunE:  runRecommend,
}

var recommendAnswersFile string

func init() {
	recommendCmd.Flags().StringVarP(&recommendAnswersFile, "answers", "a", "", "Path to answers JSON file, or - for stdin")
	_ = recommendCmd.MarkFlagRequired("answers")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	var r io.Reader = cmd.InOrStdin()
	if recommendAnswersFile != "-" {
		f, err := os.Open(recommendAnswersFile)
		if err != nil {
			return fmt.Errorf("failed to open answers file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var raw map[string]interface{}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return fmt.Errorf("answers must be a JSON object: %w", err)
	}

	raw = questionbank.ScoringAnswers(raw)
	res, err := validation.AnswerSetSchema.Validate(raw)
	if err != nil {
		return err
	}
	if !res.Valid {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", res.Error())
	}

	answers, cut := streamscorer.AnswersFromVariables(raw).Truncated(validation.MaxAnswerLength)
	for _, field := range cut {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s truncated to %d characters\n", field, validation.MaxAnswerLength)
	}

	return writeJSON(cmd.OutOrStdout(), streamscorer.Analyze(answers))
}
