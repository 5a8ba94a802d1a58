package main

import (
	"stream-advisor/internal/engine/questionbank"

	"github.com/spf13/cobra"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Print the questionnaire for a mode",
	RunE:  runQuestions,
}

var questionsMode string

func init() {
	questionsCmd.Flags().StringVarP(&questionsMode, "mode", "m", "SSC", "Questionnaire mode (SSC or HSC)")
	rootCmd.AddCommand(questionsCmd)
}

func runQuestions(cmd *cobra.Command, _ []string) error {
	qs, err := questionbank.QuestionsFor(questionsMode)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), qs)
}
