package main

import (
	"strings"

	"stream-advisor/internal/engine/textsignal"

	"github.com/spf13/cobra"
)

var sentimentCmd = &cobra.Command{
	Use:   "sentiment [text...]",
	Short: "Print the text signals of a free-text answer",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSentiment,
}

func init() {
	rootCmd.AddCommand(sentimentCmd)
}

type sentimentResult struct {
	Text      string            `json:"text"`
	Sentiment float64           `json:"sentiment"`
	Keywords  []string          `json:"keywords"`
	Intent    textsignal.Intent `json:"intent"`
	Subjects  []string          `json:"subjects"`
}

func runSentiment(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	subjects := textsignal.DetectSubjects(text)
	if subjects == nil {
		subjects = []string{}
	}
	return writeJSON(cmd.OutOrStdout(), sentimentResult{
		Text:      text,
		Sentiment: textsignal.SentimentScore(text),
		Keywords:  textsignal.ExtractKeywords(text).Sorted(),
		Intent:    textsignal.ExtractIntent(text),
		Subjects:  subjects,
	})
}
