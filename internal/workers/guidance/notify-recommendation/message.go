// internal/workers/guidance/notify-recommendation/message.go
package notifyrecommendation

import (
	"fmt"
	"strings"

	"stream-advisor/internal/engine/streamscorer"
)

func greeting(name string) string {
	if name = strings.TrimSpace(name); name == "" {
		return "Hi there,"
	}
	return fmt.Sprintf("Hi %s,", name)
}

func emailBody(c contact, rec streamscorer.Recommendation) string {
	var b strings.Builder
	b.WriteString(greeting(c.Name))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Our recommendation for you is %s (%.1f%% match).\n\n", rec.Title, rec.Confidence)

	if s := rec.DetailedAnalysis.Summary; s != "" {
		b.WriteString(s)
		b.WriteString("\n\n")
	}
	if len(rec.DetailedAnalysis.WhyRecommended) > 0 {
		b.WriteString("Why this fits you:\n")
		for _, r := range rec.DetailedAnalysis.WhyRecommended {
			fmt.Fprintf(&b, "- %s\n", r)
		}
		b.WriteString("\n")
	}
	if len(rec.DetailedAnalysis.NextSteps) > 0 {
		b.WriteString("Next steps:\n")
		for i, s := range rec.DetailedAnalysis.NextSteps {
			fmt.Fprintf(&b, "%d. %s\n", i+1, s)
		}
	}
	return b.String()
}

func smsBody(c contact, rec streamscorer.Recommendation) string {
	msg := fmt.Sprintf("%s your recommended stream is %s (%.1f%% match).", greeting(c.Name), rec.Title, rec.Confidence)
	if len(rec.Exams) > 0 {
		msg += " Key exams: " + strings.Join(rec.Exams, ", ") + "."
	}
	return msg
}
