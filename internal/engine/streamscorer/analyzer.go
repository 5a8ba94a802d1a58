// internal/engine/streamscorer/analyzer.go
package streamscorer

import (
	"stream-advisor/internal/engine/textsignal"
)

const maxLabels = 3

var (
	defaultTraits    = []string{"Enthusiastic Learner"}
	defaultStrengths = []string{"Quick Learner"}
)

// Signals is the free-text signal source the scorer consults.
type Signals interface {
	SentimentScore(text string) float64
	DetectSubjects(text string) []string
}

// Recommendation is the winning stream profile plus scoring details.
type Recommendation struct {
	StreamID StreamID `json:"streamId"`
	Profile
	Confidence        float64              `json:"confidence"`
	AllScores         map[StreamID]float64 `json:"allScores"`
	PersonalityTraits []string             `json:"personalityTraits"`
	Strengths         []string             `json:"strengths"`
	DetailedAnalysis  DetailedAnalysis     `json:"detailedAnalysis"`
}

// Scorer maps an AnswerSet onto the stream profiles. It holds no mutable
// state and is safe for concurrent use.
type Scorer struct {
	signals Signals
	groups  []RuleGroup
}

var defaultScorer = New(textsignal.Default())

// New returns a Scorer using signals for free-text fields.
func New(signals Signals) *Scorer {
	if signals == nil {
		signals = textsignal.Default()
	}
	return &Scorer{signals: signals, groups: defaultRuleGroups()}
}

// Default returns the shared scorer over the built-in lexicon.
func Default() *Scorer {
	return defaultScorer
}

// Analyze scores answers and returns the best-fit recommendation. It never
// fails: missing or unrecognized answers simply add nothing.
func (s *Scorer) Analyze(answers AnswerSet) Recommendation {
	board := newScoreBoard()
	var traits, strengths []string

	for _, g := range s.groups {
		r, ok := g.fire(answers)
		if !ok {
			continue
		}
		for _, wt := range r.Weights {
			board.Add(wt.Stream, wt.Points)
		}
		if r.Trait != "" {
			traits = append(traits, r.Trait)
		}
		if r.Strength != "" {
			strengths = append(strengths, r.Strength)
		}
	}

	s.applyFreeText(board, answers.Get(FieldFreeTime))

	winner := board.Leader()
	p, _ := LookupProfile(winner)

	return Recommendation{
		StreamID:          winner,
		Profile:           p,
		Confidence:        board.Confidence(),
		AllScores:         board.Snapshot(),
		PersonalityTraits: firstOr(traits, defaultTraits),
		Strengths:         firstOr(strengths, defaultStrengths),
		DetailedAnalysis:  buildAnalysis(answers, winner, p),
	}
}

func (s *Scorer) applyFreeText(board *ScoreBoard, text string) {
	if text == "" {
		return
	}
	for _, subj := range s.signals.DetectSubjects(text) {
		if id, ok := subjectRoutes[subj]; ok {
			board.Add(id, subjectMentionPoints)
		}
	}
	if s.signals.SentimentScore(text) > positiveAffectCutoff {
		board.AddToPresent(positiveAffectPoints)
	}
}

func firstOr(items, fallback []string) []string {
	if len(items) == 0 {
		return append([]string(nil), fallback...)
	}
	return append([]string(nil), head(items, maxLabels)...)
}

// Analyze scores answers with the default scorer.
func Analyze(answers AnswerSet) Recommendation {
	return defaultScorer.Analyze(answers)
}
