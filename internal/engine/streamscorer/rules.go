// internal/engine/streamscorer/rules.go
package streamscorer

import (
	"strings"

	"stream-advisor/internal/engine/textsignal"
)

// Answer fields read by the rule battery.
const (
	FieldDiplomaInterest = "diploma_interest"
	FieldFavSubject      = "fav_subject"
	FieldWorkStyle       = "work_style"
	FieldLearningStyle   = "learning_style"
	FieldStrength        = "strength"
	FieldCurrentStream   = "current_stream"
	FieldCareerField     = "career_field"
	FieldFreeTime        = "free_time"
)

const (
	subjectMentionPoints = 0.8
	positiveAffectPoints = 0.3
	positiveAffectCutoff = 0.3
)

// Matcher decides whether a rule fires for a non-empty answer value.
type Matcher func(value string) bool

func containsAny(needles ...string) Matcher {
	return func(value string) bool {
		for _, n := range needles {
			if strings.Contains(value, n) {
				return true
			}
		}
		return false
	}
}

func hasPrefix(prefix string) Matcher {
	return func(value string) bool { return strings.HasPrefix(value, prefix) }
}

func anyValue() Matcher {
	return func(string) bool { return true }
}

// Weight adds Points to Stream when its rule fires.
type Weight struct {
	Stream StreamID
	Points float64
}

// Rule is one branch of a field's decision. A rule may record a personality
// trait or a strength when it fires.
type Rule struct {
	Name     string
	Match    Matcher
	Weights  []Weight
	Trait    string
	Strength string
}

// RuleGroup reads one answer field. Its rules are mutually exclusive: the
// first matching rule fires and the rest are skipped. An empty answer never
// matches.
type RuleGroup struct {
	Field string
	Rules []Rule
}

// fire evaluates the group and returns the rule that fired, if any.
func (g RuleGroup) fire(answers AnswerSet) (Rule, bool) {
	value := answers.Get(g.Field)
	if value == "" {
		return Rule{}, false
	}
	for _, r := range g.Rules {
		if r.Match(value) {
			return r, true
		}
	}
	return Rule{}, false
}

func w(id StreamID, points float64) Weight { return Weight{Stream: id, Points: points} }

var academicPrior = []Weight{
	w(StreamPCM, 0.5), w(StreamPCB, 0.5), w(StreamCommerce, 0.5), w(StreamArts, 0.5),
}

func defaultRuleGroups() []RuleGroup {
	return []RuleGroup{
		{Field: FieldDiplomaInterest, Rules: []Rule{
			{Name: "diploma-yes", Match: hasPrefix("Yes"), Weights: []Weight{w(StreamDiploma, 3.0)}, Trait: "Practical & Hands-on"},
			{Name: "diploma-no", Match: anyValue(), Weights: academicPrior},
		}},
		{Field: FieldFavSubject, Rules: []Rule{
			{Name: "fav-math", Match: containsAny("Math"), Weights: []Weight{w(StreamPCM, 2.5), w(StreamCommerce, 1.0)}, Strength: "Mathematical Thinking"},
			{Name: "fav-physical-science", Match: containsAny("Physics", "Chemistry"), Weights: []Weight{w(StreamPCM, 2.0), w(StreamPCB, 1.5)}, Strength: "Scientific Aptitude"},
			{Name: "fav-biology", Match: containsAny("Biology"), Weights: []Weight{w(StreamPCB, 3.0)}, Strength: "Biological Sciences"},
			{Name: "fav-computer", Match: containsAny("Computer"), Weights: []Weight{w(StreamPCM, 2.0)}, Strength: "Technology & Computing"},
			{Name: "fav-commerce", Match: containsAny("Commerce", "Account"), Weights: []Weight{w(StreamCommerce, 3.0)}, Strength: "Business Acumen"},
			{Name: "fav-humanities", Match: containsAny("History", "Geography", "Language", "Arts"), Weights: []Weight{w(StreamArts, 2.5)}, Strength: "Humanities & Social Sciences"},
		}},
		{Field: FieldWorkStyle, Rules: []Rule{
			{Name: "work-problem-solving", Match: containsAny("Problem-solving", "building"), Weights: []Weight{w(StreamPCM, 1.5), w(StreamDiploma, 1.0)}, Trait: "Analytical Problem Solver"},
			{Name: "work-helping", Match: containsAny("Helping people"), Weights: []Weight{w(StreamPCB, 1.5), w(StreamArts, 1.0)}, Trait: "Empathetic Helper"},
			{Name: "work-creative", Match: containsAny("Creative"), Weights: []Weight{w(StreamArts, 1.5)}, Trait: "Creative Thinker"},
			{Name: "work-managing", Match: containsAny("Managing"), Weights: []Weight{w(StreamCommerce, 1.5)}, Trait: "Strategic Organizer"},
		}},
		{Field: FieldLearningStyle, Rules: []Rule{
			{Name: "learn-hands-on", Match: containsAny("Hands-on"), Weights: []Weight{w(StreamDiploma, 1.0), w(StreamPCM, 0.5)}},
			{Name: "learn-visual", Match: containsAny("Visual"), Weights: []Weight{w(StreamArts, 0.5)}},
		}},
		{Field: FieldStrength, Rules: []Rule{
			{Name: "strength-logical", Match: containsAny("Logical"), Weights: []Weight{w(StreamPCM, 1.0)}, Trait: "Logical Thinker"},
			{Name: "strength-communication", Match: containsAny("Communication"), Weights: []Weight{w(StreamArts, 1.0), w(StreamCommerce, 0.5)}, Trait: "Great Communicator"},
			{Name: "strength-creativity", Match: containsAny("Creativity"), Weights: []Weight{w(StreamArts, 1.0)}, Trait: "Creative Mind"},
			{Name: "strength-leadership", Match: containsAny("Leadership"), Weights: []Weight{w(StreamCommerce, 1.0)}, Trait: "Natural Leader"},
			{Name: "strength-technical", Match: containsAny("Technical"), Weights: []Weight{w(StreamPCM, 1.0), w(StreamDiploma, 0.5)}, Trait: "Tech Savvy"},
		}},
		{Field: FieldCurrentStream, Rules: []Rule{
			{Name: "current-pcm", Match: containsAny("PCM"), Weights: []Weight{w(StreamPCM, 3.0)}},
			{Name: "current-pcb", Match: containsAny("PCB"), Weights: []Weight{w(StreamPCB, 3.0)}},
			{Name: "current-commerce", Match: containsAny("Commerce"), Weights: []Weight{w(StreamCommerce, 3.0)}},
			{Name: "current-humanities", Match: containsAny("Arts", "Humanities"), Weights: []Weight{w(StreamArts, 3.0)}},
		}},
		{Field: FieldCareerField, Rules: []Rule{
			{Name: "career-engineering", Match: containsAny("Engineering", "Tech"), Weights: []Weight{w(StreamPCM, 2.0)}},
			{Name: "career-medical", Match: containsAny("Medical", "Healthcare"), Weights: []Weight{w(StreamPCB, 2.5)}},
			{Name: "career-business", Match: containsAny("Business", "Finance"), Weights: []Weight{w(StreamCommerce, 2.0)}},
			{Name: "career-creative", Match: containsAny("Creative", "Design"), Weights: []Weight{w(StreamArts, 1.5)}},
			{Name: "career-law", Match: containsAny("Law", "Civil Services"), Weights: []Weight{w(StreamArts, 2.0), w(StreamCommerce, 1.0)}},
		}},
	}
}

// subjectRoutes sends a subject detected in free text to its stream.
var subjectRoutes = map[string]StreamID{
	textsignal.SubjectMathematics:     StreamPCM,
	textsignal.SubjectPhysics:         StreamPCM,
	textsignal.SubjectChemistry:       StreamPCM,
	textsignal.SubjectComputerScience: StreamPCM,
	textsignal.SubjectBiology:         StreamPCB,
	textsignal.SubjectCommerce:        StreamCommerce,
	textsignal.SubjectAccountancy:     StreamCommerce,
	textsignal.SubjectEconomics:       StreamCommerce,
	textsignal.SubjectHistory:         StreamArts,
	textsignal.SubjectGeography:       StreamArts,
	textsignal.SubjectArts:            StreamArts,
}
