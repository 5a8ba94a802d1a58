// internal/engine/textsignal/lexicon.go
package textsignal

// wordSet is a closed, read-only vocabulary.
type wordSet map[string]struct{}

func newWordSet(words ...string) wordSet {
	s := make(wordSet, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

func (s wordSet) has(word string) bool {
	_, ok := s[word]
	return ok
}

// Category is one of the coarse topical intents.
type Category string

const (
	CategoryTechnical Category = "technical"
	CategoryCreative  Category = "creative"
	CategoryBusiness  Category = "business"
	CategoryMedical   Category = "medical"
)

// Lexicon holds every word list the extractor matches against. It is built
// once and never mutated afterwards.
type Lexicon struct {
	positive     wordSet
	negative     wordSet
	intensifiers wordSet
	intents      map[Category]wordSet
	subjects     []subjectTerm
}

// subjectTerm maps a detectable subject name to the normalized tokens that
// signal it.
type subjectTerm struct {
	name   string
	tokens wordSet
}

// Subject names surfaced by DetectSubjects.
const (
	SubjectMathematics     = "Mathematics"
	SubjectPhysics         = "Physics"
	SubjectChemistry       = "Chemistry"
	SubjectComputerScience = "Computer Science"
	SubjectBiology         = "Biology"
	SubjectCommerce        = "Commerce"
	SubjectAccountancy     = "Accountancy"
	SubjectEconomics       = "Economics"
	SubjectHistory         = "History"
	SubjectGeography       = "Geography"
	SubjectArts            = "Arts"
)

// DefaultLexicon returns the built-in English lexicon.
func DefaultLexicon() *Lexicon {
	return &Lexicon{
		positive: newWordSet(
			"love", "enjoy", "like", "excited", "interested", "passionate",
			"great", "awesome", "good", "fond", "really", "very",
		),
		// "don't" normalizes to "don t", so only the apostrophe-free form can match.
		negative: newWordSet(
			"hate", "dislike", "bored", "boring", "dont", "not",
			"hard", "difficult", "confused", "struggle", "worried",
		),
		intensifiers: newWordSet("really", "very", "extremely", "super", "absolutely", "totally"),
		intents: map[Category]wordSet{
			CategoryTechnical: newWordSet("computer", "programming", "coding", "software", "technology", "data", "engineering"),
			CategoryCreative:  newWordSet("design", "art", "creative", "drawing", "music", "writing", "fashion"),
			CategoryBusiness:  newWordSet("business", "marketing", "management", "entrepreneur", "sales", "commerce"),
			CategoryMedical:   newWordSet("medical", "doctor", "nurse", "health", "biology", "medicine", "patient"),
		},
		subjects: []subjectTerm{
			{SubjectMathematics, newWordSet("math", "maths", "mathematics")},
			{SubjectPhysics, newWordSet("physics")},
			{SubjectChemistry, newWordSet("chemistry")},
			{SubjectComputerScience, newWordSet("computer", "computers", "coding", "programming")},
			{SubjectBiology, newWordSet("biology")},
			{SubjectCommerce, newWordSet("commerce")},
			{SubjectAccountancy, newWordSet("accountancy", "accounting", "accounts")},
			{SubjectEconomics, newWordSet("economics")},
			{SubjectHistory, newWordSet("history")},
			{SubjectGeography, newWordSet("geography")},
			{SubjectArts, newWordSet("art", "arts", "painting", "drawing")},
		},
	}
}

// Subjects lists every subject name DetectSubjects can return, in detection order.
func (l *Lexicon) Subjects() []string {
	out := make([]string, 0, len(l.subjects))
	for _, s := range l.subjects {
		out = append(out, s.name)
	}
	return out
}
