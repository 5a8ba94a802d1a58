// internal/engine/textsignal/extractor.go
package textsignal

import (
	"sort"
	"strings"
	"unicode"
)

const (
	minKeywordLength = 3
	intensifierStep  = 0.2
)

// Extractor turns free text into bounded numeric and categorical signal.
// All methods are pure and safe for concurrent use.
type Extractor struct {
	lex *Lexicon
}

// Intent is the per-category keyword overlap of a text plus its sentiment.
type Intent struct {
	Technical int     `json:"technical"`
	Creative  int     `json:"creative"`
	Business  int     `json:"business"`
	Medical   int     `json:"medical"`
	Sentiment float64 `json:"sentiment"`
}

// Keywords is an unordered set of normalized tokens.
type Keywords map[string]struct{}

// Sorted returns the keywords in lexical order.
func (k Keywords) Sorted() []string {
	out := make([]string, 0, len(k))
	for w := range k {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Has reports whether word is in the set.
func (k Keywords) Has(word string) bool {
	_, ok := k[word]
	return ok
}

var defaultExtractor = New(DefaultLexicon())

// New returns an Extractor over lex. A nil lexicon falls back to DefaultLexicon.
func New(lex *Lexicon) *Extractor {
	if lex == nil {
		lex = DefaultLexicon()
	}
	return &Extractor{lex: lex}
}

// Default returns the shared extractor over the built-in lexicon.
func Default() *Extractor {
	return defaultExtractor
}

// Normalize lower-cases text and replaces every character outside [a-z0-9 ]
// with a single space. Normalize(Normalize(s)) == Normalize(s).
func (e *Extractor) Normalize(text string) string {
	return strings.Map(func(r rune) rune {
		r = unicode.ToLower(r)
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == ' ' {
			return r
		}
		return ' '
	}, text)
}

// NormalizeAny normalizes v when it is a string and returns "" otherwise.
func (e *Extractor) NormalizeAny(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return e.Normalize(s)
}

func (e *Extractor) tokens(text string) []string {
	return strings.Fields(e.Normalize(text))
}

// ExtractKeywords returns the distinct normalized tokens longer than two characters.
func (e *Extractor) ExtractKeywords(text string) Keywords {
	out := make(Keywords)
	for _, w := range e.tokens(text) {
		if len(w) >= minKeywordLength {
			out[w] = struct{}{}
		}
	}
	return out
}

// SentimentScore returns a score in [-1, 1]. Text without any positive or
// negative lexicon hit scores exactly 0.
func (e *Extractor) SentimentScore(text string) float64 {
	var pos, neg, inten int
	for _, w := range e.tokens(text) {
		if e.lex.positive.has(w) {
			pos++
		}
		if e.lex.negative.has(w) {
			neg++
		}
		if e.lex.intensifiers.has(w) {
			inten++
		}
	}

	if pos+neg == 0 {
		return 0.0
	}

	base := float64(pos-neg) / float64(pos+neg)
	if inten > 0 {
		base *= 1 + float64(inten)*intensifierStep
	}
	return clamp(base, -1.0, 1.0)
}

// ExtractIntent counts keyword overlap with each topical category.
func (e *Extractor) ExtractIntent(text string) Intent {
	kw := e.ExtractKeywords(text)
	return Intent{
		Technical: e.overlap(kw, CategoryTechnical),
		Creative:  e.overlap(kw, CategoryCreative),
		Business:  e.overlap(kw, CategoryBusiness),
		Medical:   e.overlap(kw, CategoryMedical),
		Sentiment: e.SentimentScore(text),
	}
}

func (e *Extractor) overlap(kw Keywords, c Category) int {
	n := 0
	for w := range e.lex.intents[c] {
		if kw.Has(w) {
			n++
		}
	}
	return n
}

// DetectSubjects returns the school subjects mentioned in text, each at most
// once, in lexicon order.
func (e *Extractor) DetectSubjects(text string) []string {
	toks := e.tokens(text)
	if len(toks) == 0 {
		return nil
	}

	var found []string
	for _, s := range e.lex.subjects {
		for _, w := range toks {
			if s.tokens.has(w) {
				found = append(found, s.name)
				break
			}
		}
	}
	return found
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Package-level helpers over the default extractor.

func Normalize(text string) string { return defaultExtractor.Normalize(text) }
func ExtractKeywords(text string) Keywords { return defaultExtractor.ExtractKeywords(text) }
func SentimentScore(text string) float64 { return defaultExtractor.SentimentScore(text) }
func ExtractIntent(text string) Intent { return defaultExtractor.ExtractIntent(text) }
func DetectSubjects(text string) []string { return defaultExtractor.DetectSubjects(text) }
