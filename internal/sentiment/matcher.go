package sentiment

import (
	"regexp"
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"
)

// MatchResult summarizes one pass of the lexicon over a comment.
// Hit counts are distinct patterns, not occurrences.
type MatchResult struct {
	NegativeHits int
	PositiveHits int
	Sarcasm      bool
	Rhetorical   bool
	Negation     bool
}

// Matcher runs the lexicon tables against comment text. Automatons and
// regexps are built once in NewMatcher; Analyze is safe for concurrent
// use.
type Matcher struct {
	strongNeg *ahocorasick.Matcher
	strongPos *ahocorasick.Matcher
	voteNeg   *ahocorasick.Matcher
	votePos   *ahocorasick.Matcher

	sarcasm      []*regexp.Regexp
	laughMarkers []*regexp.Regexp
	rhetorical   []*regexp.Regexp
}

// NewMatcher compiles all lexicon tables.
func NewMatcher() *Matcher {
	return &Matcher{
		strongNeg:    ahocorasick.NewStringMatcher(strongNegativePatterns),
		strongPos:    ahocorasick.NewStringMatcher(strongPositivePatterns),
		voteNeg:      ahocorasick.NewStringMatcher(negativeWords),
		votePos:      ahocorasick.NewStringMatcher(positiveWords),
		sarcasm:      compileAll(sarcasmPatterns),
		laughMarkers: compileAll(laughMarkerPatterns),
		rhetorical:   compileAll(rhetoricalPatterns),
	}
}

func compileAll(patterns []string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(p))
	}
	return compiled
}

// Analyze runs every table against text in one call.
func (m *Matcher) Analyze(text string) MatchResult {
	lower := strings.ToLower(text)

	return MatchResult{
		NegativeHits: distinctHits(m.strongNeg, text, lower),
		PositiveHits: distinctHits(m.strongPos, text, lower),
		Sarcasm:      m.hasSarcasm(text),
		Rhetorical:   anyMatch(m.rhetorical, text),
		Negation:     m.hasNegation(lower),
	}
}

// Vote is the binary fallback classification: true means positive.
// Ties go positive.
func (m *Matcher) Vote(text string) bool {
	lower := strings.ToLower(text)
	pos := distinctHits(m.votePos, text, lower)
	neg := distinctHits(m.voteNeg, text, lower)
	return pos >= neg
}

// distinctHits counts patterns found in either the original or the
// lowercased text. English entries are stored lowercase, so matching
// both forms makes them case-insensitive without touching the
// Japanese entries.
func distinctHits(matcher *ahocorasick.Matcher, text, lower string) int {
	seen := make(map[int]struct{})
	for _, idx := range matcher.Match([]byte(lower)) {
		seen[int(idx)] = struct{}{}
	}
	if lower != text {
		for _, idx := range matcher.Match([]byte(text)) {
			seen[int(idx)] = struct{}{}
		}
	}
	return len(seen)
}

func anyMatch(patterns []*regexp.Regexp, text string) bool {
	for _, p := range patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// hasSarcasm checks the sarcasm regexps plus the laugh markers. A laugh
// marker counts only when no "www" follows it: trailing w-runs signal a
// genuine laugh, not deadpan.
func (m *Matcher) hasSarcasm(text string) bool {
	if anyMatch(m.sarcasm, text) {
		return true
	}
	for _, p := range m.laughMarkers {
		for _, loc := range p.FindAllStringIndex(text, -1) {
			if !strings.Contains(text[loc[1]:], "www") {
				return true
			}
		}
	}
	return false
}

func (m *Matcher) hasNegation(lower string) bool {
	for _, cue := range negationCues {
		if strings.Contains(lower, cue) {
			return true
		}
	}
	return false
}
