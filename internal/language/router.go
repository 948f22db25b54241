// Package language routes comment text to the correct model branch.
package language

import (
	"errors"
	"regexp"
	"strings"

	"github.com/jonesrussell/comment-sentiment/internal/domain"
	"github.com/jonesrussell/comment-sentiment/internal/logger"
)

// minDetectableLength is the shortest text the statistical detector will
// attempt. Below this the signal is noise.
const minDetectableLength = 10

var errUndetectable = errors.New("language: text too short or ambiguous")

// Router decides whether a comment goes to the Japanese ensemble or the
// multilingual backend. The script check is authoritative: statistical
// detection is unreliable on short comments, a single kana settles it.
type Router struct {
	detector *statDetector
	logger   logger.Logger
}

// NewRouter creates a language router.
func NewRouter(log logger.Logger) *Router {
	return &Router{
		detector: newStatDetector(),
		logger:   log,
	}
}

// Route classifies text as Japanese or other. It never fails: detector
// errors are absorbed into the other branch so the pipeline can proceed
// with the multilingual model.
func (r *Router) Route(text string) domain.Language {
	if containsJapaneseScript(text) {
		return domain.LanguageJapanese
	}

	lang, err := r.detector.detect(text)
	if err != nil {
		r.logger.Debug("language detection inconclusive", logger.Error(err))
		return domain.LanguageOther
	}
	if lang == "ja" {
		return domain.LanguageJapanese
	}
	return domain.LanguageOther
}

// containsJapaneseScript reports whether text contains hiragana,
// katakana, or CJK unified ideographs.
func containsJapaneseScript(text string) bool {
	for _, r := range text {
		if (r >= 0x3040 && r <= 0x309F) || // hiragana
			(r >= 0x30A0 && r <= 0x30FF) || // katakana
			(r >= 0x4E00 && r <= 0x9FFF) { // kanji
			return true
		}
	}
	return false
}

// statDetector scores text against per-language function-word patterns.
// It only needs to separate romanized Japanese from everything else, so
// the inventory is small and the loser is always "other".
type statDetector struct {
	patterns map[string]*regexp.Regexp
}

func newStatDetector() *statDetector {
	return &statDetector{
		patterns: map[string]*regexp.Regexp{
			"ja":    regexp.MustCompile(`\b(wa|ga|wo|ni|de|desu|masu|deshita|arigatou|sugoi|kawaii|sensei|senpai|chan|kun|sama)\b`),
			"en":    regexp.MustCompile(`\b(the|and|that|have|for|not|with|you|this|but|his|from|they)\b`),
			"es":    regexp.MustCompile(`\b(que|de|no|la|el|es|en|un|por|con|como|para|pero)\b`),
			"fr":    regexp.MustCompile(`\b(le|et|un|il|être|en|avoir|que|pour|dans|ce|une)\b`),
			"de":    regexp.MustCompile(`\b(der|die|und|in|den|von|zu|das|mit|sich|auf|ist)\b`),
		},
	}
}

// detect returns the best-scoring language code, or errUndetectable when
// the text is too short or no pattern matches.
func (d *statDetector) detect(text string) (string, error) {
	if len(text) < minDetectableLength {
		return "", errUndetectable
	}

	lower := strings.ToLower(text)
	best, bestScore := "", 0
	for lang, p := range d.patterns {
		score := len(p.FindAllString(lower, -1))
		if score > bestScore {
			best, bestScore = lang, score
		}
	}
	if bestScore == 0 {
		return "", errUndetectable
	}
	return best, nil
}
