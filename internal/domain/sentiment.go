package domain

import "math"

// Language identifies which model branch scored a comment.
type Language string

// Language values attached to sentiment scores.
const (
	LanguageJapanese Language = "ja"
	LanguageOther    Language = "other"
	LanguageUnknown  Language = "unknown"
)

// SentimentLabel is the dominant class of a distribution.
type SentimentLabel string

// Dominant label values. LabelOther covers ties and neutral-dominant
// distributions when counting.
const (
	LabelPositive SentimentLabel = "positive"
	LabelNegative SentimentLabel = "negative"
	LabelNeutral  SentimentLabel = "neutral"
	LabelOther    SentimentLabel = "other"
)

// distributionTolerance is the allowed deviation of a distribution's sum
// from 1.0.
const distributionTolerance = 0.01

// SentimentScores is a three-way probability distribution over sentiment
// classes. Every production step (inference, ensemble, rule adjustment)
// keeps the three slots summing to 1.0 within distributionTolerance.
type SentimentScores struct {
	Positive float64  `json:"positive"`
	Negative float64  `json:"negative"`
	Neutral  float64  `json:"neutral"`
	Language Language `json:"language"`
}

// UniformScores returns the balanced distribution used for empty or
// unclassifiable text. Neutral gets 0.34 to absorb rounding.
func UniformScores(lang Language) SentimentScores {
	return SentimentScores{Positive: 0.33, Negative: 0.33, Neutral: 0.34, Language: lang}
}

// Sum returns the total probability mass.
func (s SentimentScores) Sum() float64 {
	return s.Positive + s.Negative + s.Neutral
}

// Valid reports whether s is a well-formed distribution: non-nil, each
// slot in [0,1], and slots summing to 1.0 within tolerance. Callers
// re-supplying cached comments must check this before trusting a stored
// sentiment and re-classify anything that fails.
func (s *SentimentScores) Valid() bool {
	if s == nil {
		return false
	}
	for _, v := range [3]float64{s.Positive, s.Negative, s.Neutral} {
		if v < 0 || v > 1 {
			return false
		}
	}
	return math.Abs(s.Sum()-1.0) <= distributionTolerance
}

// Dominant returns the label with the strictly highest slot. Any tie at
// the maximum returns LabelOther rather than arbitrarily favoring one
// class.
func (s SentimentScores) Dominant() SentimentLabel {
	maxScore := math.Max(s.Positive, math.Max(s.Negative, s.Neutral))

	atMax := 0
	for _, v := range [3]float64{s.Positive, s.Negative, s.Neutral} {
		if v == maxScore {
			atMax++
		}
	}
	if atMax > 1 {
		return LabelOther
	}

	switch maxScore {
	case s.Positive:
		return LabelPositive
	case s.Negative:
		return LabelNegative
	default:
		return LabelNeutral
	}
}
