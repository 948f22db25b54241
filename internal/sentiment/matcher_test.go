package sentiment

import "testing"

func TestAnalyzeNegativeHits(t *testing.T) {
	m := NewMatcher()

	tests := []struct {
		name string
		text string
		want int
	}{
		{"no hits", "こんにちは", 0},
		{"single hit", "ひどい", 1},
		{"two distinct patterns", "最悪だしゴミ", 2},
		{"repeated pattern counts once", "ゴミゴミゴミ", 1},
		{"english case insensitive", "This is GARBAGE", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Analyze(tt.text).NegativeHits; got != tt.want {
				t.Errorf("NegativeHits(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestAnalyzeSarcasm(t *testing.T) {
	m := NewMatcher()

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"deadpan marker", "さすが（棒）", true},
		{"overdone praise", "最高ですね！！！", true},
		{"laugh marker deadpan", "見た（笑）", true},
		{"laugh marker followed by genuine laugh", "見た（笑）wwww", false},
		{"plain praise", "最高", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Analyze(tt.text).Sarcasm; got != tt.want {
				t.Errorf("Sarcasm(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestAnalyzeRhetorical(t *testing.T) {
	m := NewMatcher()

	if !m.Analyze("これが面白いの？").Rhetorical {
		t.Error("expected これが...？ to read as rhetorical")
	}
	if !m.Analyze("are you serious?").Rhetorical {
		t.Error("expected english rhetorical question to match")
	}
	if m.Analyze("面白かった").Rhetorical {
		t.Error("plain statement should not be rhetorical")
	}
}

func TestAnalyzeNegation(t *testing.T) {
	m := NewMatcher()

	res := m.Analyze("いいとは思わない")
	if res.PositiveHits == 0 {
		t.Error("expected a positive pattern hit")
	}
	if !res.Negation {
		t.Error("expected negation cue")
	}

	if m.Analyze("good stuff").Negation {
		t.Error("unexpected negation cue")
	}
}

func TestVote(t *testing.T) {
	m := NewMatcher()

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"positive word", "ありがとう", true},
		{"negative word", "つまらない", false},
		{"no words ties positive", "hello", true},
		{"more negative than positive", "いいけど最悪で退屈", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Vote(tt.text); got != tt.want {
				t.Errorf("Vote(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
