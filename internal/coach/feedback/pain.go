package feedback

import "strings"

// PainClassifier decides whether a single logged set is a pain signal.
// The default is a keyword heuristic; swap it out to change pain
// detection without touching the aggregator or the analyzers above it.
type PainClassifier interface {
	IsPainSignal(note string, rpe *float64, reps int) bool
}

// KeywordPainClassifier flags sets whose note mentions pain vocabulary,
// or near-maximal grinders (RPE >= 9.5 at 3 reps or fewer) which
// correlate with joint complaints in practice.
type KeywordPainClassifier struct {
	keywords []string
}

func NewKeywordPainClassifier() *KeywordPainClassifier {
	return &KeywordPainClassifier{
		keywords: []string{
			"pain", "hurt", "sharp", "pinch", "tweak",
			"sore joint", "ache", "discomfort",
		},
	}
}

func (c *KeywordPainClassifier) IsPainSignal(note string, rpe *float64, reps int) bool {
	lowered := strings.ToLower(note)
	for _, keyword := range c.keywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	if rpe != nil && *rpe >= 9.5 && reps <= 3 {
		return true
	}
	return false
}
