package analytics

import (
	"strings"

	"github.com/jonreiter/govader"

	"reviewlens/types"
)

// Analyzer scores review polarity with a lexicon-based estimator. The
// compound score is in [-1, 1]; the zero value separates the three
// sentiment classes.
type Analyzer struct {
	sia *govader.SentimentIntensityAnalyzer
}

// NewAnalyzer builds a ready-to-use Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{sia: govader.NewSentimentIntensityAnalyzer()}
}

// Polarity returns the compound polarity score for text. Empty or
// blank text scores 0.
func (a *Analyzer) Polarity(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	return a.sia.PolarityScores(text).Compound
}

// SentimentClass maps a polarity score to its class: strictly positive
// scores are Positive, strictly negative are Negative, exactly zero is
// Neutral.
func SentimentClass(score float64) string {
	switch {
	case score > 0:
		return types.SentimentPositive
	case score < 0:
		return types.SentimentNegative
	default:
		return types.SentimentNeutral
	}
}

// Score builds the per-review sentiment record.
func (a *Analyzer) Score(review string) types.ScoredReview {
	score := a.Polarity(review)
	return types.ScoredReview{
		Review:        review,
		Sentiment:     score,
		SentimentType: SentimentClass(score),
	}
}
