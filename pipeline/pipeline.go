// Package pipeline runs the per-action flows over an in-memory batch:
// dual labeling and corpus analytics. Each action works on its own
// freshly loaded data and returns a complete result; nothing is kept
// between actions.
package pipeline

import (
	"github.com/google/uuid"

	"reviewlens/analytics"
	"reviewlens/classifier"
	"reviewlens/types"
)

// Options are the user knobs for the analytics flow.
type Options struct {
	// ExcludeWords is the comma-split exclusion list, items used as
	// given.
	ExcludeWords []string
	// MinWordFrequency and MaxWordCloudWords shape the word-cloud
	// table. Values below 1 disable the respective limit.
	MinWordFrequency  int
	MaxWordCloudWords int
}

// LabelBatch assigns both labels to every review, preserving order.
// Labeling is total: every review gets exactly one driver and one
// topic label.
func LabelBatch(reviews []string) []types.LabeledReview {
	out := make([]types.LabeledReview, len(reviews))
	for i, r := range reviews {
		out[i] = types.LabeledReview{
			Review:   r,
			Driver:   classifier.ClassifyDriver(r),
			Category: classifier.ClassifyTopic(r),
		}
	}
	return out
}

// ScoreBatch computes the per-review sentiment records, preserving
// order.
func ScoreBatch(a *analytics.Analyzer, reviews []string) []types.ScoredReview {
	out := make([]types.ScoredReview, len(reviews))
	for i, r := range reviews {
		out[i] = a.Score(r)
	}
	return out
}

// Analyze runs the full analytics pass over a corpus: per-review
// sentiment, token frequency table, bigrams/trigrams, top words per
// sentiment class and the word-cloud table.
func Analyze(a *analytics.Analyzer, reviews []string, opts Options) types.InsightReport {
	scored := ScoreBatch(a, reviews)

	tokens := analytics.Tokenize(reviews, opts.ExcludeWords)
	freq := analytics.FrequencyDistribution(tokens)

	report := types.InsightReport{
		BatchID:     uuid.NewString(),
		Reviews:     scored,
		TokenCount:  len(tokens),
		Frequencies: freq,
		Bigrams:     analytics.NGrams(tokens, 2),
		Trigrams:    analytics.NGrams(tokens, 3),
		TopBySentiment: map[string][]types.WordCount{
			types.SentimentPositive: analytics.TopWordsBySentiment(scored, types.SentimentPositive),
			types.SentimentNegative: analytics.TopWordsBySentiment(scored, types.SentimentNegative),
			types.SentimentNeutral:  analytics.TopWordsBySentiment(scored, types.SentimentNeutral),
		},
		WordCloud: analytics.WordCloudTable(freq, opts.MinWordFrequency, opts.MaxWordCloudWords),
	}
	return report
}
