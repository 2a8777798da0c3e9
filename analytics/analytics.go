// Package analytics implements the descriptive text statistics for a
// review corpus: cleaning, tokenization, frequency tables, n-grams and
// polarity scoring.
package analytics

import (
	"sort"
	"strings"

	"reviewlens/types"
)

const (
	// NGramTableSize caps the bigram/trigram tables.
	NGramTableSize = 50
	// TopWordsSize caps the per-sentiment-class word tables.
	TopWordsSize = 20
)

var punctReplacer = strings.NewReplacer("!", "", ".", "", ":", "", ",", "", "?", "")

// Clean lowercases text and strips the literal characters ! . : , ?
func Clean(text string) string {
	return punctReplacer.Replace(strings.ToLower(text))
}

// Tokenize cleans every cell of the review column, joins the cells with
// single spaces, splits on whitespace and drops stopwords and exclusion
// words. Exclusion words are matched exactly as supplied: they are not
// lowercased or trimmed, so an uppercase exclusion word never matches
// the lowercased token stream. That mismatch mirrors the labeling
// dashboards in the field and is kept deliberately.
func Tokenize(column []string, excludeWords []string) []string {
	cleaned := make([]string, 0, len(column))
	for _, cell := range column {
		cleaned = append(cleaned, Clean(cell))
	}

	excluded := make(map[string]struct{}, len(excludeWords))
	for _, w := range excludeWords {
		excluded[w] = struct{}{}
	}

	var tokens []string
	for _, tok := range strings.Fields(strings.Join(cleaned, " ")) {
		if IsStopword(tok) {
			continue
		}
		if _, skip := excluded[tok]; skip {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// FrequencyDistribution counts every distinct token, descending by
// count. Ties are broken alphabetically so the table is deterministic.
func FrequencyDistribution(tokens []string) []types.WordCount {
	return countTable(tokens, 0)
}

// NGrams returns the top n-gram table (joined with single spaces) for
// the token stream, capped at NGramTableSize rows.
func NGrams(tokens []string, n int) []types.WordCount {
	if n <= 0 || len(tokens) < n {
		return nil
	}
	grams := make([]string, 0, len(tokens)-n+1)
	for i := 0; i+n <= len(tokens); i++ {
		grams = append(grams, strings.Join(tokens[i:i+n], " "))
	}
	return countTable(grams, NGramTableSize)
}

// TopWordsBySentiment concatenates the raw (uncleaned) text of reviews
// in the given sentiment class, splits on whitespace, removes stopwords
// and returns the top TopWordsSize words. The exclusion list is not
// reapplied here; only the stopword set filters the raw tokens.
func TopWordsBySentiment(reviews []types.ScoredReview, class string) []types.WordCount {
	var words []string
	for _, r := range reviews {
		if r.SentimentType != class {
			continue
		}
		for _, w := range strings.Fields(r.Review) {
			if IsStopword(w) {
				continue
			}
			words = append(words, w)
		}
	}
	return countTable(words, TopWordsSize)
}

// WordCloudTable filters a frequency table down to entries with at
// least minCount occurrences and caps it at maxWords rows. minCount
// and maxWords values below 1 mean "no limit".
func WordCloudTable(freq []types.WordCount, minCount, maxWords int) []types.WordCount {
	var out []types.WordCount
	for _, wc := range freq {
		if minCount > 0 && wc.Count < minCount {
			continue
		}
		out = append(out, wc)
		if maxWords > 0 && len(out) == maxWords {
			break
		}
	}
	return out
}

// ParseExcludeWords splits a comma-separated exclusion list. Items are
// used as given apart from the split itself.
func ParseExcludeWords(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func countTable(items []string, limit int) []types.WordCount {
	counts := make(map[string]int, len(items))
	for _, it := range items {
		counts[it]++
	}

	table := make([]types.WordCount, 0, len(counts))
	for w, c := range counts {
		table = append(table, types.WordCount{Word: w, Count: c})
	}
	sort.Slice(table, func(i, j int) bool {
		if table[i].Count != table[j].Count {
			return table[i].Count > table[j].Count
		}
		return table[i].Word < table[j].Word
	})

	if limit > 0 && len(table) > limit {
		table = table[:limit]
	}
	return table
}
