package types

// Review is a single review text. Reviews have no identity beyond their
// position in the batch and are immutable once fetched.
type Review = string

// ReviewBatch is an ordered batch of review text assembled by one fetch
// action. Order follows the source's sort order; duplicates returned by
// the source are kept as-is.
type ReviewBatch struct {
	ID      string   `json:"id"`
	AppID   string   `json:"app_id"`
	Reviews []Review `json:"reviews"`
}

// AppMetadata is the single-shot app details record displayed alongside
// a scraped batch.
type AppMetadata struct {
	Title       string  `json:"title"`
	Installs    string  `json:"installs"`
	Score       float64 `json:"score"`
	Ratings     int64   `json:"ratings"`
	Reviews     int64   `json:"reviews"`
	Description string  `json:"description"`
}

// LabeledReview is a review plus the two independently computed labels.
type LabeledReview struct {
	Review   string `json:"review" csv:"Review"`
	Driver   string `json:"label" csv:"Label"`
	Category string `json:"category" csv:"Category"`
}

// ScoredReview is a review plus its polarity score and derived class.
type ScoredReview struct {
	Review        string  `json:"review" csv:"Review"`
	Sentiment     float64 `json:"sentiment" csv:"sentiment"`
	SentimentType string  `json:"sentiment_type" csv:"sentiment_type"`
}

// WordCount is one row of a frequency table.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// InsightReport aggregates everything the analytics flow computes for
// one corpus. All tables are ordered by descending count.
type InsightReport struct {
	BatchID        string                 `json:"batch_id"`
	Reviews        []ScoredReview         `json:"reviews"`
	TokenCount     int                    `json:"token_count"`
	Frequencies    []WordCount            `json:"frequencies"`
	Bigrams        []WordCount            `json:"bigrams"`
	Trigrams       []WordCount            `json:"trigrams"`
	TopBySentiment map[string][]WordCount `json:"top_by_sentiment"`
	WordCloud      []WordCount            `json:"word_cloud"`
}
