package handlers

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"reviewlens/analytics"
	"reviewlens/csvio"
	"reviewlens/pipeline"
	"reviewlens/summarization"
)

// AnalyzeReviews runs the full analytics pass over an uploaded CSV and
// returns the insight report as JSON. Form fields: exclude_words
// (comma-separated, used as given), min_word_frequency and max_words
// (word-cloud knobs).
func AnalyzeReviews(c *gin.Context, analyzer *analytics.Analyzer) {
	reviews, ok := readUpload(c)
	if !ok {
		return
	}

	opts := pipeline.Options{
		ExcludeWords:      analytics.ParseExcludeWords(c.PostForm("exclude_words")),
		MinWordFrequency:  formInt(c, "min_word_frequency"),
		MaxWordCloudWords: formInt(c, "max_words"),
	}

	report := pipeline.Analyze(analyzer, reviews, opts)
	c.JSON(http.StatusOK, report)
}

// ExportSentiment scores an uploaded CSV and returns the sentiment CSV
// (Review, sentiment, sentiment_type), same rows, same order.
func ExportSentiment(c *gin.Context, analyzer *analytics.Analyzer) {
	reviews, ok := readUpload(c)
	if !ok {
		return
	}

	scored := pipeline.ScoreBatch(analyzer, reviews)

	var buf bytes.Buffer
	if err := csvio.WriteScored(&buf, scored); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	sendCSV(c, "sentiment_reviews.csv", buf.Bytes())
}

// SummarizeNegative scores an uploaded CSV and asks the summarizer for
// a short complaint summary. Returns 503 when the summarizer is not
// configured.
func SummarizeNegative(c *gin.Context, analyzer *analytics.Analyzer, summarizer *summarization.Summarizer) {
	if summarizer == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "summaries are not configured"})
		return
	}

	reviews, ok := readUpload(c)
	if !ok {
		return
	}

	scored := pipeline.ScoreBatch(analyzer, reviews)

	summary, err := summarizer.SummarizeNegative(c.Request.Context(), scored)
	if err != nil {
		if errors.Is(err, summarization.ErrNoReviews) {
			c.JSON(http.StatusOK, gin.H{"summary": "", "message": "no negative reviews found"})
			return
		}
		log.Printf("Error summarizing reviews: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "summary failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

func formInt(c *gin.Context, field string) int {
	val := c.PostForm(field)
	if val == "" {
		return 0
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return n
}
