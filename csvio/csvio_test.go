package csvio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reviewlens/types"
)

func TestReadReviews(t *testing.T) {
	in := "Review,Rating\ngreat app,5\nkeeps crashing,1\n"
	reviews, err := ReadReviews(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"great app", "keeps crashing"}, reviews)
}

func TestReadReviewsMissingColumn(t *testing.T) {
	in := "Text,Rating\ngreat app,5\n"
	_, err := ReadReviews(strings.NewReader(in))
	assert.ErrorIs(t, err, ErrMissingReviewColumn)
}

func TestReadReviewsQuotedHeader(t *testing.T) {
	in := "\"Review\"\n\"has, comma\"\n"
	reviews, err := ReadReviews(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"has, comma"}, reviews)
}

func TestWriteLabeledRoundTrip(t *testing.T) {
	rows := []types.LabeledReview{
		{Review: "smooth process", Driver: types.DriverProcess, Category: types.TopicUnknown},
		{Review: "app crashed", Driver: types.DriverTechnology, Category: types.TopicTechSupport},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteLabeled(&buf, rows))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Review,Label,Category", lines[0])
	assert.Contains(t, lines[1], "smooth process")
	assert.Contains(t, lines[1], "Process")

	// Output parses back with the same Review order.
	back, err := ReadReviews(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, []string{"smooth process", "app crashed"}, back)
}

func TestWriteScoredHeader(t *testing.T) {
	rows := []types.ScoredReview{
		{Review: "great", Sentiment: 0.62, SentimentType: types.SentimentPositive},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteScored(&buf, rows))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Review,sentiment,sentiment_type", lines[0])
	assert.Contains(t, lines[1], "Positive")
}

func TestWriteReviews(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReviews(&buf, []string{"a", "b"}))
	assert.Equal(t, "Review\na\nb\n", buf.String())
}
