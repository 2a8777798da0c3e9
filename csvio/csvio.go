// Package csvio reads and writes the dashboard's CSV interchange
// format. Input files must carry a column literally named "Review";
// outputs add the label or sentiment columns, UTF-8 with a header row.
package csvio

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"reviewlens/types"
)

// ErrMissingReviewColumn is returned when an uploaded file has no
// "Review" column. It is a validation outcome, not a processing
// failure: no partial output is produced.
var ErrMissingReviewColumn = errors.New("input file has no Review column")

type reviewRow struct {
	Review string `csv:"Review"`
}

// ReadReviews parses an uploaded CSV and returns the Review column in
// file order. Other columns are ignored.
func ReadReviews(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	if !hasReviewHeader(data) {
		return nil, ErrMissingReviewColumn
	}

	var rows []reviewRow
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, fmt.Errorf("parse input csv: %w", err)
	}

	reviews := make([]string, len(rows))
	for i, row := range rows {
		reviews[i] = row.Review
	}
	return reviews, nil
}

// WriteReviews writes a plain review batch (Review column only).
func WriteReviews(w io.Writer, reviews []string) error {
	rows := make([]reviewRow, len(reviews))
	for i, r := range reviews {
		rows[i] = reviewRow{Review: r}
	}
	return gocsv.Marshal(rows, w)
}

// WriteLabeled writes the labeling flow output: Review, Label, Category.
func WriteLabeled(w io.Writer, rows []types.LabeledReview) error {
	return gocsv.Marshal(rows, w)
}

// WriteScored writes the analytics flow output: Review, sentiment,
// sentiment_type.
func WriteScored(w io.Writer, rows []types.ScoredReview) error {
	return gocsv.Marshal(rows, w)
}

// hasReviewHeader checks the header row for a "Review" column before
// any row is processed, so a malformed file is rejected up front.
func hasReviewHeader(data []byte) bool {
	line := data
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		line = data[:i]
	}
	for _, field := range bytes.Split(line, []byte(",")) {
		field = bytes.Trim(bytes.TrimSpace(field), `"`)
		field = bytes.TrimPrefix(field, []byte("\ufeff"))
		if string(field) == "Review" {
			return true
		}
	}
	return false
}
