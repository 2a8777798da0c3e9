package handlers

import (
	"bytes"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"reviewlens/csvio"
	"reviewlens/pipeline"
)

// LabelReviews takes an uploaded CSV with a Review column and returns
// the labeled CSV (Review, Label, Category), same rows, same order.
func LabelReviews(c *gin.Context) {
	reviews, ok := readUpload(c)
	if !ok {
		return
	}

	labeled := pipeline.LabelBatch(reviews)

	var buf bytes.Buffer
	if err := csvio.WriteLabeled(&buf, labeled); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	sendCSV(c, "labeled_reviews.csv", buf.Bytes())
}

// readUpload pulls the "file" form upload and parses its Review
// column. On failure it writes the validation response and returns
// ok=false.
func readUpload(c *gin.Context) ([]string, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file upload"})
		return nil, false
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	defer f.Close()

	reviews, err := csvio.ReadReviews(f)
	if err != nil {
		if errors.Is(err, csvio.ErrMissingReviewColumn) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return nil, false
		}
		log.Printf("Error parsing uploaded csv: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not parse uploaded file"})
		return nil, false
	}

	return reviews, true
}
