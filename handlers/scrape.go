package handlers

import (
	"bytes"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"reviewlens/csvio"
	"reviewlens/pipeline"
	"reviewlens/playstore"
)

// ScrapeRequest is the scrape flow's input surface.
type ScrapeRequest struct {
	AppID     string `json:"app_id" binding:"required"`
	Count     int    `json:"count" binding:"required"`
	Sort      string `json:"sort"`
	MinRating int    `json:"min_rating"`
	MaxRating int    `json:"max_rating"`
}

// ScrapeReviews fetches a review batch from the store. With
// ?format=csv the batch is returned as a Review-column CSV download;
// otherwise as JSON. The batch is optionally labeled in the same pass
// with ?label=true.
func ScrapeReviews(c *gin.Context, client *playstore.Client) {
	var request ScrapeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sort, err := playstore.ParseSort(request.Sort)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	query := playstore.ReviewQuery{
		Count:     request.Count,
		Sort:      sort,
		MinRating: request.MinRating,
		MaxRating: request.MaxRating,
	}
	if err := query.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	batch, err := client.Reviews(c.Request.Context(), request.AppID, query)
	if err != nil {
		log.Printf("Error fetching reviews for %s: %v", request.AppID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "fetch failed"})
		return
	}

	if len(batch.Reviews) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"batch":   batch,
			"message": "no reviews found for this app",
		})
		return
	}

	if c.Query("format") == "csv" {
		var buf bytes.Buffer
		if err := csvio.WriteReviews(&buf, batch.Reviews); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		sendCSV(c, "reviews_"+batch.ID+".csv", buf.Bytes())
		return
	}

	if c.Query("label") == "true" {
		c.JSON(http.StatusOK, gin.H{
			"batch":   batch,
			"labeled": pipeline.LabelBatch(batch.Reviews),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"batch": batch})
}

// AppDetails returns the metadata record for one app.
func AppDetails(c *gin.Context, client *playstore.Client) {
	appID := c.Param("id")

	meta, err := client.AppDetails(c.Request.Context(), appID)
	if err != nil {
		log.Printf("Error fetching app details for %s: %v", appID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "fetch failed"})
		return
	}

	c.JSON(http.StatusOK, meta)
}

func sendCSV(c *gin.Context, filename string, data []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
