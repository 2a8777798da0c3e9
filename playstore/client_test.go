package playstore

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reviewsPage renders a batchexecute response carrying the given review
// texts and continuation token ("" for end of feed).
func reviewsPage(t *testing.T, texts []string, token string) string {
	t.Helper()

	items := make([]interface{}, len(texts))
	for i, text := range texts {
		items[i] = []interface{}{nil, nil, nil, nil, text}
	}

	results := []interface{}{items}
	if token != "" {
		results = append(results, []interface{}{nil, token})
	}

	payload, err := json.Marshal(results)
	require.NoError(t, err)

	envelope, err := json.Marshal([][]interface{}{{"wrb.fr", "UsvDTd", string(payload)}})
	require.NoError(t, err)

	return ")]}'\n\n" + string(envelope)
}

func pageTexts(n int, prefix string) []string {
	texts := make([]string, n)
	for i := range texts {
		texts[i] = fmt.Sprintf("%s review %d", prefix, i)
	}
	return texts
}

func newTestClient(serverURL string) *Client {
	return NewClient(WithBaseURL(serverURL), WithPageInterval(0))
}

func TestReviewsPagination(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		switch requests {
		case 1:
			fmt.Fprint(w, reviewsPage(t, pageTexts(100, "p1"), "tok-1"))
		case 2:
			fmt.Fprint(w, reviewsPage(t, pageTexts(100, "p2"), "tok-2"))
		default:
			fmt.Fprint(w, reviewsPage(t, pageTexts(50, "p3"), ""))
		}
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	batch, err := c.Reviews(context.Background(), "com.example.app", ReviewQuery{Count: 250, Sort: SortNewest})
	require.NoError(t, err)

	assert.Equal(t, 3, requests)
	assert.Len(t, batch.Reviews, 250)
	assert.Equal(t, "p1 review 0", batch.Reviews[0])
	assert.Equal(t, "p3 review 49", batch.Reviews[249])
	assert.NotEmpty(t, batch.ID)
	assert.Equal(t, "com.example.app", batch.AppID)
}

// A page without a continuation token ends the batch short of the
// target, with no error.
func TestReviewsEarlyStop(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests == 1 {
			fmt.Fprint(w, reviewsPage(t, pageTexts(100, "p1"), "tok-1"))
			return
		}
		fmt.Fprint(w, reviewsPage(t, pageTexts(40, "p2"), ""))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	batch, err := c.Reviews(context.Background(), "com.example.app", ReviewQuery{Count: 300, Sort: SortNewest})
	require.NoError(t, err)
	assert.Equal(t, 2, requests)
	assert.Len(t, batch.Reviews, 140)
}

// No retry: a failed page request propagates immediately.
func TestReviewsFailFast(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests == 1 {
			fmt.Fprint(w, reviewsPage(t, pageTexts(100, "p1"), "tok-1"))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.Reviews(context.Background(), "com.example.app", ReviewQuery{Count: 200, Sort: SortNewest})
	require.Error(t, err)
	assert.Equal(t, 2, requests)
}

func TestReviewsRequestPayload(t *testing.T) {
	var firstBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if firstBody == "" {
			firstBody = r.FormValue("f.req")
		}
		fmt.Fprint(w, reviewsPage(t, pageTexts(10, "p1"), ""))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.Reviews(context.Background(), "com.example.app", ReviewQuery{
		Count: 250, Sort: SortRating, MinRating: 1, MaxRating: 3,
	})
	require.NoError(t, err)

	// First page asks for the page-size cap, carries the sort code and
	// the expanded score filter, and has no continuation token yet.
	assert.Contains(t, firstBody, `[100,null,null]`)
	assert.Contains(t, firstBody, `[2,3,`)
	assert.Contains(t, firstBody, `[null,[1,2,3]]`)
	assert.Contains(t, firstBody, `com.example.app`)
}

func TestReviewsValidation(t *testing.T) {
	c := NewClient(WithPageInterval(0))

	_, err := c.Reviews(context.Background(), "", ReviewQuery{Count: 10})
	assert.Error(t, err)

	_, err = c.Reviews(context.Background(), "com.example.app", ReviewQuery{Count: 0})
	assert.Error(t, err)

	_, err = c.Reviews(context.Background(), "com.example.app", ReviewQuery{Count: 5000})
	assert.Error(t, err)

	_, err = c.Reviews(context.Background(), "com.example.app", ReviewQuery{Count: 10, MinRating: 4, MaxRating: 2})
	assert.Error(t, err)
}

func TestParseSort(t *testing.T) {
	s, err := ParseSort("newest")
	require.NoError(t, err)
	assert.Equal(t, SortNewest, s)

	s, err = ParseSort("Rating")
	require.NoError(t, err)
	assert.Equal(t, SortRating, s)

	s, err = ParseSort("")
	require.NoError(t, err)
	assert.Equal(t, SortNewest, s)

	_, err = ParseSort("oldest")
	assert.Error(t, err)
}

func detailsPage(t *testing.T) string {
	t.Helper()

	node2 := make([]interface{}, 73)
	node2[0] = []interface{}{"My App"}
	node2[13] = []interface{}{"1,000,000+"}
	node2[51] = []interface{}{
		[]interface{}{nil, 4.5},
		nil,
		[]interface{}{nil, float64(12345)},
		[]interface{}{nil, float64(678)},
	}
	node2[72] = []interface{}{[]interface{}{nil, "A fine app."}}

	data := []interface{}{nil, []interface{}{nil, nil, node2}}
	raw, err := json.Marshal(data)
	require.NoError(t, err)

	return fmt.Sprintf(
		"<html><script>AF_initDataCallback({key: 'ds:5', hash: '1', data:%s, sideChannel: {}});</script></html>",
		raw,
	)
}

func TestAppDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "com.example.app", r.URL.Query().Get("id"))
		fmt.Fprint(w, detailsPage(t))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	meta, err := c.AppDetails(context.Background(), "com.example.app")
	require.NoError(t, err)

	assert.Equal(t, "My App", meta.Title)
	assert.Equal(t, "1,000,000+", meta.Installs)
	assert.Equal(t, 4.5, meta.Score)
	assert.Equal(t, int64(12345), meta.Ratings)
	assert.Equal(t, int64(678), meta.Reviews)
	assert.Equal(t, "A fine app.", meta.Description)
}

func TestAppDetailsMissingDataset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html>nothing here</html>")
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.AppDetails(context.Background(), "com.example.app")
	assert.Error(t, err)
}

func TestParseReviewsResponseEmptyPayload(t *testing.T) {
	envelope, err := json.Marshal([][]interface{}{{"wrb.fr", "UsvDTd", nil}})
	require.NoError(t, err)

	texts, token, err := parseReviewsResponse([]byte(")]}'\n" + string(envelope)))
	require.NoError(t, err)
	assert.Empty(t, texts)
	assert.Empty(t, token)
}
