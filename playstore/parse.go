package playstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"reviewlens/types"
)

// The batchexecute endpoint speaks an envelope format: an anti-XSSI
// prefix, then a JSON array whose third element is itself a JSON
// string carrying the real payload.

const antiXSSIPrefix = ")]}'"

// buildReviewsPayload renders the f.req body for the UsvDTd reviews
// RPC. The inner request is a positional array: sort code, page size,
// continuation token and the optional score filter.
func buildReviewsPayload(appID string, q ReviewQuery, count int, token string) string {
	tok := "null"
	if token != "" {
		tok = strconv.Quote(token)
	}

	scores := "null"
	if q.MinRating != 0 || q.MaxRating != 0 {
		vals := make([]string, 0, q.MaxRating-q.MinRating+1)
		for s := q.MinRating; s <= q.MaxRating; s++ {
			vals = append(vals, strconv.Itoa(s))
		}
		scores = "[" + strings.Join(vals, ",") + "]"
	}

	inner := fmt.Sprintf(`[null,null,[2,%d,[%d,null,%s],null,[null,%s]],[%s,7]]`,
		q.Sort, count, tok, scores, strconv.Quote(appID))

	req := [][][]interface{}{{{"UsvDTd", inner, nil, "generic"}}}
	out, _ := json.Marshal(req)
	return string(out)
}

// parseReviewsResponse unwraps one reviews page: the review texts in
// feed order and the next continuation token ("" when the feed is
// exhausted).
func parseReviewsResponse(body []byte) ([]string, string, error) {
	payload, err := unwrapEnvelope(body)
	if err != nil {
		return nil, "", err
	}
	if payload == nil {
		return nil, "", nil
	}

	var results []interface{}
	if err := json.Unmarshal(payload, &results); err != nil {
		return nil, "", fmt.Errorf("decode reviews payload: %w", err)
	}
	if len(results) == 0 || results[0] == nil {
		return nil, "", nil
	}

	items, ok := results[0].([]interface{})
	if !ok {
		return nil, "", errors.New("reviews payload: unexpected shape")
	}

	texts := make([]string, 0, len(items))
	for _, it := range items {
		review, ok := it.([]interface{})
		if !ok || len(review) < 5 {
			continue
		}
		if text, ok := review[4].(string); ok {
			texts = append(texts, text)
		}
	}

	token := ""
	if len(results) >= 2 {
		if cont, ok := results[1].([]interface{}); ok && len(cont) >= 2 {
			if t, ok := cont[1].(string); ok {
				token = t
			}
		}
	}

	return texts, token, nil
}

func unwrapEnvelope(body []byte) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(string(body))
	trimmed = strings.TrimPrefix(trimmed, antiXSSIPrefix)

	var rpc []interface{}
	if err := json.Unmarshal([]byte(trimmed), &rpc); err != nil {
		return nil, fmt.Errorf("decode rpc envelope: %w", err)
	}
	if len(rpc) == 0 {
		return nil, errors.New("empty rpc envelope")
	}

	frame, ok := rpc[0].([]interface{})
	if !ok || len(frame) < 3 {
		return nil, errors.New("rpc envelope: unexpected frame shape")
	}
	if frame[2] == nil {
		return nil, nil
	}
	payload, ok := frame[2].(string)
	if !ok {
		return nil, errors.New("rpc envelope: payload is not a string")
	}
	return json.RawMessage(payload), nil
}

// Dataset blocks embedded in the details page. ds:5 carries the app
// record the metadata fields are read from.
var (
	scriptRe = regexp.MustCompile(`AF_initDataCallback\({key: '(ds:\d+)'[\s\S]*?data:([\s\S]*?), sideChannel`)
)

func parseAppDetails(body []byte) (types.AppMetadata, error) {
	var meta types.AppMetadata

	datasets := make(map[string]json.RawMessage)
	for _, m := range scriptRe.FindAllSubmatch(body, -1) {
		datasets[string(m[1])] = json.RawMessage(m[2])
	}

	raw, ok := datasets["ds:5"]
	if !ok {
		return meta, errors.New("details page: ds:5 dataset not found")
	}

	var data interface{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return meta, fmt.Errorf("decode ds:5 dataset: %w", err)
	}

	meta.Title, _ = dig(data, 1, 2, 0, 0).(string)
	meta.Installs, _ = dig(data, 1, 2, 13, 0).(string)
	if f, ok := dig(data, 1, 2, 51, 0, 1).(float64); ok {
		meta.Score = f
	}
	if f, ok := dig(data, 1, 2, 51, 2, 1).(float64); ok {
		meta.Ratings = int64(f)
	}
	if f, ok := dig(data, 1, 2, 51, 3, 1).(float64); ok {
		meta.Reviews = int64(f)
	}
	meta.Description, _ = dig(data, 1, 2, 72, 0, 1).(string)

	return meta, nil
}

// dig walks a nested positional array, returning nil when any index is
// out of range.
func dig(data interface{}, path ...int) interface{} {
	cur := data
	for _, i := range path {
		arr, ok := cur.([]interface{})
		if !ok || i < 0 || i >= len(arr) {
			return nil
		}
		cur = arr[i]
	}
	return cur
}
