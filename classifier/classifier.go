// Package classifier assigns the two rule-based labels to a review:
// an experience driver (Process / Technology / People) and a support
// topic. Matching is substring containment over the lowercased text,
// not whole-word matching, so short keywords can fire inside longer
// words ("pin" inside "spinning"). That over-matching is part of the
// contract and is pinned down by tests.
package classifier

import (
	"strings"

	"reviewlens/types"
)

// ClassifyDriver returns the driver label for a review. It never fails:
// any input yields exactly one label from the closed driver set.
func ClassifyDriver(review string) string {
	return scan(driverTables, review, types.DriverUnknown)
}

// ClassifyTopic returns the support-topic label for a review.
func ClassifyTopic(review string) string {
	return scan(topicTables, review, types.TopicUnknown)
}

func scan(tables []categoryTable, review, unknown string) string {
	review = strings.ToLower(review)
	for _, table := range tables {
		for _, kw := range table.keywords {
			if strings.Contains(review, kw) {
				return table.label
			}
		}
	}
	return unknown
}
