package types

// Driver labels: which side of the experience a review speaks to.
const (
	DriverProcess    = "Process"
	DriverTechnology = "Technology"
	DriverPeople     = "People"
	DriverUnknown    = "Unknown"
)

// Topic labels: support topic buckets.
const (
	TopicBilling     = "Billing and Payments"
	TopicTechSupport = "Technical Support"
	TopicAccount     = "Account Management"
	TopicProduct     = "Product Information"
	TopicService     = "Service Inquiry"
	TopicComplaints  = "Complaints and Feedback"
	TopicSales       = "Sales and Renewals"
	TopicShipping    = "Shipping and Delivery"
	TopicReturns     = "Returns and Exchanges"
	TopicGeneral     = "General Inquiry"
	TopicUnknown     = "Unknown"
)

// Sentiment classes derived from the polarity score.
const (
	SentimentPositive = "Positive"
	SentimentNegative = "Negative"
	SentimentNeutral  = "Neutral"
)
