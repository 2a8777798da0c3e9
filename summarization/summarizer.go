// Package summarization produces a short natural-language summary of
// the negative slice of an analyzed corpus. It is an optional add-on:
// without an API key the feature is simply unavailable.
package summarization

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"reviewlens/types"
)

const maxReviewsForSummary = 69
const maxPromptLength = 15000 // Rough character limit for prompt

// ErrNoReviews is returned when the corpus has no negative reviews to
// summarize.
var ErrNoReviews = errors.New("no negative reviews to summarize")

// Summarizer wraps the chat-completion client.
type Summarizer struct {
	client *openai.Client
}

// NewSummarizer returns nil when apiKey is empty, signalling that the
// feature is disabled.
func NewSummarizer(apiKey string) *Summarizer {
	if apiKey == "" {
		return nil
	}
	return &Summarizer{client: openai.NewClient(apiKey)}
}

// SummarizeNegative joins the negative-class review text and asks for a
// 2-3 sentence summary of the complaints.
func (s *Summarizer) SummarizeNegative(ctx context.Context, reviews []types.ScoredReview) (string, error) {
	var negative []string
	for _, r := range reviews {
		if r.SentimentType != types.SentimentNegative || r.Review == "" {
			continue
		}
		negative = append(negative, r.Review)
		if len(negative) >= maxReviewsForSummary {
			break
		}
	}

	if len(negative) == 0 {
		return "", ErrNoReviews
	}

	combined := strings.Join(negative, "\n---\n")
	if len(combined) > maxPromptLength {
		combined = combined[:maxPromptLength]
	}

	prompt := fmt.Sprintf("Summarize the recurring complaints in the following app store reviews. Focus on what users struggle with and how often each theme comes up. Provide a concise summary (2-3 sentences maximum):\n\n---\n%s\n---\n\nSummary:", combined)

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are an assistant that summarizes negative app store reviews concisely.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   150,
			N:           1,
			Temperature: 0.5,
		},
	)
	if err != nil {
		return "", fmt.Errorf("openai chat completion error: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai returned empty response or choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
