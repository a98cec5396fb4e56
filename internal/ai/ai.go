package ai

import "context"

// Generator produces free-form text for a prompt. Implementations wrap a
// concrete text-completion backend (Gemini, HuggingFace).
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Model() string
}

// Sentiment is a classified answer sentiment with its model confidence
// normalized to 0-100.
type Sentiment struct {
	Label      string
	Confidence int
}

const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// NeutralSentiment is the defined default used whenever classification is
// unavailable or fails.
func NeutralSentiment() Sentiment {
	return Sentiment{Label: SentimentNeutral, Confidence: 50}
}

// SentimentClassifier labels a piece of text. Errors are recovered by callers
// with NeutralSentiment; classification never gates scoring.
type SentimentClassifier interface {
	Classify(ctx context.Context, text string) (Sentiment, error)
}
