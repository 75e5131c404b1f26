package entity

// Sentiment is the categorical market tone of a headline.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Valid reports whether s is one of the three known labels.
func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return true
	}
	return false
}

// Classification is the outcome of classifying one headline.
type Classification struct {
	Sentiment Sentiment
	Score     float64 // Model confidence in [0.0, 1.0]
}

// FallbackClassification is used whenever a headline cannot be classified.
var FallbackClassification = Classification{Sentiment: SentimentNeutral, Score: 0.5}

// ClassifiedHeadline merges a Headline with its classification.
type ClassifiedHeadline struct {
	Headline
	Sentiment Sentiment
	Score     float64
}

// Result is the aggregate outcome of one analysis request.
type Result struct {
	Ticker           string
	OverallSentiment int // 0 = all negative, 50 = all neutral, 100 = all positive
	PositiveCount    int
	NegativeCount    int
	NeutralCount     int
	News             []ClassifiedHeadline // Generation order
	Summary          string
}
