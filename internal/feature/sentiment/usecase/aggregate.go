package usecase

import (
	"math"

	"stock_sentiment/internal/feature/sentiment/domain/entity"
)

// Tally counts positive, negative and neutral headlines.
func Tally(news []entity.ClassifiedHeadline) (positive, negative, neutral int) {
	for _, n := range news {
		switch n.Sentiment {
		case entity.SentimentPositive:
			positive++
		case entity.SentimentNegative:
			negative++
		default:
			neutral++
		}
	}
	return positive, negative, neutral
}

// OverallSentiment weights positive headlines at 100, neutral at 50 and negative at 0,
// and returns the rounded mean. With no headlines it returns the neutral midpoint.
func OverallSentiment(positive, negative, neutral int) int {
	total := positive + negative + neutral
	if total == 0 {
		return 50
	}
	return int(math.Round(float64(positive*100+neutral*50) / float64(total)))
}
