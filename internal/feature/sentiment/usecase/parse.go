package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"stock_sentiment/internal/feature/sentiment/domain/entity"
)

var (
	// ErrNoJSONObject is returned when the model response has no brace-delimited object.
	ErrNoJSONObject = errors.New("no JSON object in model response")
	// ErrUnknownSentiment is returned when the sentiment label is not positive, negative or neutral.
	ErrUnknownSentiment = errors.New("unknown sentiment label")
	// ErrInvalidScore is returned when the score is missing or outside [0, 1].
	ErrInvalidScore = errors.New("score missing or out of range")
)

// classificationPayload mirrors the JSON object the classification prompt asks for.
type classificationPayload struct {
	Sentiment string   `json:"sentiment"`
	Score     *float64 `json:"score"`
}

// ExtractJSONObject returns the span from the first '{' to the last '}' in text.
// Models often wrap the object in prose or code fences; anything outside the span is ignored.
func ExtractJSONObject(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// ParseClassification turns a raw model response into a Classification.
// Extraction and decoding are separate stages and either one failing returns an error.
func ParseClassification(text string) (entity.Classification, error) {
	candidate, ok := ExtractJSONObject(text)
	if !ok {
		return entity.Classification{}, ErrNoJSONObject
	}

	var p classificationPayload
	if err := json.Unmarshal([]byte(candidate), &p); err != nil {
		return entity.Classification{}, fmt.Errorf("decode classification %q: %w", candidate, err)
	}

	label := entity.Sentiment(strings.ToLower(strings.TrimSpace(p.Sentiment)))
	if !label.Valid() {
		return entity.Classification{}, fmt.Errorf("%w: %q", ErrUnknownSentiment, p.Sentiment)
	}
	if p.Score == nil || *p.Score < 0 || *p.Score > 1 {
		return entity.Classification{}, ErrInvalidScore
	}

	return entity.Classification{Sentiment: label, Score: *p.Score}, nil
}
