// Package entity defines the domain models for the sentiment feature.
package entity

// Headline is a single news headline produced for a ticker.
// It is created per analysis request and never persisted.
type Headline struct {
	Title       string // Headline text, always contains the requested ticker
	Source      string // Outlet label (e.g., "Reuters")
	PublishedAt string // Short human-readable date (e.g., "Jan 5, 2024")
}
