package models

// SearchQuery describes a bounded search against the book service.
type SearchQuery struct {
	Text      string
	Languages []string
	Formats   []string
	Limit     int
}
