// Package models defines data structures for Finsight
package models

// MetadataEntry is a single front-matter key/value pair, in document order.
type MetadataEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ParsedDocument is the structured form of a raw financial document.
// It is immutable after parsing.
type ParsedDocument struct {
	Title               string          `json:"title"`
	Date                string          `json:"date,omitempty"` // YYYY-MM-DD, empty when unknown
	Source              string          `json:"source,omitempty"`
	Category            string          `json:"category,omitempty"` // front-matter category hint
	Content             string          `json:"content"`            // body with front matter stripped
	Metadata            []MetadataEntry `json:"metadata,omitempty"`
	StocksMentioned     []string        `json:"stocks_mentioned,omitempty"`     // unique, first-seen order
	IndustriesMentioned []string        `json:"industries_mentioned,omitempty"` // vocabulary order
}

// MetadataValue returns the value for a front-matter key, or "" when absent.
func (d *ParsedDocument) MetadataValue(key string) string {
	for _, e := range d.Metadata {
		if e.Key == key {
			return e.Value
		}
	}
	return ""
}
