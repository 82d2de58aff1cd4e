package khata

import (
	"strings"
	"time"
)

// Note is a freestanding reminder, unrelated to any customer's balance.
type Note struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Date    time.Time `json:"date"`
}

// Matches reports whether the note matches a search query, by
// case-insensitive title or content substring.
func (n Note) Matches(query string) bool {
	if query == "" {
		return true
	}
	return containsFold(n.Title, query) || containsFold(n.Content, query)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
