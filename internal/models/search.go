package models

const (
	SearchKindThread = "thread"
	SearchKindPost   = "post"
)

// SearchResult holds either a thread or a post matched by a query.
// Rank is lower for better matches.
type SearchResult struct {
	Kind   string  `json:"kind"`
	Rank   int     `json:"rank"`
	Thread *Thread `json:"thread,omitempty"`
	Post   *Post   `json:"post,omitempty"`
}
