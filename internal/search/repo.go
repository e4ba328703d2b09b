package search

import "github.com/Natali-Skv/forum_board/internal/models"

// Repo matches threads by title and posts by content. Results come best match
// first.
//
// A title matches when it holds the query's characters in order, ignoring case;
// its rank is how many characters the title has beyond the query. Posts match
// when they contain every word of the query, ranked by the first word's offset.
// The in-memory backend also folds diacritics in titles, postgres does not.
type Repo interface {
	SearchThreads(query string) ([]models.SearchResult, error)
	SearchPosts(query string) ([]models.SearchResult, error)
}
