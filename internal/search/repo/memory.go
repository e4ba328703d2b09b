package repo

import (
	"sort"
	"strings"
	"time"

	"github.com/Natali-Skv/forum_board/internal/mock"
	"github.com/Natali-Skv/forum_board/internal/models"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

type MemoryRepo struct {
	Store *mock.Store
}

func NewMemoryRepo(store *mock.Store) *MemoryRepo {
	return &MemoryRepo{Store: store}
}

// SearchThreads ranks titles by how far they are from the query: the query has
// to appear in the title as a subsequence, ignoring case and diacritics.
func (r *MemoryRepo) SearchThreads(query string) ([]models.SearchResult, error) {
	results := make([]models.SearchResult, 0)
	err := r.Store.View(func(d *mock.Data) error {
		for i := range d.Threads {
			rank := fuzzy.RankMatchNormalizedFold(query, d.Threads[i].Title)
			if rank < 0 {
				continue
			}
			thread := d.ThreadWithStats(i)
			results = append(results, models.SearchResult{Kind: models.SearchKindThread, Rank: rank, Thread: &thread})
		}
		return nil
	})
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Rank != results[j].Rank {
			return results[i].Rank < results[j].Rank
		}
		return time.Time(results[i].Thread.Created).After(time.Time(results[j].Thread.Created))
	})
	return results, err
}

// SearchPosts keeps posts containing every word of the query. Rank is the
// position of the first word.
func (r *MemoryRepo) SearchPosts(query string) ([]models.SearchResult, error) {
	terms := strings.Fields(strings.ToLower(query))
	results := make([]models.SearchResult, 0)
	if len(terms) == 0 {
		return results, nil
	}
	err := r.Store.View(func(d *mock.Data) error {
		for i := len(d.Posts) - 1; i >= 0; i-- {
			content := strings.ToLower(d.Posts[i].Content)
			if !containsAll(content, terms) {
				continue
			}
			post := d.Posts[i]
			results = append(results, models.SearchResult{
				Kind: models.SearchKindPost,
				Rank: strings.Index(content, terms[0]),
				Post: &post,
			})
		}
		return nil
	})
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Rank < results[j].Rank
	})
	return results, err
}

func containsAll(s string, terms []string) bool {
	for _, term := range terms {
		if !strings.Contains(s, term) {
			return false
		}
	}
	return true
}
