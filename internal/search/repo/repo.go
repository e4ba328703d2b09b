package repo

import (
	"strings"
	"time"

	"github.com/Natali-Skv/forum_board/internal/models"
	"github.com/go-openapi/strfmt"
	"github.com/jackc/pgx"
	pkgErrors "github.com/pkg/errors"
)

type Repo struct {
	Conn *pgx.ConnPool
}

func NewRepo(conn *pgx.ConnPool) *Repo {
	conn.Prepare("search_threads", `SELECT t.id, t.category_id, t.title, t.author_id, t.created,
		(SELECT count(*) FROM posts p WHERE p.thread_id = t.id AND p.parent_id IS NOT NULL),
		COALESCE((SELECT p.upvotes FROM posts p WHERE p.thread_id = t.id AND p.parent_id IS NULL ORDER BY p.created LIMIT 1), 0),
		COALESCE((SELECT max(p.created) FROM posts p WHERE p.thread_id = t.id), t.created),
		char_length(t.title) - char_length($2) AS rank
		FROM threads t WHERE lower(t.title) LIKE $1
		ORDER BY rank, t.created DESC`)
	conn.Prepare("search_posts", `SELECT id, thread_id, author_id, COALESCE(parent_id, ''), content, created, upvotes,
		strpos(lower(content), $2) - 1 AS rank
		FROM posts WHERE lower(content) LIKE ALL($1)
		ORDER BY rank, created DESC`)
	return &Repo{Conn: conn}
}

func (r *Repo) SearchThreads(query string) ([]models.SearchResult, error) {
	rows, err := r.Conn.Query("search_threads", subsequencePattern(query), query)
	if err != nil {
		return nil, pkgErrors.Wrap(err, "search threads")
	}
	defer rows.Close()

	results := make([]models.SearchResult, 0)
	for rows.Next() {
		thread := &models.Thread{}
		var created, lastActivity time.Time
		var rank int
		err := rows.Scan(&thread.Id, &thread.CategoryId, &thread.Title, &thread.AuthorId, &created,
			&thread.ReplyCount, &thread.Upvotes, &lastActivity, &rank)
		if err != nil {
			return nil, err
		}
		thread.Created = strfmt.DateTime(created.UTC())
		thread.LastActivity = strfmt.DateTime(lastActivity.UTC())
		results = append(results, models.SearchResult{Kind: models.SearchKindThread, Rank: rank, Thread: thread})
	}
	return results, rows.Err()
}

func (r *Repo) SearchPosts(query string) ([]models.SearchResult, error) {
	terms := strings.Fields(strings.ToLower(query))
	results := make([]models.SearchResult, 0)
	if len(terms) == 0 {
		return results, nil
	}
	rows, err := r.Conn.Query("search_posts", likePatterns(terms), terms[0])
	if err != nil {
		return nil, pkgErrors.Wrap(err, "search posts")
	}
	defer rows.Close()

	for rows.Next() {
		post := &models.Post{}
		var created time.Time
		var rank int
		err := rows.Scan(&post.Id, &post.ThreadId, &post.AuthorId, &post.ParentId, &post.Content, &created, &post.Upvotes, &rank)
		if err != nil {
			return nil, err
		}
		post.Created = strfmt.DateTime(created.UTC())
		results = append(results, models.SearchResult{Kind: models.SearchKindPost, Rank: rank, Post: post})
	}
	return results, rows.Err()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// subsequencePattern matches strings holding the runes of query in order, the
// way titles match in memory. Case is ignored, diacritics are not.
func subsequencePattern(query string) string {
	var b strings.Builder
	b.WriteString("%")
	for _, r := range strings.ToLower(query) {
		b.WriteString(likeEscaper.Replace(string(r)))
		b.WriteString("%")
	}
	return b.String()
}

func likePatterns(terms []string) []string {
	patterns := make([]string, 0, len(terms))
	for _, term := range terms {
		patterns = append(patterns, "%"+likeEscaper.Replace(term)+"%")
	}
	return patterns
}
