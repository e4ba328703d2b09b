package repo

import (
	"github.com/Natali-Skv/forum_board/internal/models"
	"github.com/jackc/pgx"
	pkgErrors "github.com/pkg/errors"
)

type Repo struct {
	Conn *pgx.ConnPool
}

func NewRepo(conn *pgx.ConnPool) *Repo {
	conn.Prepare("status", `SELECT (SELECT count(*) FROM categories), (SELECT count(*) FROM users),
		(SELECT count(*) FROM threads), (SELECT count(*) FROM posts)`)
	return &Repo{Conn: conn}
}

func (r *Repo) Status() (*models.Status, error) {
	status := &models.Status{}
	err := r.Conn.QueryRow("status").Scan(&status.Categories, &status.Users, &status.Threads, &status.Posts)
	if err != nil {
		return nil, pkgErrors.Wrap(err, "status")
	}
	return status, nil
}

// Reset empties posts and threads and drops every user the migrations did
// not seed. Categories come from the migrations too.
func (r *Repo) Reset() error {
	_, err := r.Conn.Exec(`TRUNCATE posts, threads; DELETE FROM users WHERE NOT seeded`)
	return pkgErrors.Wrap(err, "truncate")
}
