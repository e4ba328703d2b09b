package repo

import (
	"time"

	"github.com/Natali-Skv/forum_board/internal/models"
	"github.com/Natali-Skv/forum_board/internal/tools/errors"
	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"github.com/jackc/pgx"
	pkgErrors "github.com/pkg/errors"
)

const (
	postColumns = "id, thread_id, author_id, COALESCE(parent_id, ''), content, created, upvotes"

	// raised by the check_post_parent trigger
	parentConflictCode = "AAAA0"
	foreignKeyCode     = "23503"
)

type Repo struct {
	Conn *pgx.ConnPool
}

func NewRepo(conn *pgx.ConnPool) *Repo {
	// a post without a parent answers the original post of the thread
	conn.Prepare("create_post", `INSERT INTO posts(id, thread_id, author_id, parent_id, content)
		VALUES ($1,$2,$3,COALESCE(NULLIF($4, ''),
			(SELECT p.id FROM posts p WHERE p.thread_id=$2 AND p.parent_id IS NULL ORDER BY p.created, p.id LIMIT 1)),$5)
		RETURNING created, COALESCE(parent_id, '')`)
	conn.Prepare("get_post", "SELECT "+postColumns+" FROM posts WHERE id=$1")
	conn.Prepare("get_thread_posts", "SELECT "+postColumns+" FROM posts WHERE thread_id=$1 ORDER BY created, id")
	conn.Prepare("upvote_post", "UPDATE posts SET upvotes=upvotes+1 WHERE id=$1 RETURNING "+postColumns)
	conn.Prepare("check_exists_thread", "SELECT exists(SELECT 1 FROM threads WHERE id=$1)")
	conn.Prepare("check_exists_user", "SELECT exists(SELECT 1 FROM users WHERE id=$1)")
	return &Repo{Conn: conn}
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanPost(row scanner) (*models.Post, error) {
	post := &models.Post{}
	var created time.Time
	err := row.Scan(&post.Id, &post.ThreadId, &post.AuthorId, &post.ParentId, &post.Content, &created, &post.Upvotes)
	if err != nil {
		return nil, err
	}
	post.Created = strfmt.DateTime(created.UTC())
	return post, nil
}

func (r *Repo) Create(post *models.Post) (*models.Post, error) {
	if exists, err := r.CheckThread(post.ThreadId); err != nil {
		return nil, pkgErrors.Wrap(err, "check thread")
	} else if !exists {
		return nil, pkgErrors.Wrap(errors.ErrNotFound, "thread "+post.ThreadId)
	}
	var exists bool
	if err := r.Conn.QueryRow("check_exists_user", post.AuthorId).Scan(&exists); err != nil {
		return nil, pkgErrors.Wrap(err, "check post author")
	}
	if !exists {
		return nil, pkgErrors.Wrap(errors.ErrAuthorNotFound, post.AuthorId)
	}

	post.Id = uuid.NewString()
	post.Upvotes = 0
	var created time.Time
	err := r.Conn.QueryRow("create_post", post.Id, post.ThreadId, post.AuthorId, post.ParentId, post.Content).Scan(&created, &post.ParentId)
	if err != nil {
		if pgerr, converted := err.(pgx.PgError); converted {
			switch pgerr.Code {
			case parentConflictCode:
				return nil, pkgErrors.Wrap(errors.ErrParentConflict, post.ParentId)
			case foreignKeyCode:
				return nil, pkgErrors.Wrap(errors.ErrAuthorNotFound, post.AuthorId)
			}
		}
		return nil, pkgErrors.Wrap(err, "insert post")
	}
	post.Created = strfmt.DateTime(created.UTC())
	return post, nil
}

func (r *Repo) GetByID(id string) (*models.Post, error) {
	post, err := scanPost(r.Conn.QueryRow("get_post", id))
	if err == pgx.ErrNoRows {
		return nil, pkgErrors.Wrap(errors.ErrNotFound, "post "+id)
	}
	if err != nil {
		return nil, pkgErrors.Wrap(err, "get post")
	}
	return post, nil
}

func (r *Repo) GetThreadPosts(threadId string) ([]models.Post, error) {
	rows, err := r.Conn.Query("get_thread_posts", threadId)
	if err != nil {
		return nil, pkgErrors.Wrap(err, "get thread posts")
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *post)
	}
	return posts, rows.Err()
}

func (r *Repo) Upvote(id string) (*models.Post, error) {
	post, err := scanPost(r.Conn.QueryRow("upvote_post", id))
	if err == pgx.ErrNoRows {
		return nil, pkgErrors.Wrap(errors.ErrNotFound, "post "+id)
	}
	if err != nil {
		return nil, pkgErrors.Wrap(err, "upvote post")
	}
	return post, nil
}

func (r *Repo) CheckThread(id string) (bool, error) {
	var exists bool
	err := r.Conn.QueryRow("check_exists_thread", id).Scan(&exists)
	return exists, err
}
