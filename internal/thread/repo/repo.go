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

const threadColumns = `t.id, t.category_id, t.title, t.author_id, t.created,
	(SELECT count(*) FROM posts p WHERE p.thread_id = t.id AND p.parent_id IS NOT NULL),
	COALESCE((SELECT p.upvotes FROM posts p WHERE p.thread_id = t.id AND p.parent_id IS NULL ORDER BY p.created LIMIT 1), 0),
	COALESCE((SELECT max(p.created) FROM posts p WHERE p.thread_id = t.id), t.created)`

type Repo struct {
	Conn *pgx.ConnPool
}

func NewRepo(conn *pgx.ConnPool) *Repo {
	conn.Prepare("create_thread", "INSERT INTO threads(id, category_id, title, author_id) VALUES ($1,$2,$3,$4) RETURNING created")
	conn.Prepare("create_original_post", "INSERT INTO posts(id, thread_id, author_id, content, created) VALUES ($1,$2,$3,$4,$5)")
	conn.Prepare("get_thread", "SELECT "+threadColumns+" FROM threads t WHERE t.id=$1")
	conn.Prepare("get_category_threads", "SELECT "+threadColumns+" FROM threads t WHERE t.category_id=$1 ORDER BY t.created, t.id")
	conn.Prepare("check_category", "SELECT exists(SELECT 1 FROM categories WHERE id=$1)")
	conn.Prepare("check_user", "SELECT exists(SELECT 1 FROM users WHERE id=$1)")
	return &Repo{Conn: conn}
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanThread(row scanner) (*models.Thread, error) {
	thread := &models.Thread{}
	var created, lastActivity time.Time
	err := row.Scan(&thread.Id, &thread.CategoryId, &thread.Title, &thread.AuthorId, &created,
		&thread.ReplyCount, &thread.Upvotes, &lastActivity)
	if err != nil {
		return nil, err
	}
	thread.Created = strfmt.DateTime(created.UTC())
	thread.LastActivity = strfmt.DateTime(lastActivity.UTC())
	return thread, nil
}

func (r *Repo) Create(thread *models.Thread, original *models.Post) (*models.Thread, error) {
	if exists, err := r.CheckCategory(thread.CategoryId); err != nil {
		return nil, err
	} else if !exists {
		return nil, pkgErrors.Wrap(errors.ErrNotFound, "category "+thread.CategoryId)
	}
	var exists bool
	if err := r.Conn.QueryRow("check_user", thread.AuthorId).Scan(&exists); err != nil {
		return nil, pkgErrors.Wrap(err, "check thread author")
	}
	if !exists {
		return nil, pkgErrors.Wrap(errors.ErrAuthorNotFound, thread.AuthorId)
	}

	tx, err := r.Conn.Begin()
	if err != nil {
		return nil, pkgErrors.Wrap(err, "begin create thread")
	}
	defer tx.Rollback()

	thread.Id = uuid.NewString()
	var created time.Time
	if err = tx.QueryRow("create_thread", thread.Id, thread.CategoryId, thread.Title, thread.AuthorId).Scan(&created); err != nil {
		return nil, pkgErrors.Wrap(err, "insert thread")
	}
	original.Id = uuid.NewString()
	original.ThreadId = thread.Id
	original.AuthorId = thread.AuthorId
	original.ParentId = ""
	if _, err = tx.Exec("create_original_post", original.Id, thread.Id, thread.AuthorId, original.Content, created); err != nil {
		return nil, pkgErrors.Wrap(err, "insert original post")
	}
	if err = tx.Commit(); err != nil {
		return nil, pkgErrors.Wrap(err, "commit create thread")
	}

	thread.Created = strfmt.DateTime(created.UTC())
	thread.LastActivity = thread.Created
	original.Created = thread.Created
	return thread, nil
}

func (r *Repo) GetByID(id string) (*models.Thread, error) {
	thread, err := scanThread(r.Conn.QueryRow("get_thread", id))
	if err == pgx.ErrNoRows {
		return nil, pkgErrors.Wrap(errors.ErrNotFound, "thread "+id)
	}
	if err != nil {
		return nil, pkgErrors.Wrap(err, "get thread")
	}
	return thread, nil
}

func (r *Repo) GetCategoryThreads(categoryId string) ([]models.Thread, error) {
	rows, err := r.Conn.Query("get_category_threads", categoryId)
	if err != nil {
		return nil, pkgErrors.Wrap(err, "get category threads")
	}
	defer rows.Close()

	threads := make([]models.Thread, 0)
	for rows.Next() {
		thread, err := scanThread(rows)
		if err != nil {
			return nil, err
		}
		threads = append(threads, *thread)
	}
	return threads, rows.Err()
}

func (r *Repo) CheckCategory(id string) (bool, error) {
	var exists bool
	err := r.Conn.QueryRow("check_category", id).Scan(&exists)
	return exists, err
}
