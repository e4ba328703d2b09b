package userRepo

import (
	"time"

	"github.com/Natali-Skv/forum_board/internal/models"
	"github.com/Natali-Skv/forum_board/internal/tools/errors"
	"github.com/go-openapi/strfmt"
	"github.com/jackc/pgx"
	pkgErrors "github.com/pkg/errors"
)

const uniqueViolationCode = "23505"

type Repo struct {
	Conn *pgx.ConnPool
}

func NewRepo(conn *pgx.ConnPool) *Repo {
	conn.Prepare("create_user", "INSERT INTO users(id, username, avatar_url) VALUES ($1,$2,$3) RETURNING joined")
	conn.Prepare("get_users_by_id_or_username", `SELECT u.id, u.username, u.avatar_url, u.joined,
		(SELECT count(*) FROM posts p WHERE p.author_id = u.id),
		(SELECT count(*) FROM threads t WHERE t.author_id = u.id),
		(SELECT COALESCE(sum(p.upvotes), 0) FROM posts p WHERE p.author_id = u.id)
		FROM users u WHERE u.id=$1 OR u.username=$2 ORDER BY u.joined, u.id`)
	conn.Prepare("get_user", `SELECT u.id, u.username, u.avatar_url, u.joined,
		(SELECT count(*) FROM posts p WHERE p.author_id = u.id),
		(SELECT count(*) FROM threads t WHERE t.author_id = u.id),
		(SELECT COALESCE(sum(p.upvotes), 0) FROM posts p WHERE p.author_id = u.id)
		FROM users u WHERE u.id=$1`)
	conn.Prepare("get_user_posts", `SELECT id, thread_id, author_id, COALESCE(parent_id, ''), content, created, upvotes
		FROM posts WHERE author_id=$1 ORDER BY created DESC, id DESC`)
	conn.Prepare("get_user_threads", `SELECT t.id, t.category_id, t.title, t.author_id, t.created,
		(SELECT count(*) FROM posts p WHERE p.thread_id = t.id AND p.parent_id IS NOT NULL),
		COALESCE((SELECT p.upvotes FROM posts p WHERE p.thread_id = t.id AND p.parent_id IS NULL ORDER BY p.created LIMIT 1), 0),
		COALESCE((SELECT max(p.created) FROM posts p WHERE p.thread_id = t.id), t.created)
		FROM threads t WHERE t.author_id=$1 ORDER BY t.created DESC, t.id DESC`)
	return &Repo{Conn: conn}
}

func (r *Repo) Create(user *models.User) (*models.User, error) {
	var joined time.Time
	err := r.Conn.QueryRow("create_user", user.Id, user.Username, user.AvatarUrl).Scan(&joined)
	if pgerr, converted := err.(pgx.PgError); converted && pgerr.Code == uniqueViolationCode {
		return nil, pkgErrors.Wrap(errors.ErrUserConflict, user.Id)
	}
	if err != nil {
		return nil, pkgErrors.Wrap(err, "create user")
	}
	user.JoinDate = strfmt.DateTime(joined.UTC())
	user.Stats = models.UserStats{}
	return user, nil
}

func (r *Repo) GetByIdOrUsername(user *models.User) ([]models.User, error) {
	rows, err := r.Conn.Query("get_users_by_id_or_username", user.Id, user.Username)
	if err != nil {
		return nil, pkgErrors.Wrap(err, "get users by id or username")
	}
	defer rows.Close()

	users := make([]models.User, 0, 2)
	for rows.Next() {
		u := models.User{}
		var joined time.Time
		err := rows.Scan(&u.Id, &u.Username, &u.AvatarUrl, &joined,
			&u.Stats.Posts, &u.Stats.Threads, &u.Stats.UpvotesReceived)
		if err != nil {
			return nil, err
		}
		u.JoinDate = strfmt.DateTime(joined.UTC())
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *Repo) GetByID(id string) (*models.User, error) {
	user := &models.User{}
	var joined time.Time
	err := r.Conn.QueryRow("get_user", id).Scan(&user.Id, &user.Username, &user.AvatarUrl, &joined,
		&user.Stats.Posts, &user.Stats.Threads, &user.Stats.UpvotesReceived)
	if err == pgx.ErrNoRows {
		return nil, pkgErrors.Wrap(errors.ErrNotFound, "user "+id)
	}
	if err != nil {
		return nil, pkgErrors.Wrap(err, "get user")
	}
	user.JoinDate = strfmt.DateTime(joined.UTC())
	return user, nil
}

func (r *Repo) GetUserPosts(id string) ([]models.Post, error) {
	if _, err := r.GetByID(id); err != nil {
		return nil, err
	}
	rows, err := r.Conn.Query("get_user_posts", id)
	if err != nil {
		return nil, pkgErrors.Wrap(err, "get user posts")
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		post := models.Post{}
		var created time.Time
		if err := rows.Scan(&post.Id, &post.ThreadId, &post.AuthorId, &post.ParentId, &post.Content, &created, &post.Upvotes); err != nil {
			return nil, err
		}
		post.Created = strfmt.DateTime(created.UTC())
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

func (r *Repo) GetUserThreads(id string) ([]models.Thread, error) {
	if _, err := r.GetByID(id); err != nil {
		return nil, err
	}
	rows, err := r.Conn.Query("get_user_threads", id)
	if err != nil {
		return nil, pkgErrors.Wrap(err, "get user threads")
	}
	defer rows.Close()

	threads := make([]models.Thread, 0)
	for rows.Next() {
		thread := models.Thread{}
		var created, lastActivity time.Time
		err := rows.Scan(&thread.Id, &thread.CategoryId, &thread.Title, &thread.AuthorId, &created,
			&thread.ReplyCount, &thread.Upvotes, &lastActivity)
		if err != nil {
			return nil, err
		}
		thread.Created = strfmt.DateTime(created.UTC())
		thread.LastActivity = strfmt.DateTime(lastActivity.UTC())
		threads = append(threads, thread)
	}
	return threads, rows.Err()
}
