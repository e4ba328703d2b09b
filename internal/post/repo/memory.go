package repo

import (
	"github.com/Natali-Skv/forum_board/internal/mock"
	"github.com/Natali-Skv/forum_board/internal/models"
	"github.com/Natali-Skv/forum_board/internal/tools/errors"
	"github.com/google/uuid"
	pkgErrors "github.com/pkg/errors"
)

type MemoryRepo struct {
	Store *mock.Store
}

func NewMemoryRepo(store *mock.Store) *MemoryRepo {
	return &MemoryRepo{Store: store}
}

func (r *MemoryRepo) Create(post *models.Post) (*models.Post, error) {
	err := r.Store.Update(func(d *mock.Data) error {
		if d.FindThread(post.ThreadId) < 0 {
			return pkgErrors.Wrap(errors.ErrNotFound, "thread "+post.ThreadId)
		}
		if d.FindUser(post.AuthorId) < 0 {
			return pkgErrors.Wrap(errors.ErrAuthorNotFound, post.AuthorId)
		}
		if post.IsRoot() {
			post.ParentId = originalPost(d, post.ThreadId)
		}
		if !post.IsRoot() {
			parent := d.FindPost(post.ParentId)
			if parent < 0 || d.Posts[parent].ThreadId != post.ThreadId {
				return pkgErrors.Wrap(errors.ErrParentConflict, post.ParentId)
			}
		}
		post.Id = uuid.NewString()
		post.Created = r.Store.Now()
		post.Upvotes = 0
		d.Posts = append(d.Posts, *post)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

// originalPost returns the id of the thread's parentless post, "" when it has none.
func originalPost(d *mock.Data, threadId string) string {
	for _, post := range d.Posts {
		if post.ThreadId == threadId && post.IsRoot() {
			return post.Id
		}
	}
	return ""
}

func (r *MemoryRepo) GetByID(id string) (*models.Post, error) {
	var post models.Post
	err := r.Store.View(func(d *mock.Data) error {
		i := d.FindPost(id)
		if i < 0 {
			return pkgErrors.Wrap(errors.ErrNotFound, "post "+id)
		}
		post = d.Posts[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *MemoryRepo) GetThreadPosts(threadId string) ([]models.Post, error) {
	var posts []models.Post
	err := r.Store.View(func(d *mock.Data) error {
		posts = d.ThreadPosts(threadId)
		return nil
	})
	return posts, err
}

func (r *MemoryRepo) Upvote(id string) (*models.Post, error) {
	var post models.Post
	err := r.Store.Update(func(d *mock.Data) error {
		i := d.FindPost(id)
		if i < 0 {
			return pkgErrors.Wrap(errors.ErrNotFound, "post "+id)
		}
		d.Posts[i].Upvotes++
		post = d.Posts[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *MemoryRepo) CheckThread(id string) (bool, error) {
	var exists bool
	err := r.Store.View(func(d *mock.Data) error {
		exists = d.FindThread(id) >= 0
		return nil
	})
	return exists, err
}
