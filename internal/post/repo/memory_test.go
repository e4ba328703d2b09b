package repo

import (
	"testing"

	"github.com/Natali-Skv/forum_board/internal/mock"
	"github.com/Natali-Skv/forum_board/internal/models"
	"github.com/Natali-Skv/forum_board/internal/tools/errors"
	pkgErrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryRepo(t *testing.T) *MemoryRepo {
	t.Helper()
	store, err := mock.NewStore(nil)
	require.NoError(t, err)
	return NewMemoryRepo(store)
}

func TestMemoryCreate(t *testing.T) {
	r := newMemoryRepo(t)

	post, err := r.Create(&models.Post{ThreadId: "thread-9", AuthorId: "admin", ParentId: "post-28", Content: "nice"})
	require.NoError(t, err)
	assert.NotEmpty(t, post.Id)
	assert.Zero(t, post.Upvotes)

	posts, err := r.GetThreadPosts("thread-9")
	require.NoError(t, err)
	require.Len(t, posts, 18)
	assert.Equal(t, post.Id, posts[len(posts)-1].Id)

	got, err := r.GetByID(post.Id)
	require.NoError(t, err)
	assert.Equal(t, "post-28", got.ParentId)
}

func TestMemoryCreateWithoutParentAnswersOriginal(t *testing.T) {
	r := newMemoryRepo(t)

	post, err := r.Create(&models.Post{ThreadId: "thread-1", AuthorId: "newuser", Content: "top-level reply"})
	require.NoError(t, err)
	assert.Equal(t, "post-1", post.ParentId)

	posts, err := r.GetThreadPosts("thread-1")
	require.NoError(t, err)
	roots := 0
	for _, p := range posts {
		if p.IsRoot() {
			roots++
		}
	}
	assert.Equal(t, 1, roots)
}

func TestMemoryCreateErrors(t *testing.T) {
	r := newMemoryRepo(t)

	tests := []struct {
		name string
		post models.Post
		want error
	}{
		{name: "thread", post: models.Post{ThreadId: "nope", AuthorId: "admin", Content: "x"}, want: errors.ErrNotFound},
		{name: "author", post: models.Post{ThreadId: "thread-1", AuthorId: "nope", Content: "x"}, want: errors.ErrAuthorNotFound},
		{name: "foreign parent", post: models.Post{ThreadId: "thread-1", AuthorId: "admin", ParentId: "post-17", Content: "x"}, want: errors.ErrParentConflict},
		{name: "missing parent", post: models.Post{ThreadId: "thread-1", AuthorId: "admin", ParentId: "post-0", Content: "x"}, want: errors.ErrParentConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Create(&tt.post)
			assert.Equal(t, tt.want, pkgErrors.Cause(err))
		})
	}

	posts, err := r.GetThreadPosts("thread-1")
	require.NoError(t, err)
	assert.Len(t, posts, 4)
}

func TestMemoryUpvote(t *testing.T) {
	r := newMemoryRepo(t)

	for i := 0; i < 3; i++ {
		_, err := r.Upvote("post-33")
		require.NoError(t, err)
	}
	post, err := r.GetByID("post-33")
	require.NoError(t, err)
	before := post.Upvotes

	post, err = r.Upvote("post-33")
	require.NoError(t, err)
	assert.Equal(t, before+1, post.Upvotes)

	_, err = r.Upvote("post-0")
	assert.Equal(t, errors.ErrNotFound, pkgErrors.Cause(err))
}

func TestMemoryCheckThread(t *testing.T) {
	r := newMemoryRepo(t)
	exists, err := r.CheckThread("thread-3")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = r.CheckThread("thread-0")
	require.NoError(t, err)
	assert.False(t, exists)
}
