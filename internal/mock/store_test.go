package mock

import (
	"testing"
	"time"

	"github.com/Natali-Skv/forum_board/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreLoadsFixtures(t *testing.T) {
	s, err := NewStore(nil)
	require.NoError(t, err)

	require.NoError(t, s.View(func(d *Data) error {
		assert.Len(t, d.Categories, 5)
		assert.Len(t, d.Users, 5)
		assert.Len(t, d.Threads, 9)
		assert.Len(t, d.Posts, 33)
		for i := 1; i < len(d.Posts); i++ {
			assert.False(t, time.Time(d.Posts[i].Created).Before(time.Time(d.Posts[i-1].Created)), d.Posts[i].Id)
		}
		return nil
	}))
}

func TestFixturesParentsStayInThread(t *testing.T) {
	s, err := NewStore(nil)
	require.NoError(t, err)

	require.NoError(t, s.View(func(d *Data) error {
		roots := map[string]int{}
		for _, post := range d.Posts {
			if post.IsRoot() {
				roots[post.ThreadId]++
				continue
			}
			parent := d.FindPost(post.ParentId)
			require.GreaterOrEqual(t, parent, 0, post.Id)
			assert.Equal(t, post.ThreadId, d.Posts[parent].ThreadId, post.Id)
		}
		for _, thread := range d.Threads {
			assert.Equal(t, 1, roots[thread.Id], thread.Id)
		}
		return nil
	}))
}

func TestStats(t *testing.T) {
	s, err := NewStore(nil)
	require.NoError(t, err)

	require.NoError(t, s.View(func(d *Data) error {
		thread := d.ThreadWithStats(d.FindThread("thread-9"))
		assert.Equal(t, 16, thread.ReplyCount)
		assert.Equal(t, "2024-06-06T17:00:00.000Z", thread.LastActivity.String())

		category := d.CategoryWithStats(d.FindCategory("off-topic"))
		assert.Equal(t, 1, category.ThreadCount)
		assert.Equal(t, thread.LastActivity, category.LastActivity)

		user := d.UserWithStats(d.FindUser("newuser"))
		assert.Equal(t, models.UserStats{Posts: 5, Threads: 0, UpvotesReceived: 23}, user.Stats)
		return nil
	}))
}

func TestResetDropsChanges(t *testing.T) {
	s, err := NewStore(nil)
	require.NoError(t, err)

	require.NoError(t, s.Update(func(d *Data) error {
		d.Posts = d.Posts[:1]
		d.Users = nil
		return nil
	}))
	require.NoError(t, s.Reset())
	require.NoError(t, s.View(func(d *Data) error {
		assert.Len(t, d.Posts, 33)
		assert.Len(t, d.Users, 5)
		return nil
	}))
}

func TestNewStoreBadYAML(t *testing.T) {
	_, err := NewStoreFromYAML([]byte("posts: {"), nil)
	assert.Error(t, err)
}

func TestNow(t *testing.T) {
	s, err := NewStore(nil)
	require.NoError(t, err)
	fixed := time.Date(2024, 7, 1, 12, 0, 0, 0, time.FixedZone("X", 3600))
	s.now = func() time.Time { return fixed }
	assert.Equal(t, "2024-07-01T11:00:00.000Z", s.Now().String())
}
