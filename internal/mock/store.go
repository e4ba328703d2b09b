// Package mock keeps the forum data set in memory. It is seeded from the
// embedded fixtures and backs the memory implementation of every repo.
package mock

import (
	_ "embed"
	"sort"
	"sync"
	"time"

	"github.com/Natali-Skv/forum_board/internal/models"
	"github.com/go-openapi/strfmt"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

type Data struct {
	Categories []models.Category `yaml:"categories"`
	Users      []models.User     `yaml:"users"`
	Threads    []models.Thread   `yaml:"threads"`
	Posts      []models.Post     `yaml:"posts"`
}

type Store struct {
	mu       sync.RWMutex
	data     *Data
	fixtures []byte
	logger   *zap.Logger
	now      func() time.Time
}

func NewStore(logger *zap.Logger) (*Store, error) {
	return NewStoreFromYAML(defaultFixtures, logger)
}

func NewStoreFromYAML(fixtures []byte, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{fixtures: fixtures, logger: logger, now: time.Now}
	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset drops every change and reloads the fixtures.
func (s *Store) Reset() error {
	data := &Data{}
	if err := yaml.Unmarshal(s.fixtures, data); err != nil {
		return errors.Wrap(err, "parse fixtures")
	}
	sort.SliceStable(data.Posts, func(i, j int) bool {
		return time.Time(data.Posts[i].Created).Before(time.Time(data.Posts[j].Created))
	})

	s.mu.Lock()
	s.data = data
	s.mu.Unlock()

	s.logger.Info("mock store loaded",
		zap.Int("categories", len(data.Categories)),
		zap.Int("users", len(data.Users)),
		zap.Int("threads", len(data.Threads)),
		zap.Int("posts", len(data.Posts)),
	)
	return nil
}

// View runs fn under the read lock. fn must not keep references into d.
func (s *Store) View(fn func(d *Data) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.data)
}

func (s *Store) Update(fn func(d *Data) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.data)
}

// Now is the creation time given to new threads and posts.
func (s *Store) Now() strfmt.DateTime {
	return strfmt.DateTime(s.now().UTC())
}

func (d *Data) FindCategory(id string) int {
	for i := range d.Categories {
		if d.Categories[i].Id == id {
			return i
		}
	}
	return -1
}

func (d *Data) FindUser(id string) int {
	for i := range d.Users {
		if d.Users[i].Id == id {
			return i
		}
	}
	return -1
}

func (d *Data) FindThread(id string) int {
	for i := range d.Threads {
		if d.Threads[i].Id == id {
			return i
		}
	}
	return -1
}

func (d *Data) FindPost(id string) int {
	for i := range d.Posts {
		if d.Posts[i].Id == id {
			return i
		}
	}
	return -1
}

// ThreadPosts returns copies of the thread's posts in creation order.
func (d *Data) ThreadPosts(threadId string) []models.Post {
	posts := make([]models.Post, 0)
	for _, post := range d.Posts {
		if post.ThreadId == threadId {
			posts = append(posts, post)
		}
	}
	return posts
}

// ThreadWithStats returns a copy of thread i with its derived counters filled in.
func (d *Data) ThreadWithStats(i int) models.Thread {
	thread := d.Threads[i]
	thread.ReplyCount = 0
	thread.Upvotes = 0
	thread.LastActivity = thread.Created
	for _, post := range d.Posts {
		if post.ThreadId != thread.Id {
			continue
		}
		if post.IsRoot() {
			thread.Upvotes = post.Upvotes
		} else {
			thread.ReplyCount++
		}
		if time.Time(post.Created).After(time.Time(thread.LastActivity)) {
			thread.LastActivity = post.Created
		}
	}
	return thread
}

func (d *Data) CategoryWithStats(i int) models.Category {
	category := d.Categories[i]
	category.ThreadCount = 0
	category.LastActivity = strfmt.DateTime{}
	for ti := range d.Threads {
		if d.Threads[ti].CategoryId != category.Id {
			continue
		}
		category.ThreadCount++
		thread := d.ThreadWithStats(ti)
		if time.Time(thread.LastActivity).After(time.Time(category.LastActivity)) {
			category.LastActivity = thread.LastActivity
		}
	}
	return category
}

func (d *Data) UserWithStats(i int) models.User {
	user := d.Users[i]
	user.Stats = models.UserStats{}
	for _, thread := range d.Threads {
		if thread.AuthorId == user.Id {
			user.Stats.Threads++
		}
	}
	for _, post := range d.Posts {
		if post.AuthorId == user.Id {
			user.Stats.Posts++
			user.Stats.UpvotesReceived += post.Upvotes
		}
	}
	return user
}
