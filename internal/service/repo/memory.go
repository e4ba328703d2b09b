package repo

import (
	"github.com/Natali-Skv/forum_board/internal/mock"
	"github.com/Natali-Skv/forum_board/internal/models"
)

type MemoryRepo struct {
	Store *mock.Store
}

func NewMemoryRepo(store *mock.Store) *MemoryRepo {
	return &MemoryRepo{Store: store}
}

func (r *MemoryRepo) Status() (*models.Status, error) {
	status := &models.Status{}
	err := r.Store.View(func(d *mock.Data) error {
		status.Categories = len(d.Categories)
		status.Users = len(d.Users)
		status.Threads = len(d.Threads)
		status.Posts = len(d.Posts)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return status, nil
}

// Reset reloads the fixtures the store was seeded with.
func (r *MemoryRepo) Reset() error {
	return r.Store.Reset()
}
