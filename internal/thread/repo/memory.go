package repo

import (
	"sort"
	"time"

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

func (r *MemoryRepo) Create(thread *models.Thread, original *models.Post) (*models.Thread, error) {
	err := r.Store.Update(func(d *mock.Data) error {
		if d.FindCategory(thread.CategoryId) < 0 {
			return pkgErrors.Wrap(errors.ErrNotFound, "category "+thread.CategoryId)
		}
		if d.FindUser(thread.AuthorId) < 0 {
			return pkgErrors.Wrap(errors.ErrAuthorNotFound, thread.AuthorId)
		}
		thread.Id = uuid.NewString()
		thread.Created = r.Store.Now()

		original.Id = uuid.NewString()
		original.ThreadId = thread.Id
		original.AuthorId = thread.AuthorId
		original.ParentId = ""
		original.Created = thread.Created
		original.Upvotes = 0

		d.Threads = append(d.Threads, *thread)
		d.Posts = append(d.Posts, *original)
		*thread = d.ThreadWithStats(len(d.Threads) - 1)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return thread, nil
}

func (r *MemoryRepo) GetByID(id string) (*models.Thread, error) {
	var thread models.Thread
	err := r.Store.View(func(d *mock.Data) error {
		i := d.FindThread(id)
		if i < 0 {
			return pkgErrors.Wrap(errors.ErrNotFound, "thread "+id)
		}
		thread = d.ThreadWithStats(i)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &thread, nil
}

func (r *MemoryRepo) GetCategoryThreads(categoryId string) ([]models.Thread, error) {
	threads := make([]models.Thread, 0)
	err := r.Store.View(func(d *mock.Data) error {
		for i := range d.Threads {
			if d.Threads[i].CategoryId == categoryId {
				threads = append(threads, d.ThreadWithStats(i))
			}
		}
		return nil
	})
	sort.SliceStable(threads, func(i, j int) bool {
		return time.Time(threads[i].Created).Before(time.Time(threads[j].Created))
	})
	return threads, err
}

func (r *MemoryRepo) CheckCategory(id string) (bool, error) {
	var exists bool
	err := r.Store.View(func(d *mock.Data) error {
		exists = d.FindCategory(id) >= 0
		return nil
	})
	return exists, err
}
