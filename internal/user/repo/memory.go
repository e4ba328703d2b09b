package userRepo

import (
	"sort"
	"time"

	"github.com/Natali-Skv/forum_board/internal/mock"
	"github.com/Natali-Skv/forum_board/internal/models"
	"github.com/Natali-Skv/forum_board/internal/tools/errors"
	pkgErrors "github.com/pkg/errors"
)

type MemoryRepo struct {
	Store *mock.Store
}

func NewMemoryRepo(store *mock.Store) *MemoryRepo {
	return &MemoryRepo{Store: store}
}

func (r *MemoryRepo) Create(user *models.User) (*models.User, error) {
	err := r.Store.Update(func(d *mock.Data) error {
		for _, u := range d.Users {
			if u.Id == user.Id || u.Username == user.Username {
				return pkgErrors.Wrap(errors.ErrUserConflict, user.Id)
			}
		}
		user.JoinDate = r.Store.Now()
		user.Stats = models.UserStats{}
		d.Users = append(d.Users, *user)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *MemoryRepo) GetByIdOrUsername(user *models.User) ([]models.User, error) {
	users := make([]models.User, 0, 2)
	err := r.Store.View(func(d *mock.Data) error {
		for i, u := range d.Users {
			if u.Id == user.Id || u.Username == user.Username {
				users = append(users, d.UserWithStats(i))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *MemoryRepo) GetByID(id string) (*models.User, error) {
	var user models.User
	err := r.Store.View(func(d *mock.Data) error {
		i := d.FindUser(id)
		if i < 0 {
			return pkgErrors.Wrap(errors.ErrNotFound, "user "+id)
		}
		user = d.UserWithStats(i)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *MemoryRepo) GetUserPosts(id string) ([]models.Post, error) {
	posts := make([]models.Post, 0)
	err := r.Store.View(func(d *mock.Data) error {
		if d.FindUser(id) < 0 {
			return pkgErrors.Wrap(errors.ErrNotFound, "user "+id)
		}
		for i := len(d.Posts) - 1; i >= 0; i-- {
			if d.Posts[i].AuthorId == id {
				posts = append(posts, d.Posts[i])
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *MemoryRepo) GetUserThreads(id string) ([]models.Thread, error) {
	threads := make([]models.Thread, 0)
	err := r.Store.View(func(d *mock.Data) error {
		if d.FindUser(id) < 0 {
			return pkgErrors.Wrap(errors.ErrNotFound, "user "+id)
		}
		for i := range d.Threads {
			if d.Threads[i].AuthorId == id {
				threads = append(threads, d.ThreadWithStats(i))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(threads, func(i, j int) bool {
		return time.Time(threads[i].Created).After(time.Time(threads[j].Created))
	})
	return threads, nil
}
