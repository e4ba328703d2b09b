package repo

import (
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

func (r *MemoryRepo) List() ([]models.Category, error) {
	var categories []models.Category
	err := r.Store.View(func(d *mock.Data) error {
		categories = make([]models.Category, 0, len(d.Categories))
		for i := range d.Categories {
			categories = append(categories, d.CategoryWithStats(i))
		}
		return nil
	})
	return categories, err
}

func (r *MemoryRepo) GetByID(id string) (*models.Category, error) {
	var category models.Category
	err := r.Store.View(func(d *mock.Data) error {
		i := d.FindCategory(id)
		if i < 0 {
			return pkgErrors.Wrap(errors.ErrNotFound, "category "+id)
		}
		category = d.CategoryWithStats(i)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &category, nil
}
