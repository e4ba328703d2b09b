package category

import "github.com/Natali-Skv/forum_board/internal/models"

type Repo interface {
	List() ([]models.Category, error)
	GetByID(id string) (*models.Category, error)
}
