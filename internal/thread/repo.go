package thread

import "github.com/Natali-Skv/forum_board/internal/models"

type Repo interface {
	// Create stores the thread together with its original post.
	Create(thread *models.Thread, original *models.Post) (*models.Thread, error)
	GetByID(id string) (*models.Thread, error)
	// GetCategoryThreads returns the threads of a category, oldest first.
	GetCategoryThreads(categoryId string) ([]models.Thread, error)
	CheckCategory(id string) (bool, error)
}
