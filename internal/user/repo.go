package user

import (
	"github.com/Natali-Skv/forum_board/internal/models"
)

type Repo interface {
	// Create stores a new user; a taken id or username gives ErrUserConflict.
	Create(user *models.User) (*models.User, error)
	// GetByIdOrUsername returns the users holding the id or the username.
	GetByIdOrUsername(user *models.User) ([]models.User, error)
	// GetByID returns the user with its activity stats filled in.
	GetByID(id string) (*models.User, error)
	// GetUserPosts and GetUserThreads list the user's activity, newest first.
	GetUserPosts(id string) ([]models.Post, error)
	GetUserThreads(id string) ([]models.Thread, error)
}
