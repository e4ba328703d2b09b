package service

import "github.com/Natali-Skv/forum_board/internal/models"

type Repo interface {
	Status() (*models.Status, error)
	// Reset drops everything written through the API.
	Reset() error
}
