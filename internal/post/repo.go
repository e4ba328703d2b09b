package post

import "github.com/Natali-Skv/forum_board/internal/models"

type Repo interface {
	// Create stores a reply. post.ThreadId must be set; a parent, when given,
	// has to be a post of the same thread. Without one the reply answers the
	// thread's original post.
	Create(post *models.Post) (*models.Post, error)
	GetByID(id string) (*models.Post, error)
	// GetThreadPosts returns every post of the thread in creation order.
	GetThreadPosts(threadId string) ([]models.Post, error)
	Upvote(id string) (*models.Post, error)
	CheckThread(id string) (bool, error)
}
