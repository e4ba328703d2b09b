package validator_test

import (
	"testing"

	"github.com/Natali-Skv/forum_board/internal/models"
	"github.com/Natali-Skv/forum_board/internal/tools/validator"
	"github.com/stretchr/testify/assert"
)

func TestValidateNewPost(t *testing.T) {
	v := validator.New()

	assert.NoError(t, v.Validate(&models.NewPost{AuthorId: "user-1", Content: "hi"}))

	err := v.Validate(&models.NewPost{})
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "author is required")
		assert.Contains(t, err.Error(), "content is required")
	}
}

func TestValidateNewThreadTitleLength(t *testing.T) {
	title := make([]byte, 201)
	for i := range title {
		title[i] = 'a'
	}
	err := validator.New().Validate(&models.NewThread{Title: string(title), AuthorId: "user-1", Content: "x"})
	if assert.Error(t, err) {
		assert.Equal(t, "title must be at most 200", err.Error())
	}
}
