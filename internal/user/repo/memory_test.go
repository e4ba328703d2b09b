package userRepo

import (
	"testing"

	"github.com/Natali-Skv/forum_board/internal/mock"
	"github.com/Natali-Skv/forum_board/internal/models"
	"github.com/Natali-Skv/forum_board/internal/tools/errors"
	pkgErrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryRepo(t *testing.T) *MemoryRepo {
	t.Helper()
	store, err := mock.NewStore(nil)
	require.NoError(t, err)
	return NewMemoryRepo(store)
}

func TestMemoryCreate(t *testing.T) {
	r := newMemoryRepo(t)

	user, err := r.Create(&models.User{Id: "user-3", Username: "Ada"})
	require.NoError(t, err)
	assert.NotEmpty(t, user.JoinDate.String())

	got, err := r.GetByID("user-3")
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.Username)

	_, err = r.Create(&models.User{Id: "user-3", Username: "Other"})
	assert.Equal(t, errors.ErrUserConflict, pkgErrors.Cause(err))
	_, err = r.Create(&models.User{Id: "user-4", Username: "Ada"})
	assert.Equal(t, errors.ErrUserConflict, pkgErrors.Cause(err))
}

func TestMemoryGetByIdOrUsername(t *testing.T) {
	r := newMemoryRepo(t)

	users, err := r.GetByIdOrUsername(&models.User{Id: "admin", Username: "JohnSmith"})
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "admin", users[0].Id)
	assert.Equal(t, "user-2", users[1].Id)

	users, err = r.GetByIdOrUsername(&models.User{Id: "ghost", Username: "Ghost"})
	require.NoError(t, err)
	assert.Empty(t, users)
}
