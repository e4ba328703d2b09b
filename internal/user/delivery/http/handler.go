package handler

import (
	"net/http"

	"github.com/Natali-Skv/forum_board/internal/models"
	"github.com/Natali-Skv/forum_board/internal/tools/errors"
	"github.com/Natali-Skv/forum_board/internal/tools/metrics"
	"github.com/Natali-Skv/forum_board/internal/tools/paginate"
	"github.com/Natali-Skv/forum_board/internal/user"
	"github.com/labstack/echo/v4"
	pkgErrors "github.com/pkg/errors"
	"go.uber.org/zap"
)

type Handler struct {
	Repo   user.Repo
	Limits paginate.Limits
	Logger *zap.Logger
}

const (
	IdCtxKey        = "id"
	PageQueryParam  = "page"
	LimitQueryParam = "limit"
)

func NewHandler(repo user.Repo, limits paginate.Limits, logger *zap.Logger) *Handler {
	return &Handler{Repo: repo, Limits: limits, Logger: logger}
}

// CreateUser registers the user named in the path. A taken id or username
// answers 409 with the users holding them.
func (h *Handler) CreateUser(ctx echo.Context) error {
	defer metrics.Inc("create user")
	newUser := &models.NewUser{}
	if err := ctx.Bind(newUser); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.BAD_BODY)
	}
	if err := ctx.Validate(newUser); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.BAD_BODY+": "+err.Error())
	}
	newUserReq := &models.User{Id: ctx.Param(IdCtxKey), Username: newUser.Username, AvatarUrl: newUser.AvatarUrl}
	newUserResp, err := h.Repo.Create(newUserReq)
	if err != nil {
		if pkgErrors.Cause(err) != errors.ErrUserConflict {
			h.Logger.Error("create user", zap.String("id", newUserReq.Id), zap.Error(err))
			return echo.NewHTTPError(http.StatusInternalServerError, errors.INTERNAL_SERVER_ERROR)
		}
		conflictUsers, err := h.Repo.GetByIdOrUsername(newUserReq)
		if err != nil || len(conflictUsers) == 0 {
			return echo.NewHTTPError(http.StatusInternalServerError, errors.INTERNAL_SERVER_ERROR)
		}
		return ctx.JSON(http.StatusConflict, conflictUsers)
	}
	return ctx.JSON(http.StatusCreated, newUserResp)
}

func (h *Handler) GetUser(ctx echo.Context) error {
	defer metrics.Inc("get user")
	id := ctx.Param(IdCtxKey)
	userResp, err := h.Repo.GetByID(id)
	if err != nil {
		return h.fail(err, id, "get user")
	}
	return ctx.JSON(http.StatusOK, userResp)
}

func (h *Handler) GetUserPosts(ctx echo.Context) error {
	defer metrics.Inc("get user posts")
	id := ctx.Param(IdCtxKey)
	page, limit, err := paginate.ParseQuery(ctx.QueryParam(PageQueryParam), ctx.QueryParam(LimitQueryParam), h.Limits)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.INVALID_PAGE)
	}
	posts, err := h.Repo.GetUserPosts(id)
	if err != nil {
		return h.fail(err, id, "get user posts")
	}
	postsPage, err := paginate.Paginate(posts, page, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.INVALID_PAGE)
	}
	return ctx.JSON(http.StatusOK, postsPage)
}

func (h *Handler) GetUserThreads(ctx echo.Context) error {
	defer metrics.Inc("get user threads")
	id := ctx.Param(IdCtxKey)
	page, limit, err := paginate.ParseQuery(ctx.QueryParam(PageQueryParam), ctx.QueryParam(LimitQueryParam), h.Limits)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.INVALID_PAGE)
	}
	threads, err := h.Repo.GetUserThreads(id)
	if err != nil {
		return h.fail(err, id, "get user threads")
	}
	threadsPage, err := paginate.Paginate(threads, page, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.INVALID_PAGE)
	}
	return ctx.JSON(http.StatusOK, threadsPage)
}

func (h *Handler) fail(err error, id, op string) error {
	if pkgErrors.Cause(err) == errors.ErrNotFound {
		return echo.NewHTTPError(http.StatusNotFound, errors.NOT_FOUND_USER_BY_ID+id)
	}
	h.Logger.Error(op, zap.String("id", id), zap.Error(err))
	return echo.NewHTTPError(http.StatusInternalServerError, errors.INTERNAL_SERVER_ERROR)
}
