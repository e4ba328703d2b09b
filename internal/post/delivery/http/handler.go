package handler

import (
	"net/http"

	"github.com/Natali-Skv/forum_board/internal/models"
	postRepo "github.com/Natali-Skv/forum_board/internal/post"
	"github.com/Natali-Skv/forum_board/internal/post/tree"
	threadRepo "github.com/Natali-Skv/forum_board/internal/thread"
	"github.com/Natali-Skv/forum_board/internal/tools/errors"
	"github.com/Natali-Skv/forum_board/internal/tools/metrics"
	"github.com/Natali-Skv/forum_board/internal/tools/paginate"
	"github.com/labstack/echo/v4"
	pkgErrors "github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	IdCtxKey           = "id"
	DescSortQueryParam = "desc"
	PageQueryParam     = "page"
	LimitQueryParam    = "limit"
	SortQueryParam     = "sort"
)

type Options struct {
	Limits       paginate.Limits
	OrphanPolicy tree.OrphanPolicy
}

type Handler struct {
	Repo    postRepo.Repo
	Threads threadRepo.Repo
	Options Options
	Logger  *zap.Logger
}

func NewHandler(repo postRepo.Repo, threads threadRepo.Repo, opts Options, logger *zap.Logger) *Handler {
	return &Handler{Repo: repo, Threads: threads, Options: opts, Logger: logger}
}

func (h *Handler) CreatePost(ctx echo.Context) error {
	defer metrics.Inc("create post")
	threadId := ctx.Param(IdCtxKey)
	newPost := &models.NewPost{}
	if err := ctx.Bind(newPost); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.BAD_BODY)
	}
	if err := ctx.Validate(newPost); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.BAD_BODY+": "+err.Error())
	}

	post, err := h.Repo.Create(&models.Post{
		ThreadId: threadId,
		AuthorId: newPost.AuthorId,
		ParentId: newPost.ParentId,
		Content:  newPost.Content,
	})
	if err != nil {
		switch pkgErrors.Cause(err) {
		case errors.ErrNotFound:
			return echo.NewHTTPError(http.StatusNotFound, errors.NOT_FOUND_THREAD+threadId)
		case errors.ErrAuthorNotFound:
			return echo.NewHTTPError(http.StatusNotFound, errors.NOT_FOUND_POST_AUTHOR+newPost.AuthorId)
		case errors.ErrParentConflict:
			return echo.NewHTTPError(http.StatusConflict, errors.NO_PARENT_POST)
		}
		h.Logger.Error("create post", zap.String("thread", threadId), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, errors.INTERNAL_SERVER_ERROR)
	}
	return ctx.JSON(http.StatusCreated, post)
}

func (h *Handler) GetThreadPosts(ctx echo.Context) error {
	defer metrics.Inc("get thread posts")
	threadId := ctx.Param(IdCtxKey)
	page, limit, err := paginate.ParseQuery(ctx.QueryParam(PageQueryParam), ctx.QueryParam(LimitQueryParam), h.Options.Limits)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.INVALID_PAGE)
	}
	sort := ctx.QueryParam(SortQueryParam)

	posts, err := h.Repo.GetThreadPosts(threadId)
	if err != nil {
		h.Logger.Error("get thread posts", zap.String("thread", threadId), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, errors.INTERNAL_SERVER_ERROR)
	}
	if len(posts) == 0 {
		if exists, err := h.Repo.CheckThread(threadId); !exists && err == nil {
			return echo.NewHTTPError(http.StatusNotFound, errors.NOT_FOUND_THREAD+threadId)
		}
	}
	thread, err := h.Threads.GetByID(threadId)
	if err != nil {
		if pkgErrors.Cause(err) == errors.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, errors.NOT_FOUND_THREAD+threadId)
		}
		h.Logger.Error("get thread", zap.String("id", threadId), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, errors.INTERNAL_SERVER_ERROR)
	}

	list, err := postRepo.ListThreadPosts(thread, posts, postRepo.ListOptions{
		Sort:   sort,
		Desc:   ctx.QueryParam(DescSortQueryParam) == "true",
		Page:   page,
		Limit:  limit,
		Policy: h.Options.OrphanPolicy,
	})
	if err != nil {
		switch pkgErrors.Cause(err) {
		case errors.ErrUnknownSort:
			return echo.NewHTTPError(http.StatusBadRequest, errors.UNKNOWN_SORT_TYPE+sort)
		case errors.ErrInvalidPage:
			return echo.NewHTTPError(http.StatusBadRequest, errors.INVALID_PAGE)
		case errors.ErrOrphanPost, errors.ErrCyclicPost, errors.ErrDuplicatePost:
			h.Logger.Warn("broken thread", zap.String("thread", threadId), zap.Error(err))
			return echo.NewHTTPError(http.StatusConflict, errors.BROKEN_THREAD+threadId)
		}
		h.Logger.Error("list thread posts", zap.String("thread", threadId), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, errors.INTERNAL_SERVER_ERROR)
	}
	return ctx.JSON(http.StatusOK, list)
}

func (h *Handler) GetPost(ctx echo.Context) error {
	defer metrics.Inc("get post")
	id := ctx.Param(IdCtxKey)
	post, err := h.Repo.GetByID(id)
	if err != nil {
		if pkgErrors.Cause(err) == errors.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, errors.NO_POST+id)
		}
		h.Logger.Error("get post", zap.String("id", id), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, errors.INTERNAL_SERVER_ERROR)
	}
	return ctx.JSON(http.StatusOK, post)
}

func (h *Handler) UpvotePost(ctx echo.Context) error {
	defer metrics.Inc("upvote post")
	id := ctx.Param(IdCtxKey)
	post, err := h.Repo.Upvote(id)
	if err != nil {
		if pkgErrors.Cause(err) == errors.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, errors.NO_POST+id)
		}
		h.Logger.Error("upvote post", zap.String("id", id), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, errors.INTERNAL_SERVER_ERROR)
	}
	return ctx.JSON(http.StatusOK, post)
}
