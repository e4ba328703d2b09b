package handler

import (
	"net/http"

	"github.com/Natali-Skv/forum_board/internal/models"
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
	PageQueryParam     = "page"
	LimitQueryParam    = "limit"
	DescSortQueryParam = "desc"
)

type Handler struct {
	Repo   threadRepo.Repo
	Limits paginate.Limits
	Logger *zap.Logger
}

func NewHandler(repo threadRepo.Repo, limits paginate.Limits, logger *zap.Logger) *Handler {
	return &Handler{Repo: repo, Limits: limits, Logger: logger}
}

func (h *Handler) CreateThread(ctx echo.Context) error {
	defer metrics.Inc("create thread")
	categoryId := ctx.Param(IdCtxKey)
	newThread := &models.NewThread{}
	if err := ctx.Bind(newThread); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.BAD_BODY)
	}
	if err := ctx.Validate(newThread); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.BAD_BODY+": "+err.Error())
	}

	thread := &models.Thread{CategoryId: categoryId, Title: newThread.Title, AuthorId: newThread.AuthorId}
	original := &models.Post{Content: newThread.Content}
	created, err := h.Repo.Create(thread, original)
	if err != nil {
		switch pkgErrors.Cause(err) {
		case errors.ErrNotFound:
			return echo.NewHTTPError(http.StatusNotFound, errors.NOT_FOUND_CATEGORY+categoryId)
		case errors.ErrAuthorNotFound:
			return echo.NewHTTPError(http.StatusNotFound, errors.NOT_FOUND_USER_BY_ID+newThread.AuthorId)
		}
		h.Logger.Error("create thread", zap.String("category", categoryId), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, errors.INTERNAL_SERVER_ERROR)
	}
	h.Logger.Info("thread created", zap.String("id", created.Id), zap.String("category", categoryId))
	return ctx.JSON(http.StatusCreated, struct {
		*models.Thread
		Original *models.Post `json:"original"`
	}{Thread: created, Original: original})
}

func (h *Handler) GetThread(ctx echo.Context) error {
	defer metrics.Inc("get thread")
	id := ctx.Param(IdCtxKey)
	threadResp, err := h.Repo.GetByID(id)
	if err != nil {
		if pkgErrors.Cause(err) == errors.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, errors.NOT_FOUND_THREAD+id)
		}
		h.Logger.Error("get thread", zap.String("id", id), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, errors.INTERNAL_SERVER_ERROR)
	}
	return ctx.JSON(http.StatusOK, threadResp)
}

func (h *Handler) GetCategoryThreads(ctx echo.Context) error {
	defer metrics.Inc("get category threads")
	categoryId := ctx.Param(IdCtxKey)
	page, limit, err := paginate.ParseQuery(ctx.QueryParam(PageQueryParam), ctx.QueryParam(LimitQueryParam), h.Limits)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.INVALID_PAGE)
	}

	threads, err := h.Repo.GetCategoryThreads(categoryId)
	if err != nil {
		h.Logger.Error("get category threads", zap.String("category", categoryId), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, errors.INTERNAL_SERVER_ERROR)
	}
	if len(threads) == 0 {
		if exists, err := h.Repo.CheckCategory(categoryId); !exists && err == nil {
			return echo.NewHTTPError(http.StatusNotFound, errors.NOT_FOUND_CATEGORY+categoryId)
		}
	}
	if ctx.QueryParam(DescSortQueryParam) == "true" {
		threads = paginate.Reverse(threads)
	}

	threadsPage, err := paginate.Paginate(threads, page, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.INVALID_PAGE)
	}
	return ctx.JSON(http.StatusOK, threadsPage)
}
