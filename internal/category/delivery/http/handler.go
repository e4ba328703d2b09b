package handler

import (
	"net/http"

	"github.com/Natali-Skv/forum_board/internal/category"
	"github.com/Natali-Skv/forum_board/internal/tools/errors"
	"github.com/Natali-Skv/forum_board/internal/tools/metrics"
	"github.com/labstack/echo/v4"
	pkgErrors "github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	IdCtxKey = "id"
)

type Handler struct {
	Repo   category.Repo
	Logger *zap.Logger
}

func NewHandler(repo category.Repo, logger *zap.Logger) *Handler {
	return &Handler{Repo: repo, Logger: logger}
}

func (h *Handler) GetCategories(ctx echo.Context) error {
	defer metrics.Inc("get categories")
	categories, err := h.Repo.List()
	if err != nil {
		h.Logger.Error("list categories", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, errors.INTERNAL_SERVER_ERROR)
	}
	return ctx.JSON(http.StatusOK, categories)
}

func (h *Handler) GetCategory(ctx echo.Context) error {
	defer metrics.Inc("get category")
	id := ctx.Param(IdCtxKey)
	categoryResp, err := h.Repo.GetByID(id)
	if err != nil {
		if pkgErrors.Cause(err) == errors.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, errors.NOT_FOUND_CATEGORY+id)
		}
		h.Logger.Error("get category", zap.String("id", id), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, errors.INTERNAL_SERVER_ERROR)
	}
	return ctx.JSON(http.StatusOK, categoryResp)
}
