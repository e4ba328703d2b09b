package handler

import (
	"net/http"

	"github.com/Natali-Skv/forum_board/internal/service"
	"github.com/Natali-Skv/forum_board/internal/tools/errors"
	"github.com/Natali-Skv/forum_board/internal/tools/metrics"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type Handler struct {
	Repo   service.Repo
	Logger *zap.Logger
}

func NewHandler(repo service.Repo, logger *zap.Logger) *Handler {
	return &Handler{Repo: repo, Logger: logger}
}

func (h *Handler) Status(ctx echo.Context) error {
	defer metrics.Inc("status")
	status, err := h.Repo.Status()
	if err != nil {
		h.Logger.Error("status", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, errors.INTERNAL_SERVER_ERROR)
	}
	metrics.StoredPosts.Set(float64(status.Posts))
	return ctx.JSON(http.StatusOK, status)
}

func (h *Handler) Clear(ctx echo.Context) error {
	defer metrics.Inc("clear")
	if err := h.Repo.Reset(); err != nil {
		h.Logger.Error("clear", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, errors.INTERNAL_SERVER_ERROR)
	}
	h.Logger.Info("store cleared")
	return ctx.NoContent(http.StatusOK)
}
