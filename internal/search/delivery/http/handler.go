package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Natali-Skv/forum_board/internal/models"
	"github.com/Natali-Skv/forum_board/internal/search"
	"github.com/Natali-Skv/forum_board/internal/tools/errors"
	"github.com/Natali-Skv/forum_board/internal/tools/metrics"
	"github.com/Natali-Skv/forum_board/internal/tools/paginate"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	QueryParam      = "q"
	PageQueryParam  = "page"
	LimitQueryParam = "limit"
)

type Handler struct {
	Repo           search.Repo
	Limits         paginate.Limits
	MinQueryLength int
	Logger         *zap.Logger
}

func NewHandler(repo search.Repo, limits paginate.Limits, minQueryLength int, logger *zap.Logger) *Handler {
	return &Handler{Repo: repo, Limits: limits, MinQueryLength: minQueryLength, Logger: logger}
}

// Search lists matching threads first, then matching posts.
func (h *Handler) Search(ctx echo.Context) error {
	defer metrics.Inc("search")
	query := strings.TrimSpace(ctx.QueryParam(QueryParam))
	if len([]rune(query)) < h.MinQueryLength {
		return echo.NewHTTPError(http.StatusBadRequest, errors.SHORT_SEARCH_QUERY+strconv.Itoa(h.MinQueryLength))
	}
	page, limit, err := paginate.ParseQuery(ctx.QueryParam(PageQueryParam), ctx.QueryParam(LimitQueryParam), h.Limits)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.INVALID_PAGE)
	}

	threads, err := h.Repo.SearchThreads(query)
	if err != nil {
		h.Logger.Error("search threads", zap.String("query", query), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, errors.INTERNAL_SERVER_ERROR)
	}
	posts, err := h.Repo.SearchPosts(query)
	if err != nil {
		h.Logger.Error("search posts", zap.String("query", query), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, errors.INTERNAL_SERVER_ERROR)
	}

	results := make([]models.SearchResult, 0, len(threads)+len(posts))
	results = append(results, threads...)
	results = append(results, posts...)
	resultsPage, err := paginate.Paginate(results, page, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.INVALID_PAGE)
	}
	return ctx.JSON(http.StatusOK, struct {
		Query string `json:"query"`
		paginate.Page[models.SearchResult]
	}{Query: query, Page: resultsPage})
}
