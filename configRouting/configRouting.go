package configRouting

import (
	categoryHandler "github.com/Natali-Skv/forum_board/internal/category/delivery/http"
	postHandler "github.com/Natali-Skv/forum_board/internal/post/delivery/http"
	searchHandler "github.com/Natali-Skv/forum_board/internal/search/delivery/http"
	serviceHandler "github.com/Natali-Skv/forum_board/internal/service/delivery/http"
	threadHandler "github.com/Natali-Skv/forum_board/internal/thread/delivery/http"
	"github.com/Natali-Skv/forum_board/internal/tools/metrics"
	userHandler "github.com/Natali-Skv/forum_board/internal/user/delivery/http"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
)

const (
	routerPrefix = "/api/"
	metricsPath  = "/metrics"
)

type Handlers struct {
	CategoryHandler *categoryHandler.Handler
	ThreadHandler   *threadHandler.Handler
	PostHandler     *postHandler.Handler
	UserHandler     *userHandler.Handler
	SearchHandler   *searchHandler.Handler
	ServiceHandler  *serviceHandler.Handler
}

func (hs *Handlers) ConfigureRouting(router *echo.Echo) {
	router.GET(routerPrefix+"categories", hs.CategoryHandler.GetCategories)
	router.GET(routerPrefix+"category/:"+categoryHandler.IdCtxKey+"/details", hs.CategoryHandler.GetCategory)
	router.GET(routerPrefix+"category/:"+threadHandler.IdCtxKey+"/threads", hs.ThreadHandler.GetCategoryThreads)
	router.POST(routerPrefix+"category/:"+threadHandler.IdCtxKey+"/create", hs.ThreadHandler.CreateThread)

	router.GET(routerPrefix+"thread/:"+threadHandler.IdCtxKey+"/details", hs.ThreadHandler.GetThread)
	router.GET(routerPrefix+"thread/:"+postHandler.IdCtxKey+"/posts", hs.PostHandler.GetThreadPosts)
	router.POST(routerPrefix+"thread/:"+postHandler.IdCtxKey+"/create", hs.PostHandler.CreatePost)

	router.GET(routerPrefix+"post/:"+postHandler.IdCtxKey+"/details", hs.PostHandler.GetPost)
	router.POST(routerPrefix+"post/:"+postHandler.IdCtxKey+"/upvote", hs.PostHandler.UpvotePost)

	router.POST(routerPrefix+"user/:"+userHandler.IdCtxKey+"/create", hs.UserHandler.CreateUser)
	router.GET(routerPrefix+"user/:"+userHandler.IdCtxKey+"/profile", hs.UserHandler.GetUser)
	router.GET(routerPrefix+"user/:"+userHandler.IdCtxKey+"/posts", hs.UserHandler.GetUserPosts)
	router.GET(routerPrefix+"user/:"+userHandler.IdCtxKey+"/threads", hs.UserHandler.GetUserThreads)

	router.GET(routerPrefix+"search", hs.SearchHandler.Search)

	router.GET(routerPrefix+"service/status", hs.ServiceHandler.Status)
	router.POST(routerPrefix+"service/clear", hs.ServiceHandler.Clear)
}

// ConfigureMetrics counts every request and serves the forum registry on /metrics.
// Call it once per process: the request collectors register into metrics.Registry.
func ConfigureMetrics(router *echo.Echo) {
	router.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  metrics.Namespace,
		Registerer: metrics.Registry,
		Skipper: func(c echo.Context) bool {
			return c.Path() == metricsPath
		},
	}))
	router.GET(metricsPath, echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: metrics.Registry}))
}
