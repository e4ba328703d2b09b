// Package app wires repositories, handlers and middleware into an echo server.
package app

import (
	"github.com/Natali-Skv/forum_board/config"
	"github.com/Natali-Skv/forum_board/configRouting"
	"github.com/Natali-Skv/forum_board/internal/category"
	categoryHandler "github.com/Natali-Skv/forum_board/internal/category/delivery/http"
	categoryRepository "github.com/Natali-Skv/forum_board/internal/category/repo"
	"github.com/Natali-Skv/forum_board/internal/mock"
	"github.com/Natali-Skv/forum_board/internal/post"
	postHandler "github.com/Natali-Skv/forum_board/internal/post/delivery/http"
	postRepository "github.com/Natali-Skv/forum_board/internal/post/repo"
	"github.com/Natali-Skv/forum_board/internal/search"
	searchHandler "github.com/Natali-Skv/forum_board/internal/search/delivery/http"
	searchRepository "github.com/Natali-Skv/forum_board/internal/search/repo"
	"github.com/Natali-Skv/forum_board/internal/service"
	serviceHandler "github.com/Natali-Skv/forum_board/internal/service/delivery/http"
	serviceRepository "github.com/Natali-Skv/forum_board/internal/service/repo"
	"github.com/Natali-Skv/forum_board/internal/thread"
	threadHandler "github.com/Natali-Skv/forum_board/internal/thread/delivery/http"
	threadRepository "github.com/Natali-Skv/forum_board/internal/thread/repo"
	"github.com/Natali-Skv/forum_board/internal/tools/errors"
	"github.com/Natali-Skv/forum_board/internal/tools/validator"
	"github.com/Natali-Skv/forum_board/internal/user"
	userHandler "github.com/Natali-Skv/forum_board/internal/user/delivery/http"
	userRepository "github.com/Natali-Skv/forum_board/internal/user/repo"
	"github.com/jackc/pgx"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	pkgErrors "github.com/pkg/errors"
	"go.uber.org/zap"
)

type Repos struct {
	Categories category.Repo
	Threads    thread.Repo
	Posts      post.Repo
	Users      user.Repo
	Search     search.Repo
	Service    service.Repo
}

func MemoryRepos(store *mock.Store) Repos {
	return Repos{
		Categories: categoryRepository.NewMemoryRepo(store),
		Threads:    threadRepository.NewMemoryRepo(store),
		Posts:      postRepository.NewMemoryRepo(store),
		Users:      userRepository.NewMemoryRepo(store),
		Search:     searchRepository.NewMemoryRepo(store),
		Service:    serviceRepository.NewMemoryRepo(store),
	}
}

func PostgresRepos(connPool *pgx.ConnPool) Repos {
	return Repos{
		Categories: categoryRepository.NewRepo(connPool),
		Threads:    threadRepository.NewRepo(connPool),
		Posts:      postRepository.NewRepo(connPool),
		Users:      userRepository.NewRepo(connPool),
		Search:     searchRepository.NewRepo(connPool),
		Service:    serviceRepository.NewRepo(connPool),
	}
}

// OpenRepos picks the storage backend named in cfg. The returned func releases it.
func OpenRepos(cfg *config.Config, logger *zap.Logger) (Repos, func(), error) {
	switch cfg.Storage.Backend {
	case config.StorageMemory:
		store, err := mock.NewStore(logger)
		if err != nil {
			return Repos{}, nil, err
		}
		return MemoryRepos(store), func() {}, nil
	case config.StoragePostgres:
		connPool, err := Connect(cfg.Storage.Postgres)
		if err != nil {
			return Repos{}, nil, err
		}
		logger.Info("connected to postgres", zap.Int("max_connections", cfg.Storage.Postgres.MaxConnections))
		return PostgresRepos(connPool), connPool.Close, nil
	}
	return Repos{}, nil, pkgErrors.New(errors.UNKNOWN_STORAGE_BACKEND + cfg.Storage.Backend)
}

func Connect(db config.DbConfigStruct) (*pgx.ConnPool, error) {
	if db.URL == "" && db.DBName == "" {
		return nil, pkgErrors.New(errors.DATABASE_NOT_CONFIGURED)
	}
	pgxConn, err := pgx.ParseConnectionString(db.ConnString())
	if err != nil {
		return nil, pkgErrors.Wrap(err, "parse connection string")
	}
	pgxConn.PreferSimpleProtocol = true
	connPool, err := pgx.NewConnPool(pgx.ConnPoolConfig{
		ConnConfig:     pgxConn,
		MaxConnections: db.MaxConnections,
	})
	if err != nil {
		return nil, pkgErrors.Wrap(err, "connect to postgres")
	}
	return connPool, nil
}

func NewHandlers(cfg *config.Config, repos Repos, logger *zap.Logger) configRouting.Handlers {
	limits := cfg.PageLimits()
	return configRouting.Handlers{
		CategoryHandler: categoryHandler.NewHandler(repos.Categories, logger),
		ThreadHandler:   threadHandler.NewHandler(repos.Threads, limits, logger),
		PostHandler: postHandler.NewHandler(repos.Posts, repos.Threads, postHandler.Options{
			Limits:       limits,
			OrphanPolicy: cfg.OrphanPolicy(),
		}, logger),
		UserHandler:    userHandler.NewHandler(repos.Users, limits, logger),
		SearchHandler:  searchHandler.NewHandler(repos.Search, limits, cfg.Search.MinQueryLength, logger),
		ServiceHandler: serviceHandler.NewHandler(repos.Service, logger),
	}
}

// NewServer returns an echo instance with every API route. Metrics are left
// to the caller, see configRouting.ConfigureMetrics.
func NewServer(cfg *config.Config, repos Repos, logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validator.New()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			logger.Info("request", fields...)
			return nil
		},
	}))

	handlers := NewHandlers(cfg, repos, logger)
	handlers.ConfigureRouting(e)
	return e
}
