// Package config holds the service settings. Defaults live in Default; Load
// overlays a YAML file and then the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/Natali-Skv/forum_board/internal/post/tree"
	"github.com/Natali-Skv/forum_board/internal/tools/paginate"
	"github.com/Natali-Skv/forum_board/internal/tools/validator"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	Threads ThreadsConfig `yaml:"threads"`
	Search  SearchConfig  `yaml:"search"`
}

type ServerConfig struct {
	Addr string `yaml:"addr" validate:"required"`
}

type StorageConfig struct {
	Backend  string         `yaml:"backend" validate:"oneof=memory postgres"`
	Postgres DbConfigStruct `yaml:"postgres"`
}

type DbConfigStruct struct {
	// URL wins over the separate fields when set.
	URL            string `yaml:"url"`
	User           string `yaml:"user"`
	Password       string `yaml:"password"`
	DBName         string `yaml:"dbname"`
	Host           string `yaml:"host"`
	Port           string `yaml:"port"`
	MaxConnections int    `yaml:"max_connections" validate:"gte=1"`
}

type LogConfig struct {
	Level      string `yaml:"level" validate:"oneof=debug info warn error"`
	Format     string `yaml:"format" validate:"oneof=json console"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" validate:"gte=0"`
	MaxBackups int    `yaml:"max_backups" validate:"gte=0"`
	MaxAgeDays int    `yaml:"max_age_days" validate:"gte=0"`
}

type ThreadsConfig struct {
	PageSize     int    `yaml:"page_size" validate:"gte=1"`
	MaxPageSize  int    `yaml:"max_page_size" validate:"gtefield=PageSize"`
	OrphanPolicy string `yaml:"orphan_policy"`
}

type SearchConfig struct {
	MinQueryLength int `yaml:"min_query_length" validate:"gte=1"`
}

var Default = Config{
	Server: ServerConfig{Addr: ":5000"},
	Storage: StorageConfig{
		Backend: StorageMemory,
		Postgres: DbConfigStruct{
			User:           "docker",
			Password:       "docker",
			DBName:         "docker",
			Host:           "localhost",
			Port:           "5432",
			MaxConnections: 100,
		},
	},
	Log: LogConfig{
		Level:      "info",
		Format:     "json",
		MaxSizeMB:  100,
		MaxBackups: 3,
		MaxAgeDays: 28,
	},
	Threads: ThreadsConfig{
		PageSize:     paginate.DefaultLimit,
		MaxPageSize:  paginate.MaxLimit,
		OrphanPolicy: string(tree.OrphanPromote),
	},
	Search: SearchConfig{MinQueryLength: 2},
}

// Load reads path (skipped when empty) over the defaults, applies the
// environment and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "read config")
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, errors.Wrapf(err, "parse config %s", path)
		}
	}
	if err := cfg.applyEnv(os.Getenv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv("FORUM_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := getenv("FORUM_STORAGE"); v != "" {
		c.Storage.Backend = v
	}
	if v := getenv("DATABASE_URL"); v != "" {
		c.Storage.Postgres.URL = v
	}
	if v := getenv("FORUM_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := getenv("FORUM_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	if v := getenv("FORUM_ORPHAN_POLICY"); v != "" {
		c.Threads.OrphanPolicy = v
	}
	if v := getenv("FORUM_PAGE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, "FORUM_PAGE_SIZE")
		}
		c.Threads.PageSize = n
	}
	return nil
}

func (c *Config) Validate() error {
	if err := validator.New().Validate(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	if _, err := tree.ParseOrphanPolicy(c.Threads.OrphanPolicy); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}

func (c *Config) OrphanPolicy() tree.OrphanPolicy {
	policy, _ := tree.ParseOrphanPolicy(c.Threads.OrphanPolicy)
	return policy
}

func (c *Config) PageLimits() paginate.Limits {
	return paginate.Limits{Default: c.Threads.PageSize, Max: c.Threads.MaxPageSize}
}

// ConnString is handed to pgx.ParseConnectionString.
func (db *DbConfigStruct) ConnString() string {
	if db.URL != "" {
		return db.URL
	}
	return fmt.Sprintf("user=%s password=%s dbname=%s host=%s sslmode=disable port=%s",
		db.User, db.Password, db.DBName, db.Host, db.Port)
}

// MigrateURL is the database URL golang-migrate expects.
func (db *DbConfigStruct) MigrateURL() string {
	if db.URL != "" {
		return db.URL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(db.User, db.Password),
		Host:     db.Host + ":" + db.Port,
		Path:     "/" + db.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
