package configs

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kkyr/fig"
	"go.uber.org/zap"
)

const (
	DriverSqlite   = "sqlite"
	DriverPostgres = "postgres"
)

type DB struct {
	Driver             string `default:"sqlite"`
	Path               string `default:"breweries.db"`
	Host               string
	Port               int    `default:"5432"`
	User               string `default:"postgres"`
	Password           string
	Database           string `default:"postgres"`
	MaxIdleConnections int    `default:"10"`
	MaxOpenConnections int    `default:"10"`
}

type Server struct {
	Port              int      `default:"5000"`
	AllowedOrigins    []string `default:"[*]"`
	RequestsPerMinute int      `default:"600"`
}

type Upstream struct {
	Integration string        `default:"openbrewerydb"`
	URL         string        `default:"https://api.openbrewerydb.org/v1/breweries"`
	PerPage     int           `default:"200"`
	Timeout     time.Duration `default:"30s"`
}

type Config struct {
	DB       DB
	Server   Server
	Upstream Upstream
}

const envPrefix = "BREWERYDIRECTORY" // env prefix for env vars

var ErrConfiguration = errors.New("configuration error")

func GetConfig(configFileName string, logger *zap.Logger) (*Config, error) {
	config := Config{}
	homeDir, _ := os.UserHomeDir()

	logger.Info("Loading config", zap.String("file", configFileName))

	err := fig.Load(&config, fig.File(configFileName), fig.Dirs(".", homeDir), fig.UseEnv(envPrefix))
	if err != nil {
		if strings.Contains(err.Error(), "file not found") {
			logger.Warn("Could not find config file", zap.String("file", configFileName))

			err = fig.Load(&config, fig.IgnoreFile(), fig.UseEnv(envPrefix))
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) validate() error {
	switch c.DB.Driver {
	case DriverSqlite:
		if c.DB.Path == "" {
			return fmt.Errorf("%w: DB.Path is required for sqlite", ErrConfiguration)
		}
	case DriverPostgres:
		var missing []string
		if c.DB.Host == "" {
			missing = append(missing, "DB.Host")
		}

		if c.DB.Password == "" {
			missing = append(missing, "DB.Password")
		}

		if len(missing) > 0 {
			return fmt.Errorf("%w: %s required for postgres", ErrConfiguration, strings.Join(missing, ", "))
		}
	default:
		return fmt.Errorf("%w: unknown DB.Driver %q", ErrConfiguration, c.DB.Driver)
	}

	if c.Upstream.PerPage <= 0 {
		return fmt.Errorf("%w: Upstream.PerPage must be positive", ErrConfiguration)
	}

	return nil
}
