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

type DB struct {
	Host               string `validate:"required"`
	Port               int    `default:"5432"`
	User               string `default:"postgres"`
	Password           string `validate:"required"`
	Database           string `default:"foodgram"`
	MaxIdleConnections int    `default:"10"`
	MaxOpenConnections int    `default:"10"`
}

type Server struct {
	Port            int      `default:"8080"`
	AllowedOrigins  []string `default:"[*]"`
	PageSize        int      `default:"6"`
	MaxPageSize     int      `default:"100"`
	LoginRatePerMin int      `default:"20"`
}

type Auth struct {
	SecretKey     string        `validate:"required"`
	Issuer        string        `default:"foodgram"`
	TokenLifetime time.Duration `default:"24h"`
}

type Media struct {
	Backend   string `default:"local"`
	Directory string `default:"media"`
	BaseURL   string `default:"/media/"`
	S3        S3
}

type S3 struct {
	Bucket    string
	Region    string `default:"us-east-1"`
	Endpoint  string
	AccessKey string
	SecretKey string
}

// Shopping holds the fixed lines of the downloadable shopping list.
type Shopping struct {
	Header      string `default:">>> SHOPPING LIST <<<"`
	Placeholder string `default:"Oops! Your shopping list is empty :("`
}

type Config struct {
	DB       DB
	Server   Server
	Auth     Auth
	Media    Media
	Shopping Shopping
}

const (
	envPrefix = "FOODGRAM" // env prefix for env vars

	MediaBackendLocal = "local"
	MediaBackendS3    = "s3"
)

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

	if err := config.check(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) check() error {
	switch c.Media.Backend {
	case MediaBackendLocal:
	case MediaBackendS3:
		if c.Media.S3.Bucket == "" {
			return fmt.Errorf("%w: Media.S3.Bucket is required for the s3 backend", ErrConfiguration)
		}
	default:
		return fmt.Errorf("%w: Media.Backend must be local or s3", ErrConfiguration)
	}

	if c.Server.PageSize < 1 || c.Server.MaxPageSize < c.Server.PageSize {
		return fmt.Errorf("%w: Server.PageSize must be between 1 and Server.MaxPageSize", ErrConfiguration)
	}

	return nil
}
