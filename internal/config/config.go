package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel          string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort          string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort        string `yaml:"socket-port" env:"SOCKET_PORT" env-default:"8080"`
	Redis             Redis  `yaml:"redis"`
	SQLiteStoragePath string `yaml:"sqlite-storage-path" env:"SQLITE_STORAGE_PATH" env-default:"./matches.db"`
	Engine            Engine `yaml:"engine"`
	Board             Board  `yaml:"board"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Engine struct {
	Strategy string `yaml:"strategy" env:"ENGINE_STRATEGY" env-default:"minimax"`
	// Depth - 0 picks the depth from the number of undrawn lines.
	Depth         int           `yaml:"depth" env:"ENGINE_DEPTH" env-default:"0"`
	MaxBranch     int           `yaml:"max-branch" env:"ENGINE_MAX_BRANCH" env-default:"0"`
	Seed          uint64        `yaml:"seed" env:"ENGINE_SEED" env-default:"0"`
	SearchTimeout time.Duration `yaml:"search-timeout" env:"ENGINE_SEARCH_TIMEOUT" env-default:"10s"`
	Cache         Cache         `yaml:"cache"`
}

type Cache struct {
	Policy   string `yaml:"policy" env:"ENGINE_CACHE_POLICY" env-default:"lru"`
	Capacity int    `yaml:"capacity" env:"ENGINE_CACHE_CAPACITY" env-default:"200000"`
}

// Board - defaults for new game sessions.
type Board struct {
	Preset             string `yaml:"preset" env:"BOARD_PRESET" env-default:"medium"`
	RequiredLineLength int    `yaml:"required-line-length" env:"BOARD_REQUIRED_LINE_LENGTH" env-default:"1"`
	ScoreAgain         bool   `yaml:"score-again" env:"BOARD_SCORE_AGAIN" env-default:"true"`
	AllowShorterLines  bool   `yaml:"allow-shorter-lines" env:"BOARD_ALLOW_SHORTER_LINES" env-default:"false"`
}

// Load - reads an optional .env next to the process, then the yaml config. Environment values
// override the file.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("unable to load .env file: %w", err)
	}

	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
