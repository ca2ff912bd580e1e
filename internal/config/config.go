package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
)

var (
	ErrUnknownDriver = errors.New("unknown driver")
	ErrMissingOption = errors.New("missing option")
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string  `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Storage  Storage `yaml:"storage"`
	Redis    Redis   `yaml:"redis"`
	Cache    Cache   `yaml:"cache"`
	Game     Game    `yaml:"game"`
	Move     Move    `yaml:"move"`
}

type Storage struct {
	Driver      string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"memory"`
	PostgresDSN string `yaml:"postgres-dsn" env:"POSTGRES_DSN"`
	SQLitePath  string `yaml:"sqlite-path" env:"SQLITE_PATH" env-default:"tictactoe.db"`
}

type Redis struct {
	Host     string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type Cache struct {
	Driver        string        `yaml:"driver" env:"CACHE_DRIVER" env-default:"memory"`
	TTL           time.Duration `yaml:"ttl" env:"CACHE_TTL" env-default:"1h"`
	SweepInterval time.Duration `yaml:"sweep-interval" env:"CACHE_SWEEP_INTERVAL" env-default:"1m"`
}

type Game struct {
	BoardSize        int `yaml:"board-size" env:"GAME_BOARD_SIZE" env-default:"3"`
	WinnerLineLength int `yaml:"winner-line-length" env:"GAME_WINNER_LINE_LENGTH" env-default:"3"`
	SignChangeChance int `yaml:"sign-change-chance" env:"GAME_SIGN_CHANGE_CHANCE" env-default:"10"`
}

type Move struct {
	LockTimeout time.Duration `yaml:"lock-timeout" env:"MOVE_LOCK_TIMEOUT" env-default:"5s"`
	GateScope   string        `yaml:"gate-scope" env:"MOVE_GATE_SCOPE" env-default:"game"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	if err := config.Validate(); err != nil {
		panic(fmt.Errorf("invalid config: %w", err))
	}

	return config
}

// Validate - checks driver names and the game defaults.
func (that *Config) Validate() error {
	switch that.Storage.Driver {
	case StorageMemory, StorageRedis, StorageSQLite:
	case StoragePostgres:
		if that.Storage.PostgresDSN == "" {
			return fmt.Errorf("%w: storage.postgres-dsn", ErrMissingOption)
		}
	default:
		return fmt.Errorf("%w: storage %q", ErrUnknownDriver, that.Storage.Driver)
	}

	switch that.Cache.Driver {
	case StorageMemory, StorageRedis:
	default:
		return fmt.Errorf("%w: cache %q", ErrUnknownDriver, that.Cache.Driver)
	}

	if err := that.Game.Settings().Validate(); err != nil {
		return fmt.Errorf("game defaults: %w", err)
	}

	return nil
}

func (that *Config) UsesRedis() bool {
	return that.Storage.Driver == StorageRedis || that.Cache.Driver == StorageRedis
}

func (that Game) Settings() entity.Settings {
	return entity.Settings{
		BoardSize:        that.BoardSize,
		WinnerLineLength: that.WinnerLineLength,
		SignChangeChance: that.SignChangeChance,
	}
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
