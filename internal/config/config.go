package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Query     QueryConfig
	Assistant AssistantConfig
	Log       LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	// StaleWindow is how long a cached search result is served without
	// re-querying the store. RetainWindow is the redis TTL; an unused
	// entry evicts after it.
	StaleWindow  time.Duration
	RetainWindow time.Duration
}

type QueryConfig struct {
	// PageLimit caps a single remote fetch. A full page means the result
	// may be incomplete; the response carries a truncated flag.
	PageLimit        int
	Timeout          time.Duration
	DebounceInterval time.Duration
	AvgSpeedKmh      float64
	City             string
}

type AssistantConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			StaleWindow:  time.Duration(viper.GetInt("CACHE_STALE_WINDOW")) * time.Second,
			RetainWindow: time.Duration(viper.GetInt("CACHE_RETAIN_WINDOW")) * time.Second,
		},
		Query: QueryConfig{
			PageLimit:        viper.GetInt("QUERY_PAGE_LIMIT"),
			Timeout:          time.Duration(viper.GetInt("QUERY_TIMEOUT")) * time.Second,
			DebounceInterval: time.Duration(viper.GetInt("QUERY_DEBOUNCE_MS")) * time.Millisecond,
			AvgSpeedKmh:      viper.GetFloat64("QUERY_AVG_SPEED_KMH"),
			City:             viper.GetString("QUERY_CITY"),
		},
		Assistant: AssistantConfig{
			BaseURL:        viper.GetString("ASSISTANT_BASE_URL"),
			RequestTimeout: time.Duration(viper.GetInt("ASSISTANT_REQUEST_TIMEOUT")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Cache.StaleWindow == 0 {
		cfg.Cache.StaleWindow = 5 * time.Minute
	}
	if cfg.Cache.RetainWindow == 0 {
		cfg.Cache.RetainWindow = 10 * time.Minute
	}
	if cfg.Query.PageLimit == 0 {
		cfg.Query.PageLimit = 500
	}
	if cfg.Query.Timeout == 0 {
		cfg.Query.Timeout = 10 * time.Second
	}
	if cfg.Query.DebounceInterval == 0 {
		cfg.Query.DebounceInterval = 300 * time.Millisecond
	}
	if cfg.Query.AvgSpeedKmh == 0 {
		cfg.Query.AvgSpeedKmh = 30
	}
	if cfg.Query.City == "" {
		cfg.Query.City = "الرياض"
	}
	if cfg.Assistant.RequestTimeout == 0 {
		cfg.Assistant.RequestTimeout = 30 * time.Second
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
