package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Upstream  UpstreamConfig  `mapstructure:"upstream"`
	Media     MediaConfig     `mapstructure:"media"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	Redis     RedisConfig     `mapstructure:"redis"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Port string
	Mode string
}

// UpstreamConfig 远端 REST 后端
type UpstreamConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout_seconds"`
}

type MediaConfig struct {
	FFmpegPath     string        `mapstructure:"ffmpeg_path"`
	ProbeTimeout   time.Duration `mapstructure:"probe_timeout_seconds"`
	CaptureTimeout time.Duration `mapstructure:"capture_timeout_seconds"`
	MaxUploadMB    int64         `mapstructure:"max_upload_mb"`
	MaxCertMB      int64         `mapstructure:"max_certificate_mb"`
	SpoolDir       string        `mapstructure:"spool_dir"`
	Concurrency    int           `mapstructure:"concurrency"`
	JPEGQuality    int           `mapstructure:"jpeg_quality"`
}

// MaxUploadBytes 上传视频大小上限（字节）
func (m MediaConfig) MaxUploadBytes() int64 {
	return m.MaxUploadMB << 20
}

func (m MediaConfig) MaxCertificateBytes() int64 {
	return m.MaxCertMB << 20
}

type CacheConfig struct {
	Type string        `mapstructure:"type"`
	TTL  time.Duration `mapstructure:"ttl_hours"`
}

type StorageConfig struct {
	Type             string `mapstructure:"type"`
	ExportThumbnails bool   `mapstructure:"export_thumbnails"`
	LocalPath        string `mapstructure:"local_path"`
	MinioEndpoint    string `mapstructure:"minio_endpoint"`
	MinioAccessID    string `mapstructure:"minio_access_key"`
	MinioSecret      string `mapstructure:"minio_secret_key"`
	MinioBucket      string `mapstructure:"minio_bucket"`
	MinioSecure      bool   `mapstructure:"minio_secure"`
	OSSEndpoint      string `mapstructure:"oss_endpoint"`
	OSSAccessKey     string `mapstructure:"oss_access_key"`
	OSSSecretKey     string `mapstructure:"oss_secret_key"`
	OSSBucket        string `mapstructure:"oss_bucket"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

type LogConfig struct {
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "release")

	v.SetDefault("upstream.base_url", "https://api.mycyberedu.com")
	v.SetDefault("upstream.timeout_seconds", 30)

	v.SetDefault("media.ffmpeg_path", "ffmpeg")
	v.SetDefault("media.probe_timeout_seconds", 20)
	v.SetDefault("media.capture_timeout_seconds", 30)
	v.SetDefault("media.max_upload_mb", 100)
	v.SetDefault("media.max_certificate_mb", 10)
	v.SetDefault("media.spool_dir", os.TempDir())
	v.SetDefault("media.concurrency", 0)
	v.SetDefault("media.jpeg_quality", 80)

	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.ttl_hours", 24)

	v.SetDefault("storage.type", "local")
	v.SetDefault("storage.local_path", "uploads")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)

	v.SetDefault("rate_limit.max_requests", 600)
	v.SetDefault("rate_limit.window_minutes", 1)

	v.SetDefault("log.file", "logs/app.log")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age_days", 30)
}

func LoadConfig(path string) (*Config, error) {
	// .env 可选，不存在时忽略
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("CYBEREDU")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Server
	v.BindEnv("server.port", "PORT")
	v.BindEnv("server.mode", "SERVER_MODE")

	// Upstream
	v.BindEnv("upstream.base_url", "UPSTREAM_BASE_URL")

	// Redis
	v.BindEnv("redis.host", "REDIS_HOST")
	v.BindEnv("redis.port", "REDIS_PORT")
	v.BindEnv("redis.password", "REDIS_PASSWORD")

	// Storage
	v.BindEnv("storage.type", "STORAGE_TYPE")
	v.BindEnv("storage.minio_endpoint", "MINIO_ENDPOINT")
	v.BindEnv("storage.minio_access_key", "MINIO_ACCESS_KEY")
	v.BindEnv("storage.minio_secret_key", "MINIO_SECRET_KEY")
	v.BindEnv("storage.minio_bucket", "MINIO_BUCKET")
	v.BindEnv("storage.oss_endpoint", "OSS_ENDPOINT")
	v.BindEnv("storage.oss_access_key", "OSS_ACCESS_KEY")
	v.BindEnv("storage.oss_secret_key", "OSS_SECRET_KEY")
	v.BindEnv("storage.oss_bucket", "OSS_BUCKET")

	// Tracing
	v.BindEnv("tracing.enabled", "TRACING_ENABLED")
	v.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.Upstream.Timeout = cfg.Upstream.Timeout * time.Second
	cfg.Media.ProbeTimeout = cfg.Media.ProbeTimeout * time.Second
	cfg.Media.CaptureTimeout = cfg.Media.CaptureTimeout * time.Second
	cfg.Cache.TTL = cfg.Cache.TTL * time.Hour

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.Storage.Type == "local" && cfg.Storage.ExportThumbnails {
		if _, err := os.Stat(cfg.Storage.LocalPath); os.IsNotExist(err) {
			os.MkdirAll(cfg.Storage.LocalPath, 0755)
		}
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("upstream.base_url is required")
	}
	if c.Media.MaxUploadMB <= 0 {
		return fmt.Errorf("media.max_upload_mb must be positive, got %d", c.Media.MaxUploadMB)
	}
	if c.Media.JPEGQuality < 1 || c.Media.JPEGQuality > 100 {
		return fmt.Errorf("media.jpeg_quality must be within 1..100, got %d", c.Media.JPEGQuality)
	}
	switch c.Cache.Type {
	case "memory", "redis":
	default:
		return fmt.Errorf("unknown cache.type %q", c.Cache.Type)
	}
	return nil
}
