// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Log     LogConfig     `mapstructure:"log"`
	CORS    CORSConfig    `mapstructure:"cors"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// StorageConfig はユーザーごとの JSON ファイルの置き場所です。
// FilePattern は fmt の書式で、%s に保存キーが入ります。
type StorageConfig struct {
	Dir         string `mapstructure:"dir"`
	FilePattern string `mapstructure:"file_pattern"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

// Load は .env (あれば)、config.yaml、APP_ 接頭辞の環境変数の順に設定を読み込みます。
// path が空の場合はカレントディレクトリのみを探します。
func Load(path string) (*Config, error) {
	// .env が無いのは正常
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("APP") // 例: APP_STORAGE_DIR
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config.Load: reading config file: %w", err)
		}
		slog.Warn("Config file not found. Using defaults and environment variables.")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config.Load: unmarshalling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	slog.Info("Config loaded successfully",
		slog.String("port", cfg.Server.Port),
		slog.String("storage_dir", cfg.Storage.Dir),
		slog.String("file_pattern", cfg.Storage.FilePattern),
		slog.String("log_level", cfg.Log.Level),
	)
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("storage.dir", DefaultStorageDir)
	v.SetDefault("storage.file_pattern", DefaultStorageFilePattern)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Content-Type", "X-Request-Id"})
	v.SetDefault("cors.exposed_headers", []string{})
	v.SetDefault("cors.allow_credentials", false)
	v.SetDefault("cors.max_age", DefaultCORSMaxAge)
}

func (c *Config) validate() error {
	if c.Storage.Dir == "" {
		return errors.New("config: storage.dir must not be empty")
	}
	if strings.Count(c.Storage.FilePattern, "%s") != 1 || strings.ContainsAny(c.Storage.FilePattern, `/\`) {
		return fmt.Errorf("config: storage.file_pattern %q must contain exactly one %%s and no path separator", c.Storage.FilePattern)
	}
	return nil
}
