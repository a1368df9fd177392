package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix 是所有配置环境变量的统一前缀，例如 STELLARNOTES_PORT。
const EnvPrefix = "STELLARNOTES_"

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	Env               string `koanf:"env" validate:"required"`
	ListenAddr        string `koanf:"listen_addr" validate:"required"`
	Port              string `koanf:"port" validate:"required,numeric"`
	DatabasePath      string `koanf:"database_path" validate:"required"`
	GinMode           string `koanf:"gin_mode" validate:"oneof=debug release test"`
	LogLevel          string `koanf:"log_level" validate:"oneof=trace debug info warn error"`
	LogFile           string `koanf:"log_file"`
	LogMaxSizeMB      int    `koanf:"log_max_size_mb" validate:"gte=0"`
	LogMaxFiles       int    `koanf:"log_max_files" validate:"gte=0"`
	SuperRootUserName string `koanf:"super_root_user_name"`
	SuperRootPassword string `koanf:"super_root_password"`
}

// IsProduction reports whether the service runs with production defaults.
func (c AppConfig) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// Load 从环境变量（以及可选的 .env 文件）读取应用配置，并为缺失项提供默认值。
func Load() (AppConfig, error) {
	k := koanf.New(".")
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return AppConfig{}, fmt.Errorf("load env config: %w", err)
	}

	var cfg AppConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := validator.New().Struct(cfg); err != nil {
		return AppConfig{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func applyDefaults(cfg *AppConfig) {
	cfg.Env = strings.TrimSpace(cfg.Env)
	if cfg.Env == "" {
		cfg.Env = "development"
	}

	cfg.Port = strings.TrimSpace(cfg.Port)
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	cfg.ListenAddr = strings.TrimSpace(cfg.ListenAddr)
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = fmt.Sprintf(":%s", cfg.Port)
	}

	cfg.DatabasePath = strings.TrimSpace(cfg.DatabasePath)
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "stellarnotes.db"
	}

	cfg.GinMode = strings.ToLower(strings.TrimSpace(cfg.GinMode))
	if cfg.GinMode == "" {
		cfg.GinMode = "release"
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	cfg.LogFile = strings.TrimSpace(cfg.LogFile)
	if cfg.LogMaxSizeMB == 0 {
		cfg.LogMaxSizeMB = 10
	}
	if cfg.LogMaxFiles == 0 {
		cfg.LogMaxFiles = 5
	}

	cfg.SuperRootUserName = strings.TrimSpace(cfg.SuperRootUserName)
	cfg.SuperRootPassword = strings.TrimSpace(cfg.SuperRootPassword)
}
