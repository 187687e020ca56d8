package logger

import (
	"os"
	"strings"

	"github.com/caarlos0/env"
)

// LogConfig chứa cấu hình cho hệ thống logging
type LogConfig struct {
	// Log Level: trace, debug, info, warn, error, fatal
	Level string `env:"LOG_LEVEL"`

	// Log Format: json, text
	Format string `env:"LOG_FORMAT"`

	// Log Output: file, stdout, both
	Output string `env:"LOG_OUTPUT" envDefault:"stdout"`

	// Log Rotation
	MaxSize    int  `env:"LOG_MAX_SIZE" envDefault:"50"`    // MB
	MaxBackups int  `env:"LOG_MAX_BACKUPS" envDefault:"5"`  // Số file cũ giữ lại
	MaxAge     int  `env:"LOG_MAX_AGE" envDefault:"14"`     // Số ngày giữ lại
	Compress   bool `env:"LOG_COMPRESS" envDefault:"true"`  // Nén file cũ

	// Log Paths
	LogPath   string `env:"LOG_PATH" envDefault:"./logs"`
	AppFile   string `env:"LOG_APP_FILE" envDefault:"app.log"`
	AuditFile string `env:"LOG_AUDIT_FILE" envDefault:"audit.log"`
	ErrorFile string `env:"LOG_ERROR_FILE" envDefault:"error.log"`

	// Bộ lọc, giá trị phân cách bởi dấu phẩy, rỗng hoặc "*" = tất cả
	FilterModules  string `env:"LOG_FILTER_MODULES"`
	FilterMethods  string `env:"LOG_FILTER_METHODS"`
	FilterLogTypes string `env:"LOG_FILTER_TYPES"`
}

// DefaultConfig trả về cấu hình mặc định, có override từ biến môi trường.
// Level và Format phụ thuộc GO_ENV nếu không được set rõ.
func DefaultConfig() *LogConfig {
	cfg := &LogConfig{}
	if err := env.Parse(cfg); err != nil {
		cfg = &LogConfig{Output: "stdout", MaxSize: 50, MaxBackups: 5, MaxAge: 14, Compress: true,
			LogPath: "./logs", AppFile: "app.log", AuditFile: "audit.log", ErrorFile: "error.log"}
	}

	production := strings.EqualFold(os.Getenv("GO_ENV"), "production")
	if cfg.Level == "" {
		cfg.Level = "debug"
		if production {
			cfg.Level = "info"
		}
	}
	if cfg.Format == "" {
		cfg.Format = "text"
		if production {
			cfg.Format = "json"
		}
	}

	cfg.Level = strings.ToLower(cfg.Level)
	cfg.Format = strings.ToLower(cfg.Format)
	cfg.Output = strings.ToLower(cfg.Output)
	return cfg
}
