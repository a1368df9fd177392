package cli

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/stellarnotes/internal/config"
	"github.com/stellarnotes/internal/db"
	"github.com/stellarnotes/internal/logging"
	"gorm.io/gorm"
)

// runtime bundles what every command needs after startup.
type runtime struct {
	Config config.AppConfig
	Log    zerolog.Logger
	DB     *gorm.DB

	logCloser io.Closer
}

func newRuntime(logOut io.Writer) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, closer, err := logging.New(logOut, logging.Options{
		Level:     cfg.LogLevel,
		Pretty:    !cfg.IsProduction(),
		File:      cfg.LogFile,
		MaxSizeMB: cfg.LogMaxSizeMB,
		MaxFiles:  cfg.LogMaxFiles,
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	if err := db.Init(cfg.DatabasePath, log); err != nil {
		closer.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &runtime{Config: cfg, Log: log, DB: db.DB, logCloser: closer}, nil
}

func (r *runtime) Close() error {
	dbErr := db.Close(r.DB)
	logErr := r.logCloser.Close()
	if dbErr != nil {
		return dbErr
	}
	return logErr
}
