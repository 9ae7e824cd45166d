package config

import (
	"os"
	"strconv"
	"time"
)

// Environment variable names. They win over the JSON file.
const (
	EnvDatabasePath    = "INSPEKTO_DB_PATH"
	EnvUploadTimeout   = "INSPEKTO_UPLOAD_TIMEOUT"
	EnvUploadBatchSize = "INSPEKTO_UPLOAD_BATCH_SIZE"
)

func parseEnv(cfg *Config) error {
	if v := os.Getenv(EnvDatabasePath); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv(EnvUploadTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		cfg.UploadTimeout = d
	}
	if v := os.Getenv(EnvUploadBatchSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		cfg.UploadBatchSize = n
	}
	return nil
}
