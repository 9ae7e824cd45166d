package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/inspekto/internal/timex"
)

// EnvConfigFile names the environment variable pointing at the JSON config.
const EnvConfigFile = "INSPEKTO_CONFIG"

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "30s" or as integer nanoseconds.
type JsonConfig struct {
	DatabasePath    *string         `json:"database_path"`
	UploadTimeout   *timex.Duration `json:"upload_timeout"`
	UploadBatchSize *int            `json:"upload_batch_size"`
}

// parseJson overlays cfg with values from the JSON file named by
// INSPEKTO_CONFIG. No variable set means no JSON is loaded. Only fields
// present in the file override the defaults.
func parseJson(cfg *Config) error {
	path := os.Getenv(EnvConfigFile)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}

	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.UploadTimeout != nil {
		cfg.UploadTimeout = time.Duration(jc.UploadTimeout.Duration)
	}
	if jc.UploadBatchSize != nil {
		cfg.UploadBatchSize = *jc.UploadBatchSize
	}
	return nil
}
