package Config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/yosuke-furukawa/json5/encoding/json5"
)

// SettingsFile is the optional JSON5 settings file read from the working directory.
const SettingsFile = "hrkeeper.json5"

type Config struct {
	DataDir          string `json:"data_dir"`
	Listen           string `json:"listen"`
	TemplatesDir     string `json:"templates_dir"`
	LogFormat        string `json:"log_format"`
	LogFile          string `json:"log_file"`
	ErrorLogFile     string `json:"error_log_file"`
	SnapshotSchedule string `json:"snapshot_schedule"`
	SnapshotDir      string `json:"snapshot_dir"`
}

func Default() Config {
	return Config{
		DataDir:      ".",
		Listen:       ":3001",
		LogFormat:    "json",
		LogFile:      "logs/requests.log",
		ErrorLogFile: "logs/errors.log",
		SnapshotDir:  "backups",
	}
}

// Load builds the configuration from defaults, then the settings file,
// then the environment (a .env file is loaded into it first if present).
func Load() (Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using system environment")
	}

	cfg := Default()
	if err := cfg.ReadFile(SettingsFile); err != nil {
		return cfg, err
	}
	cfg.ApplyEnv()
	return cfg, nil
}

// ReadFile overlays the JSON5 settings at path. A missing file is ignored.
func (c *Config) ReadFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json5.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields with any HR_* variables that are set.
func (c *Config) ApplyEnv() {
	override(&c.DataDir, "HR_DATA_DIR")
	override(&c.Listen, "HR_LISTEN")
	override(&c.TemplatesDir, "HR_TEMPLATES")
	override(&c.LogFormat, "HR_LOG_FORMAT")
	override(&c.LogFile, "HR_LOG_FILE")
	override(&c.ErrorLogFile, "HR_ERROR_LOG_FILE")
	override(&c.SnapshotSchedule, "HR_SNAPSHOT_SCHEDULE")
	override(&c.SnapshotDir, "HR_SNAPSHOT_DIR")
}

func override(field *string, key string) {
	if value, ok := os.LookupEnv(key); ok {
		*field = value
	}
}
