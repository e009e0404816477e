package file

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Config holds the cvmatch settings.
type Config struct {
	// DataDir is where the JSON collections live.
	DataDir string `toml:"data_dir"`

	// GeminiAPIKey enables AI extraction when set.
	GeminiAPIKey string `toml:"gemini_api_key"`

	// GeminiModel overrides the default extraction model.
	GeminiModel string `toml:"gemini_model"`

	// HTTPPort is the port the serve command listens on.
	HTTPPort int `toml:"http_port"`

	// LogJSON switches log encoding from console to JSON.
	LogJSON bool `toml:"log_json"`
}

// defaultHTTPPort is used when neither file nor environment set one.
const defaultHTTPPort = 3000

// Load reads the configuration: defaults, then config.toml under
// configDir (or ~/.cvmatch), then .env and environment overrides.
// A missing config file is fine; defaults apply.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".cvmatch")
	}

	cfg := &Config{HTTPPort: defaultHTTPPort}

	data, err := os.ReadFile(filepath.Join(configDir, "config.toml"))
	switch {
	case errors.Is(err, os.ErrNotExist):
		// No file, defaults apply.
	case err != nil:
		return nil, err
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	// Best-effort .env load; absence is not an error.
	_ = godotenv.Load()

	applyEnv(cfg)

	if cfg.DataDir == "" {
		cfg.DataDir = filepath.Join(configDir, "data")
	}

	return cfg, nil
}

// applyEnv lets the environment override file values.
func applyEnv(cfg *Config) {
	if v := os.Getenv("CVMATCH_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.GeminiAPIKey = v
	}
	if v := os.Getenv("CVMATCH_GEMINI_MODEL"); v != "" {
		cfg.GeminiModel = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.HTTPPort = port
		}
	}
}
