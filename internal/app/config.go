package app

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mlaskowski7/AllegroLikeByt/internal/platform/envutil"
	"github.com/mlaskowski7/AllegroLikeByt/internal/platform/logger"
)

const (
	StoreBackendFile   = "file"
	StoreBackendSQLite = "sqlite"
)

type Config struct {
	LogMode      string `yaml:"log_mode"`
	DataDir      string `yaml:"data_dir"`
	StoreBackend string `yaml:"store_backend"`
	CartCapacity int    `yaml:"cart_capacity"`
}

func defaultConfig() Config {
	return Config{
		LogMode:      "development",
		DataDir:      "data",
		StoreBackend: StoreBackendFile,
		CartCapacity: 0, // 0 falls through to domain.DefaultCartCapacity
	}
}

// LoadConfig reads the optional YAML config named by SHOP_CONFIG_YAML, then
// applies env var overrides on top. Unreadable YAML degrades to defaults with
// a warning rather than failing startup.
func LoadConfig(log *logger.Logger) Config {
	cfg := defaultConfig()

	if path := envutil.GetEnv("SHOP_CONFIG_YAML", "", log); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Warn("config yaml unreadable, using defaults", "path", path, "error", err)
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Warn("config yaml invalid, using defaults", "path", path, "error", err)
			cfg = defaultConfig()
		}
	}

	cfg.LogMode = envutil.GetEnv("LOG_MODE", cfg.LogMode, log)
	cfg.DataDir = envutil.GetEnv("SHOP_DATA_DIR", cfg.DataDir, log)
	cfg.StoreBackend = envutil.GetEnv("SHOP_STORE_BACKEND", cfg.StoreBackend, log)
	cfg.CartCapacity = envutil.GetEnvAsInt("SHOP_CART_CAPACITY", cfg.CartCapacity, log)
	return cfg
}
