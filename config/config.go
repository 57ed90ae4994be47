package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	API     APIConfig
	Storage StorageConfig
	Logger  LoggerConfig
	Sync    SyncConfig
	Stub    StubConfig
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type StorageConfig struct {
	Path        string
	DownloadDir string
}

type LoggerConfig struct {
	Level    string
	Encoding string
}

type SyncConfig struct {
	CacheTTL        time.Duration
	RefreshInterval time.Duration
}

// StubConfig configures the local development backend only; the client
// itself never reads these.
type StubConfig struct {
	Port           string
	JWTSecret      string
	JWTExpiryHours int
	DBPath         string
}

func Load() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: getEnv("KHATA_API_URL", "https://api.khatapro.in"),
			Timeout: time.Duration(getEnvInt("KHATA_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		Storage: StorageConfig{
			Path:        getEnv("KHATA_STORAGE_PATH", defaultStoragePath()),
			DownloadDir: getEnv("KHATA_DOWNLOAD_DIR", os.TempDir()),
		},
		Logger: LoggerConfig{
			Level:    getEnv("LOGGER_LEVEL", "info"),
			Encoding: getEnv("LOGGER_ENCODING", "console"),
		},
		Sync: SyncConfig{
			CacheTTL:        time.Duration(getEnvInt("KHATA_CACHE_TTL_MINUTES", 5)) * time.Minute,
			RefreshInterval: time.Duration(getEnvInt("KHATA_REFRESH_INTERVAL_MINUTES", 5)) * time.Minute,
		},
		Stub: StubConfig{
			Port:           getEnv("PORT", "8080"),
			JWTSecret:      getEnv("JWT_SECRET", ""),
			JWTExpiryHours: getEnvInt("JWT_EXPIRY_HOURS", 24),
			DBPath:         getEnv("STUB_DB_PATH", "khatapro-stub.db"),
		},
	}
}

func defaultStoragePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".khatapro"
	}
	return home + "/.khatapro"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
