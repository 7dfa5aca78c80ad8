package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all service configuration loaded from environment variables.
type Config struct {
	Port           string
	StorageBackend string // "file" or "mongo" record store
	UsersBackend   string // "mongo" or "postgres" credential store
	MongoURI       string
	MongoDB        string
	PostgresDSN    string
	DataFile       string
	AssetsDir      string
}

// Load reads configuration from the environment, with a .env file as the
// local-development fallback. Environment variables win over .env values.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:           getenv("PORT", "3000"),
		StorageBackend: getenv("STORAGE_BACKEND", "file"),
		UsersBackend:   getenv("USERS_BACKEND", "mongo"),
		MongoURI:       getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:        getenv("MONGO_DB", "pokedex"),
		PostgresDSN:    getenv("POSTGRES_DSN", ""),
		DataFile:       getenv("DATA_FILE", "data/pokedex.json"),
		AssetsDir:      getenv("ASSETS_DIR", "assets"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
