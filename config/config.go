package config

import (
    "os"
    "strconv"
)

// AppConfig holds application settings read once from the environment.
type AppConfig struct {
    Port             string
    TagoAPIKey       string
    ExpBusAPIKey     string
    GeminiAPIKey     string
    SessionSecret    string
    TerminalDataPath string
}

var App AppConfig

// LoadAppConfig populates App from environment variables. LoadEnv should be
// called first so values from a .env file are visible.
func LoadAppConfig() {
    App = AppConfig{
        Port:             getEnvWithDefault("PORT", "8080"),
        TagoAPIKey:       os.Getenv("TAGO_API_KEY"),
        ExpBusAPIKey:     os.Getenv("EXPBUS_API_KEY"),
        GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
        SessionSecret:    getEnvWithDefault("SESSION_SECRET", "trip-planner-dev-secret"),
        TerminalDataPath: getEnvWithDefault("TERMINAL_DATA_PATH", "data/all_terminal_codes.json"),
    }
}

// Database configuration
func getPostgresConnString() string {
    host := getEnvWithDefault("DB_HOST", "localhost")
    port := getEnvWithDefault("DB_PORT", "5432")
    user := getEnvWithDefault("DB_USER", "postgres")
    password := getEnvWithDefault("DB_PASSWORD", "1234")
    dbname := getEnvWithDefault("DB_NAME", "tripplanner")
    sslmode := getEnvWithDefault("DB_SSL_MODE", "disable")

    return "host=" + host + " port=" + port + " user=" + user +
        " password=" + password + " dbname=" + dbname + " sslmode=" + sslmode
}

func getMongoURI() string {
    return getEnvWithDefault("MONGO_URI", "mongodb://localhost:27017")
}

func getMongoDBName() string {
    return getEnvWithDefault("MONGO_DB_NAME", "tripplanner")
}

// Helper functions
func getEnvWithDefault(key, defaultValue string) string {
    if value := os.Getenv(key); value != "" {
        return value
    }
    return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
    if value := os.Getenv(key); value != "" {
        if intValue, err := strconv.Atoi(value); err == nil {
            return intValue
        }
    }
    return defaultValue
}
