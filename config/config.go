package config

import "os"

// Config holds the settings the server reads from the environment.
type Config struct {
	Port           string
	MongoURI       string
	MongoDB        string
	JWTSecret      string
	GoogleClientID string
}

func Load() Config {
	return Config{
		Port:           getenv("PORT", "3000"),
		MongoURI:       getenv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:        getenv("MONGODB_DB", "notes-app"),
		JWTSecret:      getenv("JWT_SECRET", "your-secret-key"),
		GoogleClientID: os.Getenv("GOOGLE_CLIENT_ID"),
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
