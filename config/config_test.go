package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("MONGODB_URI", "")
	t.Setenv("MONGODB_DB", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("GOOGLE_CLIENT_ID", "")

	cfg := Load()

	if cfg.Port != "3000" {
		t.Errorf("Port: got %q want %q", cfg.Port, "3000")
	}
	if cfg.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("MongoURI: got %q want %q", cfg.MongoURI, "mongodb://localhost:27017")
	}
	if cfg.MongoDB != "notes-app" {
		t.Errorf("MongoDB: got %q want %q", cfg.MongoDB, "notes-app")
	}
	if cfg.JWTSecret != "your-secret-key" {
		t.Errorf("JWTSecret: got %q want %q", cfg.JWTSecret, "your-secret-key")
	}
	if cfg.GoogleClientID != "" {
		t.Errorf("GoogleClientID: got %q want empty", cfg.GoogleClientID)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("MONGODB_URI", "mongodb://mongo:27017")
	t.Setenv("MONGODB_DB", "notes-test")
	t.Setenv("JWT_SECRET", "supersecret")
	t.Setenv("GOOGLE_CLIENT_ID", "client-123")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port: got %q want %q", cfg.Port, "8080")
	}
	if cfg.MongoURI != "mongodb://mongo:27017" {
		t.Errorf("MongoURI: got %q want %q", cfg.MongoURI, "mongodb://mongo:27017")
	}
	if cfg.MongoDB != "notes-test" {
		t.Errorf("MongoDB: got %q want %q", cfg.MongoDB, "notes-test")
	}
	if cfg.JWTSecret != "supersecret" {
		t.Errorf("JWTSecret: got %q want %q", cfg.JWTSecret, "supersecret")
	}
	if cfg.GoogleClientID != "client-123" {
		t.Errorf("GoogleClientID: got %q want %q", cfg.GoogleClientID, "client-123")
	}
}
