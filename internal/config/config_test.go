package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	// getenv treats empty as unset, so blanking the vars exercises the
	// hard-coded defaults regardless of the host environment.
	for _, key := range []string{"PORT", "STORAGE_BACKEND", "USERS_BACKEND", "MONGO_URI"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "3000" {
		t.Fatalf("port = %q, want 3000", cfg.Port)
	}
	if cfg.StorageBackend != "file" {
		t.Fatalf("storage backend = %q, want file", cfg.StorageBackend)
	}
	if cfg.UsersBackend != "mongo" {
		t.Fatalf("users backend = %q, want mongo", cfg.UsersBackend)
	}
	if cfg.MongoURI != "mongodb://localhost:27017" {
		t.Fatalf("mongo uri = %q", cfg.MongoURI)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("STORAGE_BACKEND", "mongo")
	t.Setenv("DATA_FILE", "/tmp/dex.json")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("port = %q, want 8080", cfg.Port)
	}
	if cfg.StorageBackend != "mongo" {
		t.Fatalf("storage backend = %q, want mongo", cfg.StorageBackend)
	}
	if cfg.DataFile != "/tmp/dex.json" {
		t.Fatalf("data file = %q", cfg.DataFile)
	}
}
