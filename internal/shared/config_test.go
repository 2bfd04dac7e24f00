package shared

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	t.Run("api defaults", func(t *testing.T) {
		if config.API.BaseURL == "" {
			t.Error("base URL should have a default")
		}
		if config.API.SearchRate <= 0 {
			t.Error("search rate should have a positive default")
		}
	})

	t.Run("database defaults", func(t *testing.T) {
		if config.Database.Path == "" {
			t.Error("database path should have a default")
		}
		if config.Database.MaxOpenConns <= 0 || config.Database.MaxIdleConns <= 0 {
			t.Errorf("connection limits should be positive, got %d/%d",
				config.Database.MaxOpenConns, config.Database.MaxIdleConns)
		}
	})

	t.Run("server defaults", func(t *testing.T) {
		if config.Server.Host == "" || config.Server.Port == 0 {
			t.Errorf("server defaults missing: %s:%d", config.Server.Host, config.Server.Port)
		}
	})
}

func TestCreateConfigFile(t *testing.T) {
	t.Run("creates from the embedded template", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")

		if err := CreateConfigFile(path); err != nil {
			t.Fatalf("CreateConfigFile failed: %v", err)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig failed: %v", err)
		}
		if config.API.BaseURL != DefaultConfig().API.BaseURL {
			t.Errorf("created config differs from defaults: %s", config.API.BaseURL)
		}
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := CreateConfigFile(path); err != nil {
			t.Fatalf("CreateConfigFile failed: %v", err)
		}

		if err := CreateConfigFile(path); err == nil {
			t.Error("expected an error when the file exists")
		}
	})
}

func TestSaveConfig(t *testing.T) {
	t.Run("round-trips through LoadConfig", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")

		config := DefaultConfig()
		config.API.BaseURL = "https://api.example.com/v1"
		config.Credentials.Kakao.ClientID = "client-123"

		if err := SaveConfig(path, config); err != nil {
			t.Fatalf("SaveConfig failed: %v", err)
		}

		loaded, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig failed: %v", err)
		}
		if loaded.API.BaseURL != "https://api.example.com/v1" {
			t.Errorf("base URL = %q", loaded.API.BaseURL)
		}
		if loaded.Credentials.Kakao.ClientID != "client-123" {
			t.Errorf("client id = %q", loaded.Credentials.Kakao.ClientID)
		}
	})

	t.Run("rejects nil config", func(t *testing.T) {
		if err := SaveConfig(filepath.Join(t.TempDir(), "config.toml"), nil); err == nil {
			t.Error("expected an error for nil config")
		}
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
			t.Error("expected an error for a missing file")
		}
	})
}
