package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"tmdbkit/internal/config"
)

func TestLoadDefaultConfigUsesEnvTMDBKey(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "test-key")
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Chdir(tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	want := filepath.Join(tempHome, ".config", "tmdbkit", "config.toml")
	if resolved != want {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, want)
	}
	if cfg.TMDB.APIKey != "test-key" {
		t.Fatalf("expected TMDB key from env, got %q", cfg.TMDB.APIKey)
	}
	if cfg.TMDB.BaseURL != config.Default().TMDB.BaseURL {
		t.Fatalf("unexpected TMDB base url: %q", cfg.TMDB.BaseURL)
	}
	if cfg.TMDB.Language != "en-US" {
		t.Fatalf("unexpected language: %q", cfg.TMDB.Language)
	}
	if cfg.TMDB.Debug {
		t.Fatal("expected debug disabled by default")
	}
	if cfg.Timeout().Seconds() != 10 {
		t.Fatalf("unexpected timeout: %v", cfg.Timeout())
	}
}

func TestLoadCustomPath(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "env-key")
	configPath := filepath.Join(t.TempDir(), "tmdbkit.toml")

	type payload struct {
		TMDB struct {
			APIKey         string `toml:"api_key"`
			BaseURL        string `toml:"base_url"`
			Language       string `toml:"language"`
			Region         string `toml:"region"`
			TimeoutSeconds int    `toml:"timeout_seconds"`
			Debug          bool   `toml:"debug"`
		} `toml:"tmdb"`
		Logging struct {
			Format string `toml:"format"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.TMDB.APIKey = "abc123"
	custom.TMDB.BaseURL = "https://example.com/tmdb"
	custom.TMDB.Language = "pt_br"
	custom.TMDB.Region = "gb"
	custom.TMDB.TimeoutSeconds = 30
	custom.TMDB.Debug = true
	custom.Logging.Format = "JSON"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.TMDB.APIKey != "abc123" {
		t.Fatalf("expected file key to win over env, got %q", cfg.TMDB.APIKey)
	}
	if cfg.TMDB.BaseURL != "https://example.com/tmdb/" {
		t.Fatalf("expected base url with trailing slash, got %q", cfg.TMDB.BaseURL)
	}
	if cfg.TMDB.Language != "pt-BR" {
		t.Fatalf("expected normalized language, got %q", cfg.TMDB.Language)
	}
	if cfg.TMDB.Region != "GB" {
		t.Fatalf("expected normalized region, got %q", cfg.TMDB.Region)
	}
	if cfg.TMDB.TimeoutSeconds != 30 || !cfg.TMDB.Debug {
		t.Fatalf("unexpected tmdb section: %+v", cfg.TMDB)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected lowercase log format, got %q", cfg.Logging.Format)
	}
}

func TestLoadRejectsInvalidLanguage(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "tmdbkit.toml")
	if err := os.WriteFile(configPath, []byte("[tmdb]\nlanguage = \"not a language\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected error for invalid language")
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), `api_key = ""`) {
		t.Fatalf("sample config should ship an empty TMDB key: %s", contents)
	}

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config should load: %v", err)
	}
	if cfg.TMDB.Language != "en-US" {
		t.Fatalf("unexpected sample language: %q", cfg.TMDB.Language)
	}
}

func TestSampleConfigDefersToEnvTMDBKey(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "env-key")
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.TMDB.APIKey != "env-key" {
		t.Fatalf("expected env key after init, got %q", cfg.TMDB.APIKey)
	}
}

func TestSetAPIKeyKeepsComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if err := config.SetAPIKey(path, "fresh-key"); err != nil {
		t.Fatalf("SetAPIKey failed: %v", err)
	}
	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}

	for _, line := range strings.Split(string(before), "\n") {
		if strings.HasPrefix(line, "#") && !strings.Contains(string(after), line) {
			t.Fatalf("comment %q lost after SetAPIKey:\n%s", line, after)
		}
	}
	if strings.Count(string(after), "api_key") != strings.Count(string(before), "api_key") {
		t.Fatalf("expected api_key rewritten in place:\n%s", after)
	}
}

func TestSetAPIKeyAddsMissingEntries(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"no tmdb table": "[logging]\nlevel = \"debug\"\n",
		"no api_key":    "[tmdb]\nlanguage = \"de-DE\"\n\n[logging]\nlevel = \"debug\"\n",
		"inline table":  "tmdb = { api_key = \"old\" }\n\n[logging]\nlevel = \"debug\"\n",
		"dotted key":    "tmdb.api_key = \"old\"\n\n[logging]\nlevel = \"debug\"\n",
	}
	for name, contents := range cases {
		path := filepath.Join(dir, strings.ReplaceAll(name, " ", "_")+".toml")
		if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
			t.Fatalf("%s: write: %v", name, err)
		}
		if err := config.SetAPIKey(path, "k"); err != nil {
			t.Fatalf("%s: SetAPIKey failed: %v", name, err)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			t.Fatalf("%s: Load returned error: %v", name, err)
		}
		if cfg.TMDB.APIKey != "k" || cfg.Logging.Level != "debug" {
			t.Fatalf("%s: unexpected config %+v", name, cfg)
		}
	}
}

func TestSetAPIKeyPreservesOtherSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	if err := config.SetAPIKey(path, "  fresh-key "); err != nil {
		t.Fatalf("SetAPIKey failed: %v", err)
	}

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.TMDB.APIKey != "fresh-key" {
		t.Fatalf("expected stored key, got %q", cfg.TMDB.APIKey)
	}
	if cfg.TMDB.TimeoutSeconds != 10 || cfg.Logging.Level != "info" {
		t.Fatalf("expected other settings preserved, got %+v", cfg)
	}
}

func TestSetAPIKeyCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "config.toml")
	if err := config.SetAPIKey(path, "k"); err != nil {
		t.Fatalf("SetAPIKey failed: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || cfg.TMDB.APIKey != "k" {
		t.Fatalf("expected new file with key, exists=%v key=%q", exists, cfg.TMDB.APIKey)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cfg := config.Default()
	cfg.TMDB.BaseURL = "ftp://example.com/"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for non-http base url")
	}

	cfg = config.Default()
	cfg.TMDB.TimeoutSeconds = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for non-positive timeout")
	}

	cfg = config.Default()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unsupported log format")
	}

	cfg = config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate without an api key: %v", err)
	}
}
