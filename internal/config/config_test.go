package config

import (
	"os"
	"path/filepath"
	"testing"
)

// =============================================================================
// CONFIG TESTS
// =============================================================================

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Name != "OceanGuard" {
		t.Errorf("expected Name=OceanGuard, got %s", cfg.Name)
	}
	if cfg.Logging.DebugMode {
		t.Error("expected debug mode off by default")
	}
	if len(cfg.Social.ExampleFriends) != 2 {
		t.Fatalf("expected 2 example friends, got %d", len(cfg.Social.ExampleFriends))
	}
	if cfg.Social.ExampleFriends[0].Name != "Bob" || cfg.Social.ExampleFriends[0].Location != "La Jolla Beach" {
		t.Errorf("unexpected first friend: %+v", cfg.Social.ExampleFriends[0])
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	t.Setenv("OCEANGUARD_LOG_LEVEL", "")
	t.Setenv("OCEANGUARD_MUTUAL_FRIENDS", "")

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, DirName, "config.yaml")

	cfg := DefaultConfig()
	cfg.Social.MutualFriends = true
	cfg.Social.ExampleFriends = []FriendSeed{{Name: "Dana", Location: "Ocean Beach"}}
	cfg.UI.Theme = ThemeDark

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !loaded.Social.MutualFriends {
		t.Error("expected MutualFriends=true")
	}
	if len(loaded.Social.ExampleFriends) != 1 || loaded.Social.ExampleFriends[0].Name != "Dana" {
		t.Errorf("expected friends replaced by [Dana], got %+v", loaded.Social.ExampleFriends)
	}
	if loaded.UI.Theme != ThemeDark {
		t.Errorf("expected Theme=dark, got %s", loaded.UI.Theme)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Name != "OceanGuard" {
		t.Errorf("expected defaults, got Name=%s", cfg.Name)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("ui:\n  theme: light\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.UI.Theme != ThemeLight {
		t.Errorf("expected light theme, got %s", cfg.UI.Theme)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default level info, got %s", cfg.Logging.Level)
	}
	if len(cfg.Social.ExampleFriends) != 2 {
		t.Errorf("expected default friends kept, got %d", len(cfg.Social.ExampleFriends))
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("ui: [unterminated"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for invalid level")
	}

	cfg = DefaultConfig()
	cfg.UI.Theme = "neon"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for invalid theme")
	}

	cfg = DefaultConfig()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for invalid format")
	}

	cfg = DefaultConfig()
	cfg.Social.ExampleFriends = append(cfg.Social.ExampleFriends, FriendSeed{Name: "bob"})
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for duplicate friend")
	}

	cfg = DefaultConfig()
	cfg.Social.ExampleFriends = []FriendSeed{{Name: "  "}}
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for blank friend name")
	}
}

func TestLogsDir(t *testing.T) {
	cfg := DefaultConfig()
	if got, want := cfg.LogsDir("/ws"), filepath.Join("/ws", DirName, "logs"); got != want {
		t.Errorf("LogsDir=%q, want %q", got, want)
	}

	abs := filepath.Join(t.TempDir(), "elsewhere")
	cfg.Logging.Directory = abs
	if got := cfg.LogsDir("/ws"); got != abs {
		t.Errorf("LogsDir=%q, want %q", got, abs)
	}
}

func TestLoggingConfig_IsCategoryEnabled(t *testing.T) {
	lc := LoggingConfig{}
	if lc.IsCategoryEnabled("session") {
		t.Error("categories must be off without debug mode")
	}

	lc.DebugMode = true
	if !lc.IsCategoryEnabled("session") {
		t.Error("categories default on in debug mode")
	}

	lc.Categories = map[string]bool{"session": false}
	if lc.IsCategoryEnabled("session") {
		t.Error("explicitly disabled category should be off")
	}
	if !lc.IsCategoryEnabled("boot") {
		t.Error("unlisted category should default on")
	}
}

func TestFindWorkspaceRoot_PrefersConfigDir(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, DirName), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", DirName, err)
	}
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir nested: %v", err)
	}

	origWD, _ := os.Getwd()
	if err := os.Chdir(nested); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(origWD) })

	got, err := FindWorkspaceRoot()
	if err != nil {
		t.Fatalf("FindWorkspaceRoot: %v", err)
	}
	gotEval, _ := filepath.EvalSymlinks(got)
	rootEval, _ := filepath.EvalSymlinks(root)
	if gotEval != rootEval {
		t.Fatalf("FindWorkspaceRoot=%q, want %q", got, root)
	}
}
