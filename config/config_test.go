package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/huawei-od-man/basic-log/basiclog"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "log.yaml", "level: WARN\n")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Level != "WARN" {
		t.Fatalf("Level = %q, want %q", s.Level, "WARN")
	}
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "log.json", `{"level": "error"}`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Level != "error" {
		t.Fatalf("Level = %q, want %q", s.Level, "error")
	}
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := writeFile(t, "log.toml", "level = \"INFO\"\n")

	if _, err := Load(path); err == nil {
		t.Fatalf("Load should reject unsupported formats")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("Load should fail for a missing file")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeFile(t, "log.yaml", "level: [unclosed\n")

	if _, err := Load(path); err == nil {
		t.Fatalf("Load should fail for malformed YAML")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvLevel, "ERROR")

	if s := FromEnv(); s.Level != "ERROR" {
		t.Fatalf("Level = %q, want %q", s.Level, "ERROR")
	}
}

func TestFromEnv_Default(t *testing.T) {
	t.Setenv(EnvLevel, "")
	os.Unsetenv(EnvLevel)

	if s := FromEnv(); s.Level != "DEBUG" {
		t.Fatalf("Level = %q, want default %q", s.Level, "DEBUG")
	}
}

func TestApply_SetsThreshold(t *testing.T) {
	defer basiclog.SetLevel(basiclog.DEBUG)

	if err := (Settings{Level: "warn"}).Apply(); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if got := basiclog.CurrentLevel(); got != basiclog.WARN {
		t.Fatalf("CurrentLevel() = %v, want WARN", got)
	}
}

func TestApply_EmptyLeavesThreshold(t *testing.T) {
	defer basiclog.SetLevel(basiclog.DEBUG)

	basiclog.SetLevel(basiclog.ERROR)
	if err := (Settings{}).Apply(); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if got := basiclog.CurrentLevel(); got != basiclog.ERROR {
		t.Fatalf("CurrentLevel() = %v, empty settings must not change it", got)
	}
}

func TestApply_UnknownLevel(t *testing.T) {
	if err := (Settings{Level: "verbose"}).Apply(); err == nil {
		t.Fatalf("Apply should reject unknown level names")
	}
}
