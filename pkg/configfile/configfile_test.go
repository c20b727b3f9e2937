package configfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, Name)
	if err := os.WriteFile(path, []byte("log-level: debug\n"), 0o600); err != nil {
		t.Fatalf("failed to create config file: %v", err)
	}
	return path
}

func TestFind_ExplicitPath(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := writeConfig(t, tmpDir)

	found, err := Find(tmpDir, configPath)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if found != configPath {
		t.Errorf("expected %q, got %q", configPath, found)
	}

	_, err = Find(tmpDir, filepath.Join(tmpDir, "nonexistent.yaml"))
	if err == nil {
		t.Error("expected error for non-existent file")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("explicit missing path should not be reported as ErrNotFound")
	}
}

func TestFind_TraverseUp(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", t.TempDir())

	subdir := filepath.Join(tmpDir, "a", "b")
	if err := os.MkdirAll(subdir, 0o700); err != nil {
		t.Fatalf("failed to create directories: %v", err)
	}
	configPath := writeConfig(t, tmpDir)

	found, err := Find(subdir, "")
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if found != configPath {
		t.Errorf("expected %q, got %q", configPath, found)
	}
}

func TestFind_StopAtGit(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", t.TempDir())

	projectDir := filepath.Join(tmpDir, "project")
	if err := os.MkdirAll(filepath.Join(projectDir, ".git"), 0o700); err != nil {
		t.Fatalf("failed to create directories: %v", err)
	}
	writeConfig(t, tmpDir)

	_, err := Find(projectDir, "")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestFind_StopAtHome(t *testing.T) {
	root := t.TempDir()
	home := filepath.Join(root, "home")
	work := filepath.Join(home, "work")
	if err := os.MkdirAll(work, 0o700); err != nil {
		t.Fatalf("failed to create directories: %v", err)
	}
	t.Setenv("HOME", home)
	writeConfig(t, root)

	_, err := Find(work, "")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestFind_IgnoresDirectoryWithConfigName(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	if err := os.Mkdir(filepath.Join(tmpDir, Name), 0o700); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}

	_, err := Find(tmpDir, "")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
