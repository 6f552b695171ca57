package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/classtrack/classtrack/internal/notifier"
	"github.com/classtrack/classtrack/internal/storage"
)

func setupTestContext(t *testing.T) (*Context, string) {
	t.Helper()
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "classtrack.json")

	ctx := &Context{
		Store:    storage.NewJSONStore(configPath),
		Registry: notifier.NewRegistry(tempDir),
	}
	return ctx, configPath
}

func TestInitCmd_Success(t *testing.T) {
	ctx, configPath := setupTestContext(t)

	cmd := &InitCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("init command failed: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Errorf("store file was not created at %s", configPath)
	}
}

func TestInitCmd_RefusesExistingStore(t *testing.T) {
	ctx, _ := setupTestContext(t)

	cmd := &InitCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("first init failed: %v", err)
	}
	if err := cmd.Run(ctx); err == nil {
		t.Error("second init should refuse to overwrite the existing store")
	}
}
