package system

import (
	"os"
	"path/filepath"
	"testing"

	"quinzena/internal/cli"
	"quinzena/internal/storage"
)

func setupInitContext(t *testing.T) (*cli.Context, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quinzena.json")
	store := storage.NewJSONStore(path)
	return &cli.Context{Store: store}, path
}

func TestInitCmd_Success(t *testing.T) {
	ctx, path := setupInitContext(t)

	cmd := &InitCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("init command failed: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("storage file was not created at %s", path)
	}
}

func TestInitCmd_RefusesExisting(t *testing.T) {
	ctx, _ := setupInitContext(t)

	cmd := &InitCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("first init failed: %v", err)
	}

	if err := cmd.Run(ctx); err == nil {
		t.Error("second init without --force expected error, got nil")
	}
}

func TestInitCmd_Force(t *testing.T) {
	ctx, path := setupInitContext(t)

	cmd := &InitCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("first init failed: %v", err)
	}

	forced := &InitCmd{Force: true}
	if err := forced.Run(ctx); err != nil {
		t.Errorf("forced re-init failed: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("storage file missing after forced re-init: %s", path)
	}
}
