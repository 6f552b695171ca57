package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/classtrack/classtrack/internal/constants"
)

func newJSONStoreFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "classtrack.json")
	if err := os.WriteFile(path, []byte(`{"version": 1}`), 0600); err != nil {
		t.Fatalf("failed to write store file: %v", err)
	}
	return path
}

func TestCreate_JSONBackup(t *testing.T) {
	storePath := newJSONStoreFile(t)
	mgr := NewManager(storePath)

	backupPath, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if !strings.HasPrefix(filepath.Base(backupPath), constants.BackupFilePrefix) {
		t.Errorf("backup name missing prefix: %s", backupPath)
	}
	if !strings.HasSuffix(backupPath, ".json") {
		t.Errorf("backup should keep the store extension: %s", backupPath)
	}

	data, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("failed to read backup: %v", err)
	}
	if string(data) != `{"version": 1}` {
		t.Errorf("backup content mismatch: %s", data)
	}
}

func TestCreate_MissingStore(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := mgr.Create(); err == nil {
		t.Error("expected error for missing store file")
	}
}

func TestCreate_UniqueNamesWithinSameMinute(t *testing.T) {
	storePath := newJSONStoreFile(t)
	mgr := NewManager(storePath)

	first, err := mgr.Create()
	if err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	second, err := mgr.Create()
	if err != nil {
		t.Fatalf("second Create failed: %v", err)
	}
	if first == second {
		t.Errorf("expected distinct backup names, both were %s", first)
	}
}

func TestList_NewestFirst(t *testing.T) {
	storePath := newJSONStoreFile(t)
	mgr := NewManager(storePath)

	// Backup files with known timestamps, out of order on disk.
	if err := os.MkdirAll(mgr.BackupDir(), 0700); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{
		constants.BackupFilePrefix + "20260301-0900.json",
		constants.BackupFilePrefix + "20260310-1500.json",
		constants.BackupFilePrefix + "20260305-1200.json",
	} {
		if err := os.WriteFile(filepath.Join(mgr.BackupDir(), name), []byte("{}"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) != 3 {
		t.Fatalf("expected 3 backups, got %d", len(backups))
	}
	for i := 1; i < len(backups); i++ {
		if backups[i].Timestamp.After(backups[i-1].Timestamp) {
			t.Errorf("backups not sorted newest first at position %d", i)
		}
	}
}

func TestList_EmptyWithoutBackupDir(t *testing.T) {
	mgr := NewManager(newJSONStoreFile(t))
	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups, got %d", len(backups))
	}
}

func TestRestore_ReplacesStoreAndSnapshotsCurrent(t *testing.T) {
	storePath := newJSONStoreFile(t)
	mgr := NewManager(storePath)

	backupPath, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Mutate the store after the backup.
	if err := os.WriteFile(storePath, []byte(`{"version": 2}`), 0600); err != nil {
		t.Fatal(err)
	}

	if err := mgr.Restore(backupPath); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	data, err := os.ReadFile(storePath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"version": 1}` {
		t.Errorf("store not restored: %s", data)
	}

	// The pre-restore state was snapshotted too.
	backups, _ := mgr.List()
	if len(backups) < 2 {
		t.Errorf("expected a pre-restore snapshot, found %d backups", len(backups))
	}
}

func TestRestore_RejectsInvalidJSON(t *testing.T) {
	storePath := newJSONStoreFile(t)
	mgr := NewManager(storePath)

	badPath := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(badPath, []byte("not json at all"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := mgr.Restore(badPath); err == nil {
		t.Error("expected Restore to reject invalid JSON")
	}
	data, _ := os.ReadFile(storePath)
	if string(data) != `{"version": 1}` {
		t.Errorf("store should be untouched after failed restore: %s", data)
	}
}

func TestRotate_KeepsMaxBackups(t *testing.T) {
	storePath := newJSONStoreFile(t)
	mgr := NewManager(storePath)

	if err := os.MkdirAll(mgr.BackupDir(), 0700); err != nil {
		t.Fatal(err)
	}
	// More backups than the retention limit, with distinct timestamps.
	for day := 1; day <= constants.MaxBackups+3; day++ {
		name := fmt.Sprintf("%s202603%02d-0900.json", constants.BackupFilePrefix, day)
		if err := os.WriteFile(filepath.Join(mgr.BackupDir(), name), []byte("{}"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	if err := mgr.rotate(); err != nil {
		t.Fatalf("rotate failed: %v", err)
	}

	backups, _ := mgr.List()
	if len(backups) != constants.MaxBackups {
		t.Errorf("expected %d backups after rotation, got %d", constants.MaxBackups, len(backups))
	}
	// The oldest ones are gone.
	for _, b := range backups {
		if strings.Contains(b.Path, "20260301") || strings.Contains(b.Path, "20260302") || strings.Contains(b.Path, "20260303") {
			t.Errorf("expected oldest backups removed, found %s", b.Path)
		}
	}
}
