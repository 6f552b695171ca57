package backup

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/classtrack/classtrack/internal/constants"
)

// Info contains information about a backup file
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager handles backups of the store file. It works for both storage
// backends: SQLite files are copied via VACUUM INTO, JSON files by plain
// copy; the backup keeps the source file's extension.
type Manager struct {
	storePath string
	backupDir string
}

// NewManager creates a backup manager for the given store file.
func NewManager(storePath string) *Manager {
	configDir := filepath.Dir(storePath)
	return &Manager{
		storePath: storePath,
		backupDir: filepath.Join(configDir, constants.BackupDirName),
	}
}

// BackupDir returns the backup directory path.
func (m *Manager) BackupDir() string {
	return m.backupDir
}

func (m *Manager) suffix() string {
	ext := filepath.Ext(m.storePath)
	if ext == "" {
		ext = ".json"
	}
	return ext
}

func (m *Manager) isSQLite() bool {
	switch m.suffix() {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// Create creates a new backup of the store file.
func (m *Manager) Create() (string, error) {
	return m.create(false)
}

func (m *Manager) create(skipRotation bool) (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	if _, err := os.Stat(m.storePath); os.IsNotExist(err) {
		return "", fmt.Errorf("store does not exist: %s", m.storePath)
	}

	// Minute-precision name first, widening until unique.
	timestamp := time.Now().Format("20060102-1504")
	backupPath := filepath.Join(m.backupDir, constants.BackupFilePrefix+timestamp+m.suffix())

	if _, err := os.Stat(backupPath); err == nil {
		timestamp = time.Now().Format("20060102-150405")
		backupPath = filepath.Join(m.backupDir, constants.BackupFilePrefix+timestamp+m.suffix())

		counter := 1
		for {
			if _, err := os.Stat(backupPath); os.IsNotExist(err) {
				break
			}
			backupPath = filepath.Join(m.backupDir, fmt.Sprintf("%s%s-%d%s", constants.BackupFilePrefix, timestamp, counter, m.suffix()))
			counter++
			if counter > 100 {
				return "", fmt.Errorf("failed to generate unique backup filename")
			}
		}
	}

	if m.isSQLite() {
		if err := m.backupSQLite(backupPath); err != nil {
			return "", fmt.Errorf("failed to backup store: %w", err)
		}
	} else {
		if err := copyFile(m.storePath, backupPath); err != nil {
			return "", fmt.Errorf("failed to backup store: %w", err)
		}
	}

	if !skipRotation {
		if err := m.rotate(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to rotate old backups: %v\n", err)
		}
	}

	return backupPath, nil
}

// backupSQLite uses VACUUM INTO for a consistent copy, falling back to a
// plain file copy when the SQLite version doesn't support it.
func (m *Manager) backupSQLite(destPath string) error {
	srcDB, err := sql.Open("sqlite", m.storePath+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open source database: %w", err)
	}
	defer srcDB.Close()

	var count int
	if err := srcDB.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count); err != nil {
		return fmt.Errorf("source database appears to be corrupted: %w", err)
	}

	if _, err := srcDB.Exec("VACUUM INTO ?", destPath); err != nil {
		srcDB.Close()
		return copyFile(m.storePath, destPath)
	}

	return nil
}

// List returns all available backups, newest first.
func (m *Manager) List() ([]Info, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []Info{}, nil
	}

	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []Info
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, m.suffix()) {
			continue
		}

		timestampStr := strings.TrimPrefix(name, constants.BackupFilePrefix)
		timestampStr = strings.TrimSuffix(timestampStr, m.suffix())

		// Strip a trailing uniqueness counter if present.
		parts := strings.Split(timestampStr, "-")
		if len(parts) > 2 {
			lastPart := parts[len(parts)-1]
			if len(lastPart) != 4 && len(lastPart) != 6 && isDigits(lastPart) {
				timestampStr = strings.Join(parts[:len(parts)-1], "-")
			}
		}

		timestamp, err := time.Parse("20060102-1504", timestampStr)
		if err != nil {
			timestamp, err = time.Parse("20060102-150405", timestampStr)
			if err != nil {
				continue
			}
		}

		path := filepath.Join(m.backupDir, name)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}

		backups = append(backups, Info{
			Path:      path,
			Timestamp: timestamp,
			Size:      info.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})

	return backups, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func (m *Manager) rotate() error {
	backups, err := m.List()
	if err != nil {
		return err
	}

	if len(backups) <= constants.MaxBackups {
		return nil
	}

	for i := constants.MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// Restore replaces the store file with the given backup, snapshotting the
// current store first.
func (m *Manager) Restore(backupPath string) error {
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return fmt.Errorf("backup file does not exist: %s", backupPath)
	}

	if err := m.verify(backupPath); err != nil {
		return fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}

	if _, err := os.Stat(m.storePath); err == nil {
		currentBackup, err := m.create(true)
		if err != nil {
			return fmt.Errorf("failed to backup current store before restore: %w", err)
		}
		fmt.Printf("Created backup of current store: %s\n", filepath.Base(currentBackup))
	}

	// Copy to a temp file and rename so the restore is atomic.
	tempPath := m.storePath + ".restore.tmp"
	if err := copyFile(backupPath, tempPath); err != nil {
		return fmt.Errorf("failed to copy backup file: %w", err)
	}

	if err := os.Rename(tempPath, m.storePath); err != nil {
		if removeErr := os.Remove(tempPath); removeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to remove temporary file %s: %v\n", tempPath, removeErr)
		}
		return fmt.Errorf("failed to restore store: %w", err)
	}

	return nil
}

func (m *Manager) verify(path string) error {
	if m.isSQLite() {
		db, err := sql.Open("sqlite", path)
		if err != nil {
			return err
		}
		defer db.Close()

		var count int
		return db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if !json.Valid(data) {
		return fmt.Errorf("not valid JSON")
	}
	return nil
}

func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := destFile.ReadFrom(sourceFile); err != nil {
		return err
	}

	return destFile.Sync()
}
