package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/classtrack/classtrack/internal/backup"
	"github.com/classtrack/classtrack/internal/constants"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backupPath, err := mgr.Create()
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	fmt.Printf("✓ Backup created: %s\n", filepath.Base(backupPath))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		fmt.Println("No backups found.")
		fmt.Printf("Backups are stored in: %s\n", mgr.BackupDir())
		return nil
	}

	fmt.Printf("Available backups (%d total, keeping most recent %d):\n\n", len(backups), constants.MaxBackups)
	for _, b := range backups {
		sizeKB := float64(b.Size) / 1024.0
		fmt.Printf("  %s  %s  (%.1f KB)\n", b.Timestamp.Format("2006-01-02 15:04:05"), filepath.Base(b.Path), sizeKB)
	}
	fmt.Printf("\nBackup directory: %s\n", mgr.BackupDir())
	return nil
}

type BackupRestoreCmd struct {
	BackupFile string `arg:"" help:"Path or filename of the backup to restore."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())

	backupPath := c.BackupFile
	if !filepath.IsAbs(backupPath) {
		possiblePath := filepath.Join(mgr.BackupDir(), c.BackupFile)
		if _, err := os.Stat(possiblePath); err == nil {
			backupPath = possiblePath
		}
	}
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return fmt.Errorf("backup file not found: %s", backupPath)
	}

	fmt.Println("⚠️  WARNING: This will replace your current data with the backup.")
	fmt.Println("A backup of your current data will be created before restoring.")
	fmt.Printf("\nRestore from: %s\n", filepath.Base(backupPath))
	fmt.Print("Continue? [y/N]: ")

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	if response != "y" && response != "yes" {
		fmt.Println("Restore cancelled.")
		return nil
	}

	if err := ctx.Store.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close store: %v\n", err)
	}

	if err := mgr.Restore(backupPath); err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}

	fmt.Println("✓ Data restored successfully!")
	fmt.Println("Run 'classtrack event sync' to rebuild reminders for the restored data.")
	return nil
}
