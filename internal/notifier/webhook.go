package notifier

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/classtrack/classtrack/internal/constants"
)

var (
	userConfigDirFunc = os.UserConfigDir
	findProcessFunc   = ps.FindProcess
)

// WebhookPayload is the body posted to the tray app's localhost webhook.
type WebhookPayload struct {
	Text       string `json:"text"`
	DurationMs uint32 `json:"duration_ms"`
}

// TrayConfigDir returns the configuration directory used by the tray
// application, honoring a custom lockfile dir from its settings file.
func TrayConfigDir() (string, error) {
	configDir, err := userConfigDirFunc()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}

	trayConfigDir := filepath.Join(configDir, constants.TrayAppIdentifier)

	settingsPath := filepath.Join(trayConfigDir, "settings.json")
	if _, err := os.Stat(settingsPath); err == nil {
		data, err := os.ReadFile(settingsPath)
		if err == nil {
			var store struct {
				Settings struct {
					LockfileDir *string `json:"lockfile_dir"`
				} `json:"settings"`
			}
			if err := json.Unmarshal(data, &store); err == nil {
				if store.Settings.LockfileDir != nil && *store.Settings.LockfileDir != "" {
					return *store.Settings.LockfileDir, nil
				}
			}
		}
	}

	return trayConfigDir, nil
}

// findAndValidateTrayProcess reads the tray lockfile (port|pid|secret)
// and confirms the process it names is a live tray app.
func findAndValidateTrayProcess(lockfilePath string) (string, string, error) {
	content, err := os.ReadFile(lockfilePath)
	if err != nil {
		return "", "", errors.New("classtrack-tray is not running")
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 3 {
		return "", "", errors.New("lockfile is malformed")
	}

	port := parts[0]
	if strings.TrimSpace(port) == "" {
		return "", "", errors.New("port in lockfile is empty")
	}
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return "", "", errors.New("invalid port number in lockfile")
	}
	if portNum < 1 || portNum > 65535 {
		return "", "", fmt.Errorf("port number %d is outside valid range (1-65535)", portNum)
	}

	pid, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", "", errors.New("invalid process ID in lockfile")
	}
	secret := parts[2]
	if strings.TrimSpace(secret) == "" {
		return "", "", errors.New("secret in lockfile is empty")
	}

	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return "", "", errors.New("classtrack-tray process not running")
	}

	if !strings.HasPrefix(process.Executable(), "classtrack-tray") {
		return "", "", fmt.Errorf("process with PID %d is not classtrack-tray (is %s)", pid, process.Executable())
	}

	return port, secret, nil
}

func sendWebhook(port string, secret string, payload WebhookPayload) error {
	url := fmt.Sprintf("http://127.0.0.1:%s", port)

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Classtrack-Secret", secret)

	client := &http.Client{}
	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	body, _ := io.ReadAll(res.Body)
	return fmt.Errorf("notification failed with status %d: %s", res.StatusCode, string(body))
}
