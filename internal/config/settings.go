package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// APIKeyEnv overrides the stored assistant API key when set.
const APIKeyEnv = "FINPLAN_API_KEY"

// Settings holds the user's persistent preferences.
type Settings struct {
	General   GeneralSettings   `toml:"general"`
	Assistant AssistantSettings `toml:"assistant"`
}

// GeneralSettings holds display preferences.
type GeneralSettings struct {
	Locale        string `toml:"locale"`
	DefaultFormat string `toml:"default_format"`
}

// AssistantSettings holds the assistant credential.
type AssistantSettings struct {
	APIKey string `toml:"api_key,omitempty"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{
		General: GeneralSettings{
			Locale:        "en-US",
			DefaultFormat: "console",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "finplan")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "finplan")
}

// SettingsPath returns the full path to the settings file.
func SettingsPath() string {
	return filepath.Join(ConfigDir(), "settings.toml")
}

// LoadSettings reads the settings file, returning defaults if it doesn't exist.
func LoadSettings() (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(SettingsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("reading settings: %w", err)
	}

	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing settings: %w", err)
	}

	return s, nil
}

// SaveSettings writes the settings to disk. The file holds a credential, so it is created 0600.
func SaveSettings(s Settings) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(SettingsPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating settings file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(s); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}

// GetAPIKey returns the API key from env var or settings, in that order.
func GetAPIKey(s Settings) string {
	if key := os.Getenv(APIKeyEnv); key != "" {
		return key
	}
	return s.Assistant.APIKey
}

// SettingsExist returns true if a settings file exists on disk.
func SettingsExist() bool {
	_, err := os.Stat(SettingsPath())
	return err == nil
}

// MaskAPIKey shortens a key for display.
func MaskAPIKey(key string) string {
	if len(key) > 16 {
		return key[:8] + "..." + key[len(key)-4:]
	}
	if len(key) > 4 {
		return key[:4] + "..."
	}
	return "****"
}
