package vkbackupconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// GoogleDriveConfig defines the configuration for the Google Drive backend.
type GoogleDriveConfig struct {
	ClientId     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	RedirectURI  string `mapstructure:"redirect_uri"`

	// TokenPath is where the OAuth token obtained on first authorization is
	// cached for reuse. Defaults to token.json next to the config file.
	TokenPath string `mapstructure:"token_path"`
}

// VkbackupConfig defines the configuration for vkbackup.
type VkbackupConfig struct {
	// PhotoSizeTag selects the photo rendition to back up. VK size type
	// codes are single letters; a photo's variant matches when its type
	// contains this tag as a substring.
	PhotoSizeTag string `mapstructure:"photo_size_tag"`

	// BackupFolder is the remote folder name created on first use on each
	// backend.
	BackupFolder string `mapstructure:"backup_folder"`

	SecretsFile string `mapstructure:"secrets_file"`

	YandexManifest string `mapstructure:"yandex_manifest"`
	GoogleManifest string `mapstructure:"google_manifest"`

	GoogleDrive GoogleDriveConfig `mapstructure:"google_drive"`

	path string `mapstructure:"-"`
}

// ConfigPath returns the path the config was loaded from.
func (c *VkbackupConfig) ConfigPath() string {
	return c.path
}

func (c *GoogleDriveConfig) Validate() error {
	if c.ClientId == "" || c.ClientSecret == "" {
		return fmt.Errorf("missing google_drive client_id or client_secret")
	}
	if c.RedirectURI == "" {
		c.RedirectURI = "http://localhost:8080"
		fmt.Printf("Warning: google_drive.redirect_uri not set in config, using default: %s\n", c.RedirectURI)
	}
	return nil
}

func (c *VkbackupConfig) Validate() error {
	if c.PhotoSizeTag == "" {
		return fmt.Errorf("missing photo_size_tag (%s)", c.path)
	}
	if c.BackupFolder == "" {
		return fmt.Errorf("missing backup_folder (%s)", c.path)
	}
	if c.SecretsFile == "" {
		return fmt.Errorf("missing secrets_file (%s)", c.path)
	}
	if c.YandexManifest == "" || c.GoogleManifest == "" {
		return fmt.Errorf("missing manifest path (%s)", c.path)
	}
	return nil
}

// ValidateGoogle additionally checks the Google Drive OAuth client settings.
// Only the google backup command needs them, so they are not part of Validate.
func (c *VkbackupConfig) ValidateGoogle() error {
	if err := c.GoogleDrive.Validate(); err != nil {
		return fmt.Errorf("invalid google_drive config (%s): %w", c.path, err)
	}
	return nil
}

// DefaultConfigPath returns the default path for the vkbackup config file.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("unable to determine user config dir: %w", err)
	}
	return filepath.Join(dir, "vkbackup", "config.toml"), nil
}

// getConfigPath determines where to read the config file from.
func getConfigPath(configPathFlag string) (string, error) {
	// Prefer user-specific config file path if specified.
	if configPathFlag != "" {
		return configPathFlag, nil
	}

	// Fall back to user config dir.
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "vkbackup", "config.toml"), nil
	}
	return "", fmt.Errorf("unable to determine config file path")
}

// LoadConfig reads the config file.
func LoadConfig(configPathFlag string) (VkbackupConfig, error) {
	path, err := getConfigPath(configPathFlag)
	if err != nil {
		return VkbackupConfig{}, err
	}
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	v.SetDefault("photo_size_tag", "z")
	v.SetDefault("backup_folder", "backup_photos")
	v.SetDefault("secrets_file", "api.txt")
	v.SetDefault("yandex_manifest", "photo_info_ya_disk.json")
	v.SetDefault("google_manifest", "photo_info_g_drive.json")

	// Allow users to override config values with environment variables.
	// In particular, may be desired for the Google Drive API credentials.
	v.SetEnvPrefix("VKBACKUP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return VkbackupConfig{}, fmt.Errorf("error reading (%s): %w", path, err)
	}
	config := VkbackupConfig{path: path}
	if err := v.Unmarshal(&config); err != nil {
		return VkbackupConfig{}, fmt.Errorf("error unmarshaling (%s): %w", path, err)
	}
	if config.GoogleDrive.TokenPath == "" {
		config.GoogleDrive.TokenPath = filepath.Join(filepath.Dir(path), "token.json")
	}

	return config, nil
}
