package vkbackupconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ccfrost/vkbackup/vkbackupconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Snapshot(t *testing.T) {
	// Get the path to the test config file.
	configPath, err := filepath.Abs("testdata/config.toml")
	require.NoError(t, err)

	// Load the config.
	config, err := vkbackupconfig.LoadConfig(configPath)
	require.NoError(t, err)

	// Validate the config.
	require.NoError(t, config.Validate())
	require.NoError(t, config.ValidateGoogle())

	assert.Equal(t, "w", config.PhotoSizeTag)
	assert.Equal(t, "vk_backup", config.BackupFolder)
	assert.Equal(t, "/secrets/api.txt", config.SecretsFile)
	assert.Equal(t, "/out/ya.json", config.YandexManifest)
	assert.Equal(t, "/out/gd.json", config.GoogleManifest)
	assert.Equal(t, vkbackupconfig.GoogleDriveConfig{
		ClientId:     "test-client-id",
		ClientSecret: "test-client-secret",
		RedirectURI:  "http://localhost:8080/auth",
		TokenPath:    "/secrets/token.json",
	}, config.GoogleDrive)
	assert.Equal(t, configPath, config.ConfigPath())
}

func TestLoadConfig_Defaults(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	content := "[google_drive]\nclient_id = \"id\"\nclient_secret = \"secret\"\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	config, err := vkbackupconfig.LoadConfig(configPath)
	require.NoError(t, err)
	require.NoError(t, config.Validate())

	assert.Equal(t, "z", config.PhotoSizeTag)
	assert.Equal(t, "backup_photos", config.BackupFolder)
	assert.Equal(t, "api.txt", config.SecretsFile)
	assert.Equal(t, "photo_info_ya_disk.json", config.YandexManifest)
	assert.Equal(t, "photo_info_g_drive.json", config.GoogleManifest)
	assert.Equal(t, filepath.Join(dir, "token.json"), config.GoogleDrive.TokenPath)
}

func TestValidate_MissingSizeTag(t *testing.T) {
	config := vkbackupconfig.VkbackupConfig{
		BackupFolder:   "backup_photos",
		SecretsFile:    "api.txt",
		YandexManifest: "ya.json",
		GoogleManifest: "gd.json",
	}
	err := config.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "photo_size_tag")
}

func TestLoadSecrets(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "api.txt")
	require.NoError(t, os.WriteFile(path, []byte("tok\n123\nytok\n"), 0600))

	secrets, err := vkbackupconfig.LoadSecrets(path)
	require.NoError(t, err)
	assert.Equal(t, vkbackupconfig.Secrets{
		VkToken:     "tok",
		UserID:      "123",
		YandexToken: "ytok",
	}, secrets)
}

func TestLoadSecrets_TrimsWhitespace(t *testing.T) {
	// Trailing newlines and stray spaces must not survive into the values;
	// an untrimmed user id would leak into VK query parameters.
	dir := t.TempDir()
	path := filepath.Join(dir, "api.txt")
	require.NoError(t, os.WriteFile(path, []byte("  tok \r\n123 \nytok\t\n"), 0600))

	secrets, err := vkbackupconfig.LoadSecrets(path)
	require.NoError(t, err)
	assert.Equal(t, "tok", secrets.VkToken)
	assert.Equal(t, "123", secrets.UserID)
	assert.Equal(t, "ytok", secrets.YandexToken)
}

func TestLoadSecrets_TooFewLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "api.txt")
	require.NoError(t, os.WriteFile(path, []byte("tok\n123\n"), 0600))

	_, err := vkbackupconfig.LoadSecrets(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "three lines")
}
