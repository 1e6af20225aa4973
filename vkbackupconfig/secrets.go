package vkbackupconfig

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Secrets holds the three credentials read from the secrets file: the VK API
// token, the target VK user id, and the Yandex Disk OAuth token. One value per
// line, in that order. Values are opaque to the rest of the program.
type Secrets struct {
	VkToken     string
	UserID      string
	YandexToken string
}

// LoadSecrets reads the secrets file. Each value is trimmed of surrounding
// whitespace; a trailing newline on the user id would otherwise leak into VK
// query parameters.
func LoadSecrets(path string) (Secrets, error) {
	f, err := os.Open(path)
	if err != nil {
		return Secrets{}, fmt.Errorf("failed to open secrets file: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() && len(lines) < 3 {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return Secrets{}, fmt.Errorf("failed to read secrets file (%s): %w", path, err)
	}
	if len(lines) < 3 {
		return Secrets{}, fmt.Errorf("secrets file (%s) must contain three lines: vk token, user id, yandex disk token", path)
	}
	s := Secrets{
		VkToken:     lines[0],
		UserID:      lines[1],
		YandexToken: lines[2],
	}
	if s.VkToken == "" || s.UserID == "" || s.YandexToken == "" {
		return Secrets{}, fmt.Errorf("secrets file (%s) contains an empty value", path)
	}
	return s, nil
}
