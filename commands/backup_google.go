package commands

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/ccfrost/vkbackup/vkbackupconfig"
	"golang.org/x/time/rate"
)

const jpegMimeType = "image/jpeg"

// BackupGoogle copies up to count photos from the owner's VK album to the
// backup folder on Google Drive, then writes a manifest of the uploads. Each
// photo's bytes are downloaded locally and re-uploaded as a new Drive file.
//
// httpClient fetches the photo bytes; pass nil for a default with a timeout.
func BackupGoogle(ctx context.Context, config vkbackupconfig.VkbackupConfig, ownerID string, photosClient PhotoLister, driveClient DriveFiles, httpClient *http.Client, count int, albumID string) error {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	photos, err := photosClient.ListProfilePhotos(ctx, ownerID, count, albumID)
	if err != nil {
		return fmt.Errorf("failed to list photos: %w", err)
	}
	if len(photos) == 0 {
		logger.Info("No photos to back up", slog.String("album", albumID))
	}

	// Keep well under the Drive API per-user quota.
	limiter := rate.NewLimiter(rate.Every(time.Second/5), 10)

	folderID, err := ensureDriveFolder(ctx, driveClient, config.BackupFolder, limiter)
	if err != nil {
		return err
	}

	freq := likeCountFrequency(photos)
	manifest := make([]ManifestEntry, 0, len(photos))

	bar := NewProgressBar(len(photos), "Uploading photos to Google Drive")
	for _, photo := range photos {
		name := photoFileName(photo, freq, SuffixRepeated)

		data, err := downloadPhoto(ctx, httpClient, photo.URL)
		if err != nil {
			return fmt.Errorf("failed to download %s: %w", name, err)
		}

		if err := limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter error before uploading %s: %w", name, err)
		}
		fileID, err := driveClient.CreateFile(ctx, name, folderID, jpegMimeType, bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("failed to upload %s: %w", name, err)
		}
		logger.Debug("Uploaded photo",
			slog.String("file", name),
			slog.String("drive_id", fileID),
			slog.Int("bytes", len(data)))

		manifest = append(manifest, ManifestEntry{FileName: name, Size: config.PhotoSizeTag})
		_ = bar.Add(1)
	}
	_ = bar.Finish() // Ignore error on finish

	if err := writeManifest(config.GoogleManifest, manifest); err != nil {
		return err
	}
	logger.Info("Google Drive backup complete",
		slog.Int("photos", len(manifest)),
		slog.String("manifest", config.GoogleManifest))
	return nil
}

// ensureDriveFolder locates the backup folder at the Drive root, creating it
// when no match is found. Absence is normal control flow.
func ensureDriveFolder(ctx context.Context, driveClient DriveFiles, name string, limiter *rate.Limiter) (string, error) {
	if err := limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter error before folder lookup: %w", err)
	}
	folderID, found, err := driveClient.FindFolder(ctx, name)
	if err != nil {
		return "", fmt.Errorf("failed to locate backup folder: %w", err)
	}
	if found {
		logger.Debug("Found existing backup folder", slog.String("folder_id", folderID))
		return folderID, nil
	}

	if err := limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter error before folder create: %w", err)
	}
	folderID, err = driveClient.CreateFolder(ctx, name)
	if err != nil {
		return "", fmt.Errorf("failed to create backup folder: %w", err)
	}
	logger.Debug("Created backup folder", slog.String("folder_id", folderID))
	return folderID, nil
}

// downloadPhoto fetches a photo's raw bytes from its source URL.
func downloadPhoto(ctx context.Context, httpClient *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create download request: %w", err)
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("photo download failed with status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read photo bytes: %w", err)
	}
	return data, nil
}
