package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ccfrost/vkbackup/vkbackupconfig"
)

// BackupYandex copies up to count photos from the owner's VK album to the
// backup folder on Yandex Disk, then writes a manifest of the uploads.
//
// Uploads are ingested provider-side from the photo URLs: the request is
// accepted for asynchronous processing and the fetch result is not inspected,
// so a manifest entry means the upload was initiated, not that it finished.
func BackupYandex(ctx context.Context, config vkbackupconfig.VkbackupConfig, ownerID string, photosClient PhotoLister, disk DiskClient, count int, albumID string) error {
	photos, err := photosClient.ListProfilePhotos(ctx, ownerID, count, albumID)
	if err != nil {
		return fmt.Errorf("failed to list photos: %w", err)
	}
	if len(photos) == 0 {
		logger.Info("No photos to back up", slog.String("album", albumID))
	}

	if err := disk.EnsureFolder(ctx, config.BackupFolder); err != nil {
		return fmt.Errorf("failed to ensure backup folder: %w", err)
	}

	freq := likeCountFrequency(photos)
	manifest := make([]ManifestEntry, 0, len(photos))

	bar := NewProgressBar(len(photos), "Uploading photos to Yandex Disk")
	for _, photo := range photos {
		name := photoFileName(photo, freq, SuffixNonUnique)
		if err := disk.UploadByURL(ctx, config.BackupFolder+"/"+name, photo.URL); err != nil {
			return fmt.Errorf("failed to upload %s: %w", name, err)
		}
		logger.Debug("Requested ingestion",
			slog.String("file", name),
			slog.String("url", photo.URL))
		manifest = append(manifest, ManifestEntry{FileName: name, Size: config.PhotoSizeTag})
		_ = bar.Add(1)
	}
	_ = bar.Finish() // Ignore error on finish

	if err := writeManifest(config.YandexManifest, manifest); err != nil {
		return err
	}
	logger.Info("Yandex Disk backup complete",
		slog.Int("photos", len(manifest)),
		slog.String("manifest", config.YandexManifest))
	return nil
}
