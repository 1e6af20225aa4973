//go:generate go run github.com/golang/mock/mockgen -source=${GOFILE} -destination=zz_generated_local_mocks_test.go -package=commands PhotoLister,DiskClient,DriveFiles

package commands

import (
	"context"
	"io"

	"github.com/ccfrost/vkbackup/commands/vk"
)

// PhotoLister defines the VK photo listing surface the backup pipelines need.
type PhotoLister interface {
	ListProfilePhotos(ctx context.Context, ownerID string, count int, albumID string) ([]vk.Photo, error)
}

// DiskClient defines the Yandex Disk operations the backup pipeline needs.
type DiskClient interface {
	EnsureFolder(ctx context.Context, path string) error
	UploadByURL(ctx context.Context, path, sourceURL string) error
}

// DriveFiles defines the Google Drive operations the backup pipeline needs.
type DriveFiles interface {
	FindFolder(ctx context.Context, name string) (id string, found bool, err error)
	CreateFolder(ctx context.Context, name string) (id string, err error)
	CreateFile(ctx context.Context, name, parentID, mimeType string, content io.Reader) (id string, err error)
}
