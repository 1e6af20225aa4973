package gdrive

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const folderMimeType = "application/vnd.google-apps.folder"

// Client handles interaction with the Google Drive API.
type Client struct {
	svc *drive.Service
}

// NewClient creates a Drive client on top of an authorized HTTP client.
func NewClient(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := drive.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// FindFolder looks up a non-trashed folder by name directly under the Drive
// root. Returns found=false when no such folder exists.
func (c *Client) FindFolder(ctx context.Context, name string) (id string, found bool, err error) {
	query := fmt.Sprintf("name='%s' and mimeType='%s' and 'root' in parents and trashed=false", name, folderMimeType)
	list, err := c.svc.Files.List().Q(query).Fields("files(id)").Context(ctx).Do()
	if err != nil {
		return "", false, fmt.Errorf("failed to query for folder %q: %w", name, err)
	}
	if len(list.Files) == 0 {
		return "", false, nil
	}
	return list.Files[0].Id, true, nil
}

// CreateFolder creates a folder at the Drive root and returns its id.
func (c *Client) CreateFolder(ctx context.Context, name string) (string, error) {
	folder, err := c.svc.Files.Create(&drive.File{
		Name:     name,
		MimeType: folderMimeType,
	}).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create folder %q: %w", name, err)
	}
	return folder.Id, nil
}

// CreateFile uploads content as a new file named name under the parent
// folder, with an explicit content type.
func (c *Client) CreateFile(ctx context.Context, name, parentID, mimeType string, content io.Reader) (string, error) {
	file, err := c.svc.Files.Create(&drive.File{
		Name:     name,
		Parents:  []string{parentID},
		MimeType: mimeType,
	}).Media(content, googleapi.ContentType(mimeType)).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to upload file %q: %w", name, err)
	}
	return file.Id, nil
}
