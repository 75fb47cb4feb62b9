package google

import (
	"context"
	"fmt"
	"net/url"
)

type DriveFile struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	MimeType     string `json:"mimeType"`
	WebViewLink  string `json:"webViewLink"`
	ModifiedTime string `json:"modifiedTime"`
}

func (c *Client) ListDriveFiles(ctx context.Context, accessToken, folderID string) ([]DriveFile, error) {
	query := url.Values{}
	query.Set("fields", "files(id,name,mimeType,webViewLink,modifiedTime)")
	query.Set("pageSize", "100")
	if folderID != "" {
		query.Set("q", fmt.Sprintf("'%s' in parents and trashed = false", folderID))
	} else {
		query.Set("q", "trashed = false")
	}

	result := struct {
		Files []DriveFile `json:"files"`
	}{}
	fullURL := c.DriveURL + "/files?" + query.Encode()
	if err := c.doJSON(ctx, "GET", fullURL, accessToken, nil, &result); err != nil {
		return nil, err
	}
	return result.Files, nil
}
