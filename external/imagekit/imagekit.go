package imagekit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"os"
	"time"
)

// Client talks to the ImageKit media API. Customization photos are uploaded
// by the storefront into pending/<token> folders; after checkout commits we
// move the whole folder under orders/<order_number>.
type Client struct {
	privateKey string
	client     *http.Client
	baseURL    string
}

func NewClient() (*Client, error) {
	key := os.Getenv("IMAGEKIT_PRIVATE_KEY")
	if key == "" {
		return nil, errors.New("IMAGEKIT_PRIVATE_KEY not set")
	}

	return &Client{
		privateKey: key,
		client:     &http.Client{Timeout: 10 * time.Second},
		baseURL:    "https://api.imagekit.io",
	}, nil
}

// NewClientWithBaseURL is used by tests to point at a fake server.
func NewClientWithBaseURL(privateKey, baseURL string) *Client {
	return &Client{
		privateKey: privateKey,
		client:     &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
	}
}

// Asset is one stored file.
type Asset struct {
	FileID   string `json:"fileId"`
	Name     string `json:"name"`
	FilePath string `json:"filePath"`
	URL      string `json:"url"`
}

// ListFolder returns the assets under a folder path.
func (c *Client) ListFolder(ctx context.Context, folderPath string) ([]Asset, error) {
	u := c.baseURL + "/v1/files?path=" + url.QueryEscape(folderPath)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.privateKey, "")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("imagekit list failed: " + resp.Status)
	}

	var out []Asset
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

type moveFolderRequest struct {
	SourceFolderPath string `json:"sourceFolderPath"`
	DestinationPath  string `json:"destinationPath"`
}

// MoveFolder renames a folder subtree, e.g. pending/ab12cd -> orders/USN123.
func (c *Client) MoveFolder(ctx context.Context, sourceFolderPath, destinationPath string) error {
	b, _ := json.Marshal(moveFolderRequest{
		SourceFolderPath: sourceFolderPath,
		DestinationPath:  destinationPath,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/bulkJobs/moveFolder", bytes.NewBuffer(b))
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.privateKey, "")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		return errors.New("imagekit move failed: " + buf.String())
	}

	return nil
}
