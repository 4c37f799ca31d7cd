// Package upload sends image files to the external image host and hands back
// the stable URL the backend payloads reference. The host is opaque to the
// rest of the console: one call, one URL, any failure aborts the submit that
// needed it.
package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/sensitive01/jobsstorm-admin-panel/internal/common"
)

// Uploader is the collaborator interface the form controller depends on.
type Uploader interface {
	Upload(ctx context.Context, path string) (string, error)
}

// CloudUploader uploads to an unsigned Cloudinary-style endpoint:
// a multipart POST carrying the file, the upload preset and a dated folder,
// answered with the asset's secure URL.
type CloudUploader struct {
	endpoint string
	preset   string
	hc       *http.Client
	now      func() time.Time
}

const folderPrefix = "jobs_storm"

// NewCloudUploader builds an uploader for the given cloud account.
func NewCloudUploader(cloudName, preset string, timeout time.Duration) *CloudUploader {
	return &CloudUploader{
		endpoint: fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/raw/upload", cloudName),
		preset:   preset,
		hc:       &http.Client{Timeout: timeout},
		now:      time.Now,
	}
}

// NewCloudUploaderForEndpoint builds an uploader against an explicit URL;
// tests point it at an httptest server.
func NewCloudUploaderForEndpoint(endpoint, preset string) *CloudUploader {
	return &CloudUploader{endpoint: endpoint, preset: preset, hc: http.DefaultClient, now: time.Now}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
}

// Upload sends the file at path and returns the hosted URL.
func (u *CloudUploader) Upload(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	folder := fmt.Sprintf("%s/%s", folderPrefix, u.now().UTC().Format("2006-01-02"))
	_ = w.WriteField("upload_preset", u.preset)
	_ = w.WriteField("folder", folder)
	if err := w.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint, &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := u.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrUploadFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %v", common.ErrUploadFailed, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: status %d", common.ErrUploadFailed, resp.StatusCode)
	}

	var ur uploadResponse
	if err := json.Unmarshal(body, &ur); err != nil || ur.SecureURL == "" {
		return "", fmt.Errorf("%w: response missing secure_url", common.ErrUploadFailed)
	}
	return ur.SecureURL, nil
}
