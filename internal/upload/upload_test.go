package upload

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sensitive01/jobsstorm-admin-panel/internal/common"
)

func tmpFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestUpload_SendsMultipartAndReturnsURL(t *testing.T) {
	var gotPreset, gotFolder, gotFilename, gotContent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotPreset = r.FormValue("upload_preset")
		gotFolder = r.FormValue("folder")

		file, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		gotFilename = hdr.Filename
		data, err := io.ReadAll(file)
		require.NoError(t, err)
		gotContent = string(data)

		json.NewEncoder(w).Encode(map[string]string{"secure_url": "https://res.example.com/img/abc.png"})
	}))
	defer srv.Close()

	u := NewCloudUploaderForEndpoint(srv.URL, "jobs_storm")
	u.now = func() time.Time { return time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC) }

	url, err := u.Upload(context.Background(), tmpFile(t, "cover.png", "png-bytes"))
	require.NoError(t, err)

	assert.Equal(t, "https://res.example.com/img/abc.png", url)
	assert.Equal(t, "jobs_storm", gotPreset)
	assert.Equal(t, "jobs_storm/2026-03-14", gotFolder)
	assert.Equal(t, "cover.png", gotFilename)
	assert.Equal(t, "png-bytes", gotContent)
}

func TestUpload_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Invalid preset"}}`))
	}))
	defer srv.Close()

	u := NewCloudUploaderForEndpoint(srv.URL, "wrong")
	_, err := u.Upload(context.Background(), tmpFile(t, "x.png", "x"))

	assert.ErrorIs(t, err, common.ErrUploadFailed)
}

func TestUpload_MissingSecureURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"public_id":"abc"}`))
	}))
	defer srv.Close()

	u := NewCloudUploaderForEndpoint(srv.URL, "jobs_storm")
	_, err := u.Upload(context.Background(), tmpFile(t, "x.png", "x"))

	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUploadFailed)
	assert.True(t, strings.Contains(err.Error(), "secure_url"))
}

func TestUpload_MissingFile(t *testing.T) {
	u := NewCloudUploaderForEndpoint("http://127.0.0.1:0", "jobs_storm")
	_, err := u.Upload(context.Background(), filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
}
