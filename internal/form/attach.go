package form

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/sensitive01/jobsstorm-admin-panel/internal/common"
)

// AttachFile stages the file at path into the named slot after checking it
// against the slot's size ceiling. Oversize files are rejected without
// touching the slot. A local preview is derived in the background; its
// arrival gates nothing.
func (f *Form) AttachFile(slot, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	a, ok := f.attachments[slot]
	if !ok {
		return common.ErrUnknownSlot
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if info.Size() > a.spec.MaxBytes {
		return fmt.Errorf("%w: %s is %d bytes, limit %d", common.ErrFileTooLarge, filepath.Base(path), info.Size(), a.spec.MaxBytes)
	}

	a.localPath = path
	// A freshly attached file supersedes any previously hosted asset.
	a.remoteURL = ""
	a.preview = nil

	f.previewWG.Add(1)
	go func() {
		defer f.previewWG.Done()
		p := &Preview{
			Name:  filepath.Base(path),
			Bytes: info.Size(),
			MIME:  mime.TypeByExtension(filepath.Ext(path)),
		}
		f.mu.Lock()
		if f.attachments[slot] == a && a.localPath == path {
			a.preview = p
		}
		f.mu.Unlock()
	}()
	return nil
}

// RemoveAttachment clears the slot entirely: local file, preview and any
// pre-existing hosted URL.
func (f *Form) RemoveAttachment(slot string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.attachments[slot]; ok {
		a.localPath = ""
		a.remoteURL = ""
		a.preview = nil
	}
}

// AttachmentPreview returns the slot's preview, or nil while it is still
// being derived or nothing is attached.
func (f *Form) AttachmentPreview(slot string) *Preview {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.attachments[slot]; ok && a.preview != nil {
		p := *a.preview
		return &p
	}
	return nil
}

// AttachmentURL returns the slot's hosted URL, empty until an upload or edit
// prefill provides one.
func (f *Form) AttachmentURL(slot string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.attachments[slot]; ok {
		return a.remoteURL
	}
	return ""
}

// waitPreviews blocks until pending preview derivations finish. Test helper.
func (f *Form) waitPreviews() {
	f.previewWG.Wait()
}
