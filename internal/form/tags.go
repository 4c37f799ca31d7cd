package form

// Tag-list fields follow a stage/commit micro-protocol: the raw input is
// staged as the user types, committed on Enter or the add button, and only
// committed values live in the list.

import (
	"strings"

	"github.com/sensitive01/jobsstorm-admin-panel/internal/common"
)

// StageTag records the not-yet-committed input for a tag field.
func (f *Form) StageTag(field, text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.staged[field] = text
}

// StagedTag returns the current staged input for a tag field.
func (f *Form) StagedTag(field string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.staged[field]
}

// CommitTag trims and appends the staged input to the field's list. Empty
// results and exact duplicates (case-sensitive) are rejected; either way the
// staged input clears.
func (f *Form) CommitTag(field string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	text := strings.TrimSpace(f.staged[field])
	f.staged[field] = ""

	if text == "" {
		return common.ErrEmptyTag
	}
	for _, existing := range f.tags[field] {
		if existing == text {
			return common.ErrDuplicateTag
		}
	}
	f.tags[field] = append(f.tags[field], text)
	return nil
}

// RemoveTag removes the first exact match from the field's list.
func (f *Form) RemoveTag(field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, existing := range f.tags[field] {
		if existing == value {
			f.tags[field] = append(f.tags[field][:i], f.tags[field][i+1:]...)
			return
		}
	}
}

// Tags returns a copy of the field's committed values in order.
func (f *Form) Tags(field string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.tags[field]...)
}
