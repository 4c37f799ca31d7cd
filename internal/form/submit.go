package form

import (
	"context"
	"fmt"

	"github.com/sensitive01/jobsstorm-admin-panel/internal/common"
	"github.com/sensitive01/jobsstorm-admin-panel/internal/gateway"
	"github.com/sensitive01/jobsstorm-admin-panel/internal/toast"
)

// Step returns the index of the current step.
func (f *Form) Step() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

// StepName returns the current step's name.
func (f *Form) StepName() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cfg.Schema.Steps[f.step].Name
}

// validateStepLocked checks one step's required fields in declaration order
// and returns the first violation, or nil.
func (f *Form) validateStepLocked(idx int) *ValidationError {
	for _, name := range f.cfg.Schema.Steps[idx].Required {
		if err := f.validate.Var(f.fields[name], "required"); err != nil {
			return &ValidationError{Field: name, Rule: "required"}
		}
	}
	return nil
}

// validateRulesLocked applies format rules to non-empty scalar values.
func (f *Form) validateRulesLocked() *ValidationError {
	for name, rule := range f.cfg.Schema.Rules {
		val := f.fields[name]
		if val == "" {
			continue
		}
		if err := f.validate.Var(val, rule); err != nil {
			return &ValidationError{Field: name, Rule: rule}
		}
	}
	return nil
}

// Advance validates the current step and, when it passes, moves to the next
// one. The returned *ValidationError names the first missing field; no
// network traffic happens either way.
func (f *Form) Advance() *ValidationError {
	f.mu.Lock()
	defer f.mu.Unlock()

	if verr := f.validateStepLocked(f.step); verr != nil {
		return verr
	}
	if f.step < len(f.cfg.Schema.Steps)-1 {
		f.step++
	}
	return nil
}

// Back returns to the previous step without validating anything.
func (f *Form) Back() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step > 0 {
		f.step--
	}
}

// ValidateAll re-checks every step plus format rules, as final submit does.
func (f *Form) ValidateAll() *ValidationError {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.validateAllLocked()
}

func (f *Form) validateAllLocked() *ValidationError {
	for idx := range f.cfg.Schema.Steps {
		if verr := f.validateStepLocked(idx); verr != nil {
			return verr
		}
	}
	if verr := f.validateRulesLocked(); verr != nil {
		return verr
	}
	for _, spec := range f.cfg.Schema.Slots {
		if !spec.RequiredOnCreate || f.existingID != "" {
			continue
		}
		a := f.attachments[spec.Name]
		if a.localPath == "" && a.remoteURL == "" {
			return &ValidationError{Field: spec.Name, Rule: "required"}
		}
	}
	return nil
}

// Submit runs the two-phase submission.
//
// Phase 1 uploads every slot holding a new local file and swaps the slot's
// value for the returned URL; slots carrying only a pre-existing hosted URL
// pass through untouched. An upload failure aborts before any mutation call.
// Phase 2 assembles the payload and creates or updates the record.
//
// Validation failures return a *ValidationError and touch nothing. Network
// failures show a failure toast and keep the draft intact for retry; only a
// confirmed success makes the form terminal. The submitting flag clears on
// every exit path; a stuck flag would permanently disable the submit control.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return common.ErrSubmitInFlight
	}
	f.submitting = true
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}()

	f.mu.Lock()
	if verr := f.validateAllLocked(); verr != nil {
		f.mu.Unlock()
		return verr
	}

	type pendingUpload struct {
		slot string
		path string
	}
	var uploads []pendingUpload
	resolved := make(map[string]string, len(f.attachments))
	for _, spec := range f.cfg.Schema.Slots {
		a := f.attachments[spec.Name]
		if a.localPath != "" {
			uploads = append(uploads, pendingUpload{slot: spec.Name, path: a.localPath})
		} else {
			resolved[spec.Name] = a.remoteURL
		}
	}
	f.mu.Unlock()

	for _, up := range uploads {
		url, err := f.cfg.Uploader.Upload(ctx, up.path)
		if err != nil {
			f.cfg.Log.Warn(ctx, "attachment upload failed", "slot", up.slot, "err", err)
			f.cfg.Toasts.Show(f.cfg.Failure, toast.Error)
			return fmt.Errorf("uploading %s: %w", up.slot, err)
		}
		resolved[up.slot] = url
	}

	f.mu.Lock()
	payload := make(map[string]any, len(f.fields)+len(f.tags)+len(resolved))
	for name, val := range f.fields {
		payload[name] = val
	}
	for name, vals := range f.tags {
		payload[name] = vals
	}
	for slot, url := range resolved {
		payload[slot] = url
	}
	existingID := f.existingID
	f.mu.Unlock()

	var res gateway.Result
	if existingID != "" {
		res = f.cfg.Update(ctx, existingID, payload)
	} else {
		res = f.cfg.Create(ctx, payload)
	}

	if res.Err != nil || !res.OK {
		f.cfg.Log.Warn(ctx, "submit rejected", "id", existingID, "result", res.String())
		f.cfg.Toasts.Show(f.cfg.Failure, toast.Error)
		return nil
	}

	f.mu.Lock()
	f.done = true
	for slot, url := range resolved {
		if a, ok := f.attachments[slot]; ok {
			a.remoteURL = url
			a.localPath = ""
		}
	}
	f.mu.Unlock()

	if existingID != "" {
		f.cfg.Toasts.Show(f.cfg.SuccessUpdate, toast.Success)
	} else {
		f.cfg.Toasts.Show(f.cfg.SuccessCreate, toast.Success)
	}
	return nil
}

// Reset discards edits: edit mode reloads from the source of truth, create
// mode clears back to defaults.
func (f *Form) Reset(ctx context.Context) error {
	f.mu.Lock()
	id := f.existingID
	f.mu.Unlock()
	return f.Init(ctx, id)
}
