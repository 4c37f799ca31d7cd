// Package form implements the create-or-edit form controller shared by every
// entity form: scalar field state, staged tag-list fields, size-checked
// attachments with deferred uploads, step-gated validation and a two-phase
// submit (upload assets, then create or update the record).
package form

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/sensitive01/jobsstorm-admin-panel/internal/gateway"
	"github.com/sensitive01/jobsstorm-admin-panel/internal/logging"
	"github.com/sensitive01/jobsstorm-admin-panel/internal/toast"
	"github.com/sensitive01/jobsstorm-admin-panel/internal/upload"
)

// ValidationError names the first field that failed validation. It never
// reaches the network.
type ValidationError struct {
	Field string
	Rule  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q failed %q", e.Field, e.Rule)
}

// SlotSpec describes one attachment slot. Each slot carries its own size
// ceiling; a blog cover and an author portrait do not share a limit.
type SlotSpec struct {
	Name             string
	MaxBytes         int64
	RequiredOnCreate bool
}

// StepSpec is one step of a multi-step form: its name and the scalar fields
// that must be non-empty before the next step is reachable.
type StepSpec struct {
	Name     string
	Required []string
}

// Schema declares a form's shape.
type Schema struct {
	Steps     []StepSpec
	TagFields []string
	Slots     []SlotSpec

	// Rules holds extra validator tags per scalar field ("email", "url",
	// "numeric"). Checked at submit for non-empty values only;
	// required-ness is the step's business.
	Rules map[string]string
}

// Draft is the decoded state a screen extracts from an existing record when
// the form opens in edit mode.
type Draft struct {
	Fields   map[string]string
	Tags     map[string][]string
	SlotURLs map[string]string
}

// Config wires one Form instance.
type Config struct {
	Schema   Schema
	Uploader upload.Uploader

	// Load fetches the existing record in edit mode.
	Load func(ctx context.Context, id string) gateway.Result
	// Decode turns a loaded record into a Draft. Tag values that are not
	// arrays on the wire must coerce to empty slices here.
	Decode func(data json.RawMessage) (Draft, error)

	Create func(ctx context.Context, payload map[string]any) gateway.Result
	Update func(ctx context.Context, id string, payload map[string]any) gateway.Result

	SuccessCreate string
	SuccessUpdate string
	Failure       string

	Defaults map[string]string

	Toasts *toast.Manager
	Log    logging.Logger
}

// Preview is the locally derived description of a pending attachment. Its
// arrival gates nothing.
type Preview struct {
	Name  string
	Bytes int64
	MIME  string
}

type attachment struct {
	spec      SlotSpec
	localPath string
	remoteURL string
	preview   *Preview
}

// Form owns one draft for its lifetime: created fresh per form-open,
// discarded on submit success or cancel, never shared across screens.
type Form struct {
	cfg      Config
	validate *validator.Validate

	mu          sync.Mutex
	existingID  string
	fields      map[string]string
	tags        map[string][]string
	staged      map[string]string
	attachments map[string]*attachment
	step        int
	submitting  bool
	done        bool
	previewWG   sync.WaitGroup
}

// New builds an empty Form; call Init before use.
func New(cfg Config) *Form {
	return &Form{
		cfg:      cfg,
		validate: validator.New(),
	}
}

// Init prepares the draft. With an existingID the record is fetched and
// pre-populated and the form is in edit mode; otherwise the draft starts
// from defaults in create mode.
func (f *Form) Init(ctx context.Context, existingID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.existingID = existingID
	f.step = 0
	f.done = false
	f.resetToDefaultsLocked()

	if existingID == "" {
		return nil
	}

	res := f.cfg.Load(ctx, existingID)
	if res.Err != nil || !res.OK {
		f.cfg.Log.Warn(ctx, "loading record for edit failed", "id", existingID, "result", res.String())
		return fmt.Errorf("loading record %s: %s", existingID, res.String())
	}
	draft, err := f.cfg.Decode(res.Data)
	if err != nil {
		return fmt.Errorf("decoding record %s: %w", existingID, err)
	}
	for name, val := range draft.Fields {
		f.fields[name] = val
	}
	for _, name := range f.cfg.Schema.TagFields {
		vals := draft.Tags[name]
		if vals == nil {
			vals = []string{}
		}
		f.tags[name] = vals
	}
	for slot, url := range draft.SlotURLs {
		if a, ok := f.attachments[slot]; ok {
			a.remoteURL = url
		}
	}
	return nil
}

func (f *Form) resetToDefaultsLocked() {
	f.fields = make(map[string]string)
	for name, val := range f.cfg.Defaults {
		f.fields[name] = val
	}
	f.tags = make(map[string][]string, len(f.cfg.Schema.TagFields))
	for _, name := range f.cfg.Schema.TagFields {
		f.tags[name] = []string{}
	}
	f.staged = make(map[string]string)
	f.attachments = make(map[string]*attachment, len(f.cfg.Schema.Slots))
	for _, spec := range f.cfg.Schema.Slots {
		f.attachments[spec.Name] = &attachment{spec: spec}
	}
}

// EditMode reports whether the form updates an existing record.
func (f *Form) EditMode() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.existingID != ""
}

// Done reports whether a submit succeeded; a done form is terminal.
func (f *Form) Done() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.done
}

// SetField sets a scalar field. No validation happens here; validation is
// deferred to step advance and submit.
func (f *Form) SetField(name, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields[name] = value
}

// Field returns a scalar field's current value.
func (f *Form) Field(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields[name]
}
