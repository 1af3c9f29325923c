// ABOUTME: Generic controller for admin create/edit forms
// ABOUTME: Field map, validation, image pre-checks, multipart assembly, submit lifecycle

package formctl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"sync"
)

// MaxImageSize is the client-side upload limit
const MaxImageSize = 5 << 20 // 5MB

// State is the submission lifecycle
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSucceeded
	StateFailed
)

var (
	// ErrSubmitInFlight is returned when Submit is called while submitting
	ErrSubmitInFlight = errors.New("submission already in progress")

	// ErrNotImage is returned for files without an image/* MIME type
	ErrNotImage = errors.New("file is not an image")

	// ErrImageTooLarge is returned for files over MaxImageSize
	ErrImageTooLarge = fmt.Errorf("image exceeds %dMB limit", MaxImageSize>>20)
)

// Image is a validated attachment awaiting upload
type Image struct {
	Name string
	MIME string
	Data []byte
}

// Section groups fields under a tab; validation activates the first
// section containing an error so the user sees the problem.
type Section struct {
	Name   string
	Fields []string
}

// Form is the create/edit state machine behind every admin form screen
type Form struct {
	mu       sync.Mutex
	fields   map[string]string
	errors   map[string]string
	required map[string]bool
	sections []Section
	active   string
	state    State
	image    *Image
}

// New creates a form with the given sections; required names the fields
// that must be non-empty before submission
func New(sections []Section, required []string) *Form {
	req := make(map[string]bool, len(required))
	for _, name := range required {
		req[name] = true
	}

	f := &Form{
		fields:   map[string]string{},
		errors:   map[string]string{},
		required: req,
		sections: sections,
	}
	if len(sections) > 0 {
		f.active = sections[0].Name
	}
	return f
}

// SetField stores a field value and clears its error
func (f *Form) SetField(name, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields[name] = value
	delete(f.errors, name)
}

// Field returns a field's current value
func (f *Form) Field(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields[name]
}

// Fields returns a copy of the non-empty field values
func (f *Form) Fields() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string, len(f.fields))
	for name, value := range f.fields {
		if value != "" {
			out[name] = value
		}
	}
	return out
}

// FieldError returns the validation error for a field, or ""
func (f *Form) FieldError(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errors[name]
}

// ActiveSection returns the currently shown section name
func (f *Form) ActiveSection() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.active
}

// SetActiveSection switches tabs
func (f *Form) SetActiveSection(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.sections {
		if s.Name == name {
			f.active = name
			return
		}
	}
}

// State returns the submission lifecycle state
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Validate runs the synchronous required-field checks. On failure the
// first section containing an error becomes active, and Validate
// returns false.
func (f *Form) Validate() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.errors = map[string]string{}
	for name := range f.required {
		if strings.TrimSpace(f.fields[name]) == "" {
			f.errors[name] = "this field is required"
		}
	}
	if len(f.errors) == 0 {
		return true
	}

	for _, s := range f.sections {
		for _, name := range s.Fields {
			if f.errors[name] != "" {
				f.active = s.Name
				return false
			}
		}
	}
	return false
}

// AttachImage validates and stages a file for upload. Rejected files
// (wrong type or over the size limit) never reach the network.
func (f *Form) AttachImage(name, mimeType string, data []byte) error {
	if !strings.HasPrefix(mimeType, "image/") {
		return ErrNotImage
	}
	if len(data) > MaxImageSize {
		return ErrImageTooLarge
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.image = &Image{Name: name, MIME: mimeType, Data: data}
	return nil
}

// Image returns the staged attachment, or nil
func (f *Form) Image() *Image {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.image
}

// MultipartPayload builds the upload body: every non-empty field plus
// the staged file under fileField. The returned content type carries
// the multipart boundary.
func (f *Form) MultipartPayload(fileField string) (*bytes.Buffer, string, error) {
	f.mu.Lock()
	fields := make(map[string]string, len(f.fields))
	for name, value := range f.fields {
		if value != "" {
			fields[name] = value
		}
	}
	image := f.image
	f.mu.Unlock()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("failed to write field %s: %w", name, err)
		}
	}
	if image != nil {
		part, err := w.CreateFormFile(fileField, image.Name)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create file part: %w", err)
		}
		if _, err := part.Write(image.Data); err != nil {
			return nil, "", fmt.Errorf("failed to write file part: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	return &buf, w.FormDataContentType(), nil
}

// Submit runs validation and, when it passes, executes send under the
// submitting state. Exactly one submission can be in flight; repeats
// while submitting are rejected. The final state is succeeded or
// failed, never both.
func (f *Form) Submit(ctx context.Context, send func(ctx context.Context) error) error {
	// The gate and the transition share one critical section so two
	// racing Submits can never both pass.
	f.mu.Lock()
	if f.state == StateSubmitting {
		f.mu.Unlock()
		return ErrSubmitInFlight
	}
	f.state = StateSubmitting
	f.mu.Unlock()

	if !f.Validate() {
		f.mu.Lock()
		f.state = StateFailed
		f.mu.Unlock()
		return fmt.Errorf("validation failed")
	}

	err := send(ctx)

	f.mu.Lock()
	if err != nil {
		f.state = StateFailed
	} else {
		f.state = StateSucceeded
	}
	f.mu.Unlock()
	return err
}
