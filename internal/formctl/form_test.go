// ABOUTME: Tests for the form controller
// ABOUTME: Validation, section activation, image pre-checks, multipart, lifecycle

package formctl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func agentForm() *Form {
	return New(
		[]Section{
			{Name: "basic", Fields: []string{"name", "email"}},
			{Name: "details", Fields: []string{"city", "experience"}},
		},
		[]string{"name", "email", "city"},
	)
}

func TestForm_ValidateRequired(t *testing.T) {
	f := agentForm()
	f.SetField("name", "Rahul")

	if f.Validate() {
		t.Fatal("expected validation failure with missing required fields")
	}
	if f.FieldError("email") == "" {
		t.Error("expected error on email")
	}
	if f.FieldError("city") == "" {
		t.Error("expected error on city")
	}
	if f.FieldError("name") != "" {
		t.Error("filled field must not carry an error")
	}
}

func TestForm_ValidateActivatesFirstErrorSection(t *testing.T) {
	f := agentForm()
	f.SetField("name", "Rahul")
	f.SetField("email", "rahul@acasa.example")
	f.SetActiveSection("basic")

	// Only "city" (details section) is missing
	if f.Validate() {
		t.Fatal("expected validation failure")
	}
	if got := f.ActiveSection(); got != "details" {
		t.Errorf("expected details section activated, got %q", got)
	}
}

func TestForm_WhitespaceIsEmpty(t *testing.T) {
	f := agentForm()
	f.SetField("name", "   ")
	f.SetField("email", "a@b.c")
	f.SetField("city", "Pune")

	if f.Validate() {
		t.Error("whitespace-only value must fail a required check")
	}
}

func TestForm_AttachImage(t *testing.T) {
	f := agentForm()

	if err := f.AttachImage("cv.pdf", "application/pdf", []byte("x")); !errors.Is(err, ErrNotImage) {
		t.Errorf("expected ErrNotImage, got %v", err)
	}

	oversized := make([]byte, MaxImageSize+1)
	if err := f.AttachImage("big.jpg", "image/jpeg", oversized); !errors.Is(err, ErrImageTooLarge) {
		t.Errorf("expected ErrImageTooLarge, got %v", err)
	}
	if f.Image() != nil {
		t.Error("rejected file must not be staged")
	}

	if err := f.AttachImage("photo.jpg", "image/jpeg", []byte("jpeg-bytes")); err != nil {
		t.Fatalf("valid image rejected: %v", err)
	}
	if f.Image() == nil {
		t.Error("expected staged image")
	}
}

func TestForm_MultipartPayload(t *testing.T) {
	f := agentForm()
	f.SetField("name", "Rahul")
	f.SetField("email", "rahul@acasa.example")
	f.SetField("city", "") // empty values must be omitted
	if err := f.AttachImage("photo.jpg", "image/jpeg", []byte("jpeg-bytes")); err != nil {
		t.Fatalf("attach failed: %v", err)
	}

	body, contentType, err := f.MultipartPayload("photo")
	if err != nil {
		t.Fatalf("payload build failed: %v", err)
	}
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		t.Fatalf("unexpected content type %q", contentType)
	}

	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		t.Fatalf("bad content type: %v", err)
	}
	reader := multipart.NewReader(bytes.NewReader(body.Bytes()), params["boundary"])

	got := map[string]string{}
	fileSeen := false
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("read part: %v", err)
		}
		data, _ := io.ReadAll(part)
		if part.FileName() != "" {
			fileSeen = true
			if part.FormName() != "photo" {
				t.Errorf("file under field %q, want photo", part.FormName())
			}
			if string(data) != "jpeg-bytes" {
				t.Error("file content mangled")
			}
			continue
		}
		got[part.FormName()] = string(data)
	}

	if !fileSeen {
		t.Error("expected a file part")
	}
	if got["name"] != "Rahul" || got["email"] != "rahul@acasa.example" {
		t.Errorf("unexpected fields %v", got)
	}
	if _, ok := got["city"]; ok {
		t.Error("empty field must be omitted from the payload")
	}
}

func TestForm_SubmitLifecycle(t *testing.T) {
	f := agentForm()
	f.SetField("name", "Rahul")
	f.SetField("email", "rahul@acasa.example")
	f.SetField("city", "Pune")

	if err := f.Submit(context.Background(), func(ctx context.Context) error { return nil }); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if f.State() != StateSucceeded {
		t.Errorf("expected succeeded, got %v", f.State())
	}

	if err := f.Submit(context.Background(), func(ctx context.Context) error { return fmt.Errorf("boom") }); err == nil {
		t.Fatal("expected error")
	}
	if f.State() != StateFailed {
		t.Errorf("expected failed, got %v", f.State())
	}
}

func TestForm_SubmitBlockedByValidation(t *testing.T) {
	f := agentForm()
	called := false

	err := f.Submit(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if called {
		t.Error("send must not run when validation fails")
	}
	if f.State() != StateFailed {
		t.Errorf("expected failed state, got %v", f.State())
	}
}

func TestForm_SubmitRejectsConcurrent(t *testing.T) {
	f := agentForm()
	f.SetField("name", "Rahul")
	f.SetField("email", "rahul@acasa.example")
	f.SetField("city", "Pune")

	release := make(chan struct{})
	started := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = f.Submit(context.Background(), func(ctx context.Context) error {
			close(started)
			<-release
			return nil
		})
	}()

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("first submit never started")
	}

	if err := f.Submit(context.Background(), func(ctx context.Context) error { return nil }); !errors.Is(err, ErrSubmitInFlight) {
		t.Errorf("expected ErrSubmitInFlight, got %v", err)
	}

	close(release)
	wg.Wait()
	if f.State() != StateSucceeded {
		t.Errorf("expected succeeded after release, got %v", f.State())
	}
}

func TestForm_ConcurrentSubmitsShareOneSlot(t *testing.T) {
	f := agentForm()
	f.SetField("name", "Rahul")
	f.SetField("email", "rahul@acasa.example")
	f.SetField("city", "Pune")

	var inFlight, maxSeen atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = f.Submit(context.Background(), func(ctx context.Context) error {
				n := inFlight.Add(1)
				for {
					m := maxSeen.Load()
					if n <= m || maxSeen.CompareAndSwap(m, n) {
						break
					}
				}
				time.Sleep(time.Millisecond)
				inFlight.Add(-1)
				return nil
			})
		}()
	}
	wg.Wait()

	if got := maxSeen.Load(); got > 1 {
		t.Errorf("%d sends ran at once, want at most 1", got)
	}
}
