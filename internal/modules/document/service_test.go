package document

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"drivehire/internal/modules/profile"
	"drivehire/internal/types"
)

type fakeUploader struct {
	calls int
	key   string
	err   error
}

func (f *fakeUploader) Upload(_ context.Context, key, _ string, _ []byte) (string, error) {
	f.calls++
	f.key = key
	if f.err != nil {
		return "", f.err
	}
	return "https://files.example.com/" + key, nil
}

type fakeRecorder struct {
	calls int
	url   string
	err   error
}

func (f *fakeRecorder) RecordDocument(_ context.Context, _ types.ID, _ profile.DocType, url string) error {
	f.calls++
	f.url = url
	return f.err
}

func validCommand() UploadCommand {
	return UploadCommand{
		UserID:      "d1",
		DocType:     profile.DocLicense,
		ContentType: "image/jpeg",
		Data:        []byte("jpeg bytes"),
	}
}

func TestUploadHappyPath(t *testing.T) {
	up := &fakeUploader{}
	rec := &fakeRecorder{}
	svc := NewService(up, rec)

	url, err := svc.Upload(context.Background(), validCommand())
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if up.calls != 1 || rec.calls != 1 {
		t.Fatalf("uploader calls = %d, recorder calls = %d", up.calls, rec.calls)
	}
	if rec.url != url {
		t.Fatalf("recorded url %q != returned url %q", rec.url, url)
	}
	if !strings.HasPrefix(up.key, "documents/d1/license-") || !strings.HasSuffix(up.key, ".jpg") {
		t.Fatalf("unexpected object key %q", up.key)
	}
}

// TestUploadOversizeNeverReachesStorage proves the size ceiling is enforced
// before any network call.
func TestUploadOversizeNeverReachesStorage(t *testing.T) {
	up := &fakeUploader{}
	svc := NewService(up, &fakeRecorder{})

	cmd := validCommand()
	cmd.Data = bytes.Repeat([]byte("x"), MaxUploadBytes+1)
	if _, err := svc.Upload(context.Background(), cmd); err != ErrTooLarge {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
	if up.calls != 0 {
		t.Fatalf("uploader should not be called, got %d calls", up.calls)
	}

	// Exactly at the ceiling is fine.
	cmd.Data = bytes.Repeat([]byte("x"), MaxUploadBytes)
	if _, err := svc.Upload(context.Background(), cmd); err != nil {
		t.Fatalf("upload at limit: %v", err)
	}
}

func TestUploadValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*UploadCommand)
		want   error
	}{
		{"missing user", func(c *UploadCommand) { c.UserID = "" }, ErrBadRequest},
		{"bad doc type", func(c *UploadCommand) { c.DocType = "passport" }, ErrBadRequest},
		{"empty file", func(c *UploadCommand) { c.Data = nil }, ErrBadRequest},
		{"unsupported type", func(c *UploadCommand) { c.ContentType = "video/mp4" }, ErrUnsupportedType},
	}
	for _, tc := range cases {
		up := &fakeUploader{}
		svc := NewService(up, &fakeRecorder{})
		cmd := validCommand()
		tc.mutate(&cmd)
		if _, err := svc.Upload(context.Background(), cmd); err != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
		if up.calls != 0 {
			t.Errorf("%s: uploader should not be called", tc.name)
		}
	}
}

func TestUploadStorageFailure(t *testing.T) {
	boom := errors.New("bucket unavailable")
	rec := &fakeRecorder{}
	svc := NewService(&fakeUploader{err: boom}, rec)

	if _, err := svc.Upload(context.Background(), validCommand()); !errors.Is(err, boom) {
		t.Fatalf("expected storage error, got %v", err)
	}
	if rec.calls != 0 {
		t.Fatal("failed upload must not be recorded on the profile")
	}
}
