package media

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/hollis-git/lineagebackend/models"
)

func newMedia(handle, path string) *models.Media {
	return &models.Media{
		PrimaryObject: models.PrimaryObject{Handle: handle},
		Path:          path,
	}
}

func TestLocalHandlerRoundTrip(t *testing.T) {
	handler, err := NewLocalHandler(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalHandler failed: %v", err)
	}
	ctx := context.Background()
	obj := newMedia("m1", "photos/wedding.jpg")

	ok, err := handler.Exists(ctx, obj)
	if err != nil || ok {
		t.Fatalf("Exists before save = %v, %v", ok, err)
	}
	if err := handler.Save(ctx, obj, bytes.NewReader([]byte("image data"))); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	ok, err = handler.Exists(ctx, obj)
	if err != nil || !ok {
		t.Fatalf("Exists after save = %v, %v", ok, err)
	}
	r, err := handler.Open(ctx, obj)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil || string(data) != "image data" {
		t.Errorf("read back %q, %v", data, err)
	}
}

func TestLocalHandlerRejectsBadPaths(t *testing.T) {
	handler, err := NewLocalHandler(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalHandler failed: %v", err)
	}
	cases := []struct {
		name string
		path string
	}{
		{"empty", ""},
		{"absolute", "/etc/passwd"},
		{"traversal", "../outside.jpg"},
		{"nested traversal", "photos/../../outside.jpg"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := handler.FullPath(newMedia("m1", tc.path)); err == nil {
				t.Errorf("FullPath(%q) accepted a bad path", tc.path)
			}
		})
	}
}

func TestFilterMissing(t *testing.T) {
	handler, err := NewLocalHandler(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalHandler failed: %v", err)
	}
	ctx := context.Background()
	present := newMedia("m1", "a.jpg")
	absent := newMedia("m2", "b.jpg")
	malformed := newMedia("m3", "../escape.jpg")
	if err := handler.Save(ctx, present, strings.NewReader("x")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	missing, err := FilterMissing(ctx, handler, []*models.Media{present, absent, malformed})
	if err != nil {
		t.Fatalf("FilterMissing failed: %v", err)
	}
	if len(missing) != 2 {
		t.Fatalf("missing = %v, want m2 and m3", missing)
	}
	if missing[0].Handle != "m2" || missing[1].Handle != "m3" {
		t.Errorf("missing handles = %s, %s", missing[0].Handle, missing[1].Handle)
	}
}

func TestIsRasterImage(t *testing.T) {
	cases := map[string]bool{
		"photo.JPG":   true,
		"scan.tiff":   true,
		"doc.pdf":     false,
		"movie.mp4":   false,
		"noextension": false,
	}
	for name, want := range cases {
		if got := IsRasterImage(name); got != want {
			t.Errorf("IsRasterImage(%q) = %v, want %v", name, got, want)
		}
	}
}
