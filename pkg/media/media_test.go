package media

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Minimal valid PNG header followed by padding; enough for magic-byte
// sniffing without shipping a fixture.
var pngBytes = append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 64)...)

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestCaptureProducesDataURI(t *testing.T) {
	path := writeTemp(t, "pic.png", pngBytes)
	uri, err := Capture(path, Limits{})
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Fatalf("expected png data uri, got %.40s", uri)
	}
}

func TestCaptureEnforcesSizeLimit(t *testing.T) {
	path := writeTemp(t, "pic.png", pngBytes)
	if _, err := Capture(path, Limits{MaxBytes: 8}); err == nil {
		t.Fatalf("expected size limit error")
	}
	if _, err := Capture(path, Limits{MaxBytes: 4096}); err != nil {
		t.Fatalf("file under the limit should pass: %v", err)
	}
}

func TestCaptureEnforcesTypeList(t *testing.T) {
	path := writeTemp(t, "pic.png", pngBytes)
	if _, err := Capture(path, Limits{Types: []string{"video"}}); err == nil {
		t.Fatalf("expected type rejection for image with video-only limits")
	}
	if _, err := Capture(path, Limits{Types: []string{"image"}}); err != nil {
		t.Fatalf("image should be allowed: %v", err)
	}
}

func TestCaptureUnknownTypeUnlimited(t *testing.T) {
	path := writeTemp(t, "blob.bin", []byte("not any known magic"))
	uri, err := Capture(path, Limits{})
	if err != nil {
		t.Fatalf("unlimited capture must accept unknown types: %v", err)
	}
	if !strings.HasPrefix(uri, "data:application/octet-stream;base64,") {
		t.Fatalf("expected octet-stream fallback, got %.50s", uri)
	}
}

func TestCaptureMissingFile(t *testing.T) {
	if _, err := Capture(filepath.Join(t.TempDir(), "nope.png"), Limits{}); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
