package tags

import (
	"os"
	"path/filepath"
	"testing"
)

func TestProbeMissingFile(t *testing.T) {
	_, err := Probe(filepath.Join(t.TempDir(), "nope.mp3"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestProbeUnreadableTags(t *testing.T) {
	p := filepath.Join(t.TempDir(), "garbage.mp3")
	if err := os.WriteFile(p, []byte("not an audio file"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := Probe(p); err == nil {
		t.Error("expected error for file without tag data")
	}
}
