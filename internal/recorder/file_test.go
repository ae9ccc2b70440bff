package recorder

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileRecorder_WritesArtifacts(t *testing.T) {
	dir := t.TempDir()
	htmlPath := filepath.Join(dir, "site", "report.html")
	pngPath := filepath.Join(dir, "site", "img", "report.png")
	r := NewFileRecorder(htmlPath, pngPath)

	if err := r.Save(&Artifacts{HTML: []byte("<html>v1</html>"), PNG: []byte("png1"), GeneratedAt: time.Now()}); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := os.ReadFile(htmlPath)
	if err != nil || string(got) != "<html>v1</html>" {
		t.Fatalf("unexpected html %q (%v)", got, err)
	}
	if got, _ := os.ReadFile(pngPath); string(got) != "png1" {
		t.Errorf("unexpected png %q", got)
	}

	// second save replaces the page, keeps the old snapshot
	if err := r.Save(&Artifacts{HTML: []byte("<html>v2</html>")}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got, _ := os.ReadFile(htmlPath); string(got) != "<html>v2</html>" {
		t.Errorf("expected replaced html, got %q", got)
	}
	if got, _ := os.ReadFile(pngPath); string(got) != "png1" {
		t.Errorf("expected previous png, got %q", got)
	}

	entries, _ := os.ReadDir(filepath.Dir(htmlPath))
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".tmp" {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestFileRecorder_NoPNGPath(t *testing.T) {
	dir := t.TempDir()
	r := NewFileRecorder(filepath.Join(dir, "report.html"), "")
	if err := r.Save(&Artifacts{HTML: []byte("x"), PNG: []byte("y")}); err != nil {
		t.Fatalf("save: %v", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("expected only the html file, got %d entries", len(entries))
	}
}

func TestFileRecorder_UnwritableDir(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}
	r := NewFileRecorder(filepath.Join(blocker, "report.html"), "")
	if err := r.Save(&Artifacts{HTML: []byte("x")}); err == nil {
		t.Fatal("expected error when parent is a file")
	}
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NewNoopRecorder()
	if err := r.Save(&Artifacts{HTML: []byte("x")}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
