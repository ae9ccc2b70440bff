package recorder

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/dustin/go-humanize"
)

// FileRecorder writes the HTML page and PNG snapshot to fixed paths. Each
// file is written to a temp file in the same directory and renamed into
// place, so a reader never sees a partial page.
type FileRecorder struct {
	HTMLPath string
	PNGPath  string // empty disables the snapshot
	mu       sync.Mutex
}

// NewFileRecorder creates a FileRecorder.
func NewFileRecorder(htmlPath, pngPath string) *FileRecorder {
	return &FileRecorder{HTMLPath: htmlPath, PNGPath: pngPath}
}

// Save writes the artifacts. A missing PNG leaves any previous snapshot in
// place.
func (r *FileRecorder) Save(a *Artifacts) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := writeAtomic(r.HTMLPath, a.HTML); err != nil {
		return fmt.Errorf("save html: %w", err)
	}
	log.Printf("[INFO] run %s: wrote %s (%s)", a.RunID, r.HTMLPath, humanize.Bytes(uint64(len(a.HTML))))

	if r.PNGPath != "" && a.PNG != nil {
		if err := writeAtomic(r.PNGPath, a.PNG); err != nil {
			return fmt.Errorf("save png: %w", err)
		}
		log.Printf("[INFO] run %s: wrote %s (%s)", a.RunID, r.PNGPath, humanize.Bytes(uint64(len(a.PNG))))
	}
	return nil
}

// Close is a no-op; files are closed after every write.
func (r *FileRecorder) Close() error { return nil }

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
