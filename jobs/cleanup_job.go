package jobs

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// CleanupUploads removes PDFs from the upload scratch directory once they
// are older than maxAge. Uploaded files are only needed for the duration of
// the ingest request that wrote them.
func CleanupUploads(dir string, maxAge time.Duration, logger *log.Logger) {
	logger.Println("Running job: CleanupUploads...")

	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Printf("Error reading upload directory %s: %v", dir, err)
		return
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".pdf") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := os.Remove(path); err != nil {
			logger.Printf("Error removing stale upload %s: %v", path, err)
			continue
		}
		removed++
	}

	if removed > 0 {
		logger.Printf("Removed %d stale upload(s) from %s", removed, dir)
	}
}
