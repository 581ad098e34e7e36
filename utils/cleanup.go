package utils

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// StartTmpCleaner launches a background goroutine that periodically removes
// stale *.tmp leftovers from the media directory. A tmp file survives only
// when an upload failed between the write and the rename; removal is
// best-effort.
func StartTmpCleaner(mediaDir string, interval, maxAge time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	if maxAge <= 0 {
		maxAge = time.Hour
	}
	go func() {
		for {
			time.Sleep(interval)
			entries, err := os.ReadDir(mediaDir)
			if err != nil {
				continue
			}
			cutoff := time.Now().Add(-maxAge)
			for _, e := range entries {
				if e.IsDir() || !strings.HasSuffix(e.Name(), ".tmp") {
					continue
				}
				info, err := e.Info()
				if err != nil || info.ModTime().After(cutoff) {
					continue
				}
				path := filepath.Join(mediaDir, e.Name())
				if err := os.Remove(path); err == nil && Sugar != nil {
					Sugar.Infof("removed stale upload tmp file %s", path)
				}
			}
		}
	}()
}
