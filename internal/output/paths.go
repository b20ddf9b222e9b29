package output

import (
	"fmt"
	"path/filepath"
	"time"
)

// filenameLayout keeps the run timestamp filesystem-safe on every platform.
const filenameLayout = "2006-01-02T15-04-05"

const filePrefix = "events_"

// FilePath builds the output path for a run started at ts.
func FilePath(dir string, ts time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("%s%s.json", filePrefix, ts.Format(filenameLayout)))
}

// ManifestPath builds the path to the run manifest inside dir.
func ManifestPath(dir string) string {
	return filepath.Join(dir, "manifest.json")
}

// parseFileTimestamp recovers the run timestamp from an output filename.
func parseFileTimestamp(name string) (time.Time, bool) {
	base := filepath.Base(name)
	if filepath.Ext(base) != ".json" || len(base) <= len(filePrefix)+len(".json") {
		return time.Time{}, false
	}
	raw := base[len(filePrefix) : len(base)-len(".json")]
	ts, err := time.Parse(filenameLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}
