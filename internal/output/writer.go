// Package output persists the client-facing report as a timestamped JSON
// file and maintains a manifest of past runs with retention pruning.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/preston-bernstein/nfl-events-etl/internal/domain/report"
)

const defaultRetentionDays = 30

// Writer persists run output and manifest with pruning.
type Writer struct {
	dir           string
	retentionDays int
	now           func() time.Time
	newRunID      func() string
}

// NewWriter constructs a writer rooted at dir with a rolling retention window.
func NewWriter(dir string, retentionDays int) *Writer {
	if retentionDays <= 0 {
		retentionDays = defaultRetentionDays
	}
	return &Writer{
		dir:           dir,
		retentionDays: retentionDays,
		now:           time.Now,
		newRunID:      uuid.NewString,
	}
}

// Dir exposes the writer root path (primarily for testing).
func (w *Writer) Dir() string {
	if w == nil {
		return ""
	}
	return w.dir
}

// Write serializes records to a timestamped JSON file, updates the manifest,
// and returns the written path. The file lands via tmp+rename so a failed
// run never leaves a partial output behind.
func (w *Writer) Write(records []report.Event) (string, error) {
	if w == nil {
		return "", fmt.Errorf("output writer not configured")
	}
	if records == nil {
		records = []report.Event{}
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", err
	}

	target := FilePath(w.dir, w.now())
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", err
	}
	if err := os.Rename(tmp, target); err != nil {
		return "", err
	}

	if err := w.updateManifest(target, len(records)); err != nil {
		return "", err
	}
	return target, nil
}

func (w *Writer) updateManifest(file string, count int) error {
	m := readManifest(ManifestPath(w.dir), w.retentionDays)
	now := w.now().UTC()

	m.GeneratedAt = now
	m.Retention.Days = w.retentionDays
	m.Runs = append(m.Runs, RunMeta{
		ID:        w.newRunID(),
		File:      filepath.Base(file),
		Records:   count,
		WrittenAt: now,
	})

	kept, err := w.pruneOldRuns(m.Runs)
	if err != nil {
		return err
	}
	m.Runs = kept

	return writeManifest(ManifestPath(w.dir), m)
}

// pruneOldRuns removes output files older than the retention window and
// drops their manifest entries.
func (w *Writer) pruneOldRuns(runs []RunMeta) ([]RunMeta, error) {
	cutoff := w.now().UTC().AddDate(0, 0, -w.retentionDays)

	kept := make([]RunMeta, 0, len(runs))
	for _, run := range runs {
		ts, ok := parseFileTimestamp(run.File)
		if ok && ts.Before(cutoff) {
			_ = os.Remove(filepath.Join(w.dir, run.File))
			continue
		}
		kept = append(kept, run)
	}
	sort.Slice(kept, func(i, j int) bool {
		return kept[i].WrittenAt.Before(kept[j].WrittenAt)
	})
	return kept, nil
}
