package output

import (
	"encoding/json"
	"os"
	"time"
)

// Manifest tracks the runs written into an output directory.
type Manifest struct {
	Version     int       `json:"version"`
	GeneratedAt time.Time `json:"generatedAt"`
	Retention   Retention `json:"retention"`
	Runs        []RunMeta `json:"runs"`
}

type Retention struct {
	Days int `json:"days"`
}

// RunMeta records one completed run.
type RunMeta struct {
	ID        string    `json:"id"`
	File      string    `json:"file"`
	Records   int       `json:"records"`
	WrittenAt time.Time `json:"writtenAt"`
}

func defaultManifest(retentionDays int) Manifest {
	return Manifest{
		Version:   1,
		Retention: Retention{Days: retentionDays},
		Runs:      []RunMeta{},
	}
}

func readManifest(path string, retentionDays int) Manifest {
	f, err := os.Open(path)
	if err != nil {
		return defaultManifest(retentionDays)
	}
	defer f.Close()

	var m Manifest
	if err := json.NewDecoder(f).Decode(&m); err != nil {
		return defaultManifest(retentionDays)
	}
	if m.Runs == nil {
		m.Runs = []RunMeta{}
	}
	return m
}

func writeManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
