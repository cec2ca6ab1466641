package report

import (
	"fmt"
	"time"

	"github.com/NightKikko/datasearcher/internal/models"
	"github.com/cybergodev/json"
	"gopkg.in/yaml.v3"
)

// document is the structured export shape shared by JSON and YAML.
type document struct {
	RunID         string         `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Term          string         `json:"term" yaml:"term"`
	Root          string         `json:"root" yaml:"root"`
	CaseSensitive bool           `json:"case_sensitive" yaml:"case_sensitive"`
	Stats         documentStats  `json:"stats" yaml:"stats"`
	Files         []documentFile `json:"files" yaml:"files"`
}

type documentStats struct {
	FilesFound     int     `json:"files_found" yaml:"files_found"`
	FilesProcessed int     `json:"files_processed" yaml:"files_processed"`
	FilesCompleted int     `json:"files_completed" yaml:"files_completed"`
	MatchesFound   int     `json:"matches_found" yaml:"matches_found"`
	FileErrors     int     `json:"file_errors" yaml:"file_errors"`
	Workers        int     `json:"workers" yaml:"workers"`
	StartedAt      string  `json:"started_at,omitempty" yaml:"started_at,omitempty"`
	ElapsedSeconds float64 `json:"elapsed_seconds" yaml:"elapsed_seconds"`
	Canceled       bool    `json:"canceled" yaml:"canceled"`
}

type documentFile struct {
	Path     string               `json:"path" yaml:"path"`
	Relative string               `json:"relative" yaml:"relative"`
	Matches  []models.MatchRecord `json:"matches" yaml:"matches"`
}

func (r *Report) document() document {
	results := r.results()

	doc := document{
		RunID:         r.RunID,
		Term:          r.Term,
		Root:          r.Root,
		CaseSensitive: r.CaseSensitive,
		Stats: documentStats{
			FilesFound:     r.Stats.FilesFound,
			FilesProcessed: r.Stats.FilesProcessed,
			FilesCompleted: r.Stats.FilesCompleted,
			MatchesFound:   r.Stats.MatchesFound,
			FileErrors:     r.Stats.FileErrors,
			Workers:        r.Stats.EffectiveWorkers,
			ElapsedSeconds: r.Stats.Elapsed.Seconds(),
			Canceled:       r.Stats.Canceled,
		},
		Files: make([]documentFile, 0, results.Len()),
	}
	if !r.Stats.StartedAt.IsZero() {
		doc.Stats.StartedAt = r.Stats.StartedAt.Format(time.RFC3339)
	}

	for _, path := range results.SortedPaths() {
		matches, _ := results.Get(path)
		doc.Files = append(doc.Files, documentFile{
			Path:     path,
			Relative: r.relPath(path),
			Matches:  matches,
		})
	}
	return doc
}

// JSON renders the report as indented JSON.
func (r *Report) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(r.document(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode JSON report: %w", err)
	}
	return append(data, '\n'), nil
}

// YAML renders the report as YAML.
func (r *Report) YAML() ([]byte, error) {
	data, err := yaml.Marshal(r.document())
	if err != nil {
		return nil, fmt.Errorf("failed to encode YAML report: %w", err)
	}
	return data, nil
}
