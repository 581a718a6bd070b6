package entities

import (
	"fmt"
	"strings"
	"time"
)

// Source is one resource file materialized by a loader.
type Source struct {
	Path string
	Tree *Tree
}

// SourceSet is one top-level grouping of loader output.
type SourceSet []Source

// FileMissing holds the blank keys of one resource file.
type FileMissing struct {
	Path string
	Keys *FlatMap
}

// MissingIndex lists, per resource file, the keys whose value is blank.
type MissingIndex struct {
	Files []FileMissing
}

func (idx *MissingIndex) Add(path string, keys *FlatMap) {
	idx.Files = append(idx.Files, FileMissing{Path: path, Keys: keys})
}

// Count returns the number of missing keys across all files.
func (idx *MissingIndex) Count() int {
	n := 0
	for _, f := range idx.Files {
		n += f.Keys.Len()
	}
	return n
}

// Row is one line of the report.
type Row struct {
	FilePath string `json:"file_path" yaml:"file_path"`
	Key      string `json:"key" yaml:"key"`
	Preview  string `json:"preview" yaml:"preview"`
}

// Column headers of the report table.
var Columns = []string{"FILE PATH", "KEY MISSING VALUE", "TRANSLATION PREVIEW"}

// Report is the outcome of one audit.
type Report struct {
	Locales       []string `json:"locales" yaml:"locales"`
	PreviewLocale string   `json:"preview_locale" yaml:"preview_locale"`
	Rows          []Row    `json:"rows" yaml:"rows"`
}

// SearchedHeader is the first header line, e.g. "LOCALES SEARCHED: |en_US|fr_FR|".
func (r *Report) SearchedHeader() string {
	return "LOCALES SEARCHED: |" + strings.Join(r.Locales, "|") + "|"
}

// PreviewHeader is the second header line.
func (r *Report) PreviewHeader() string {
	return fmt.Sprintf("USING | %s | FOR TRANSLATION PREVIEW", r.PreviewLocale)
}

// FileCount groups the rows by file path, in first-seen order.
type FileCount struct {
	Path  string
	Count int
}

func (r *Report) CountByFile() []FileCount {
	var out []FileCount
	pos := make(map[string]int)
	for _, row := range r.Rows {
		i, ok := pos[row.FilePath]
		if !ok {
			i = len(out)
			pos[row.FilePath] = i
			out = append(out, FileCount{Path: row.FilePath})
		}
		out[i].Count++
	}
	return out
}

// AuditRun is a report stored in the audit history.
type AuditRun struct {
	ID            int64
	PreviewLocale string
	Locales       []string
	MissingCount  int
	Rows          []Row
	CreatedAt     time.Time
}

// NewAuditRun snapshots report for the audit history.
func NewAuditRun(report *Report, at time.Time) *AuditRun {
	return &AuditRun{
		PreviewLocale: report.PreviewLocale,
		Locales:       report.Locales,
		MissingCount:  len(report.Rows),
		Rows:          report.Rows,
		CreatedAt:     at,
	}
}
