// Package archive ingests user-supplied telemetry: zip bundles holding many
// documents, or standalone document blobs. Malformed candidates are skipped,
// never fatal.
package archive

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"io"
	"path"
	"strings"

	"github.com/apexworks/pitwall/internal/domain"
)

// Input is one user-supplied file: a zip bundle or a single document.
type Input struct {
	Name string
	Data []byte
}

// Result is the accepted session set. Summaries keep discovery order quirks
// (duplicate slugs stay listed twice) while Documents holds the last
// document seen per slug; DuplicateSlugs counts how often that overwrite
// happened so callers can warn about it.
type Result struct {
	Summaries      []domain.SessionSummary
	Documents      map[string]*domain.Document
	Skipped        int
	DuplicateSlugs int
}

var zipMagic = []byte{'P', 'K', 0x03, 0x04}

// Ingest processes a batch: every bundle first, in input order, then every
// standalone document. The accepted set is sorted by date descending before
// it is returned.
func Ingest(inputs []Input) Result {
	result := Result{Documents: make(map[string]*domain.Document)}

	for _, input := range inputs {
		if isBundle(input) {
			ingestBundle(&result, input)
		}
	}
	for _, input := range inputs {
		if !isBundle(input) {
			ingestCandidate(&result, input.Name, input.Data)
		}
	}

	domain.SortSummaries(result.Summaries)
	return result
}

func isBundle(input Input) bool {
	return bytes.HasPrefix(input.Data, zipMagic) ||
		strings.EqualFold(path.Ext(input.Name), ".zip")
}

func ingestBundle(result *Result, input Input) {
	reader, err := zip.NewReader(bytes.NewReader(input.Data), int64(len(input.Data)))
	if err != nil {
		result.Skipped++
		return
	}

	for _, entry := range reader.File {
		if entry.FileInfo().IsDir() {
			continue
		}
		if !strings.EqualFold(path.Ext(entry.Name), domain.DocumentExtension) {
			continue
		}
		data, err := readEntry(entry)
		if err != nil {
			result.Skipped++
			continue
		}
		ingestCandidate(result, entry.Name, data)
	}
}

// ingestCandidate parses one document and accepts it when it has at least
// one valid lap. Any failure only skips this candidate.
func ingestCandidate(result *Result, name string, data []byte) {
	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		result.Skipped++
		return
	}

	summary, ok := domain.DeriveSummary(&doc, name)
	if !ok {
		result.Skipped++
		return
	}

	if _, exists := result.Documents[summary.Slug]; exists {
		result.DuplicateSlugs++
	}
	result.Summaries = append(result.Summaries, summary)
	result.Documents[summary.Slug] = &doc
}

func readEntry(entry *zip.File) ([]byte, error) {
	rc, err := entry.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return io.ReadAll(rc)
}
