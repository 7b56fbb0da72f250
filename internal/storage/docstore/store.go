// Package docstore implements the three-tier document tree used by the
// analysis pipeline: input for raw drops, processing for generated
// reports, output for curated notes.
package docstore

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/bobmcallan/finsight/internal/common"
	"github.com/bobmcallan/finsight/internal/interfaces"
	"github.com/bobmcallan/finsight/internal/models"
)

// Store is a filesystem-backed DocumentStore.
type Store struct {
	inputDir      string
	processingDir string
	outputDir     string
	logger        arbor.ILogger
}

// NewStore creates the store, ensuring all three area directories exist.
func NewStore(cfg common.StorageConfig, logger arbor.ILogger) (*Store, error) {
	store := &Store{
		inputDir:      cfg.Input,
		processingDir: cfg.Processing,
		outputDir:     cfg.Output,
		logger:        logger,
	}

	for _, dir := range []string{store.inputDir, store.processingDir, store.outputDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create storage directory %s: %w", dir, err)
		}
	}

	logger.Debug().
		Str("input", store.inputDir).
		Str("processing", store.processingDir).
		Str("output", store.outputDir).
		Msg("Document store initialized")

	return store, nil
}

func (s *Store) areaDir(area string) (string, error) {
	switch area {
	case interfaces.AreaInput:
		return s.inputDir, nil
	case interfaces.AreaProcessing:
		return s.processingDir, nil
	case interfaces.AreaOutput:
		return s.outputDir, nil
	default:
		return "", fmt.Errorf("unknown storage area: %s", area)
	}
}

func isReadme(name string) bool {
	return strings.EqualFold(name, "readme.md")
}

// PendingDocuments lists markdown and PDF documents waiting in the input
// area, sorted by name so dated filenames come out chronologically.
func (s *Store) PendingDocuments() ([]string, error) {
	entries, err := os.ReadDir(s.inputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var pending []string
	for _, entry := range entries {
		if entry.IsDir() || isReadme(entry.Name()) {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".md", ".pdf":
			pending = append(pending, filepath.Join(s.inputDir, entry.Name()))
		}
	}

	sort.Strings(pending)
	return pending, nil
}

// DocumentsByDate lists markdown documents in an area whose filenames
// start with the given YYYY-MM-DD date.
func (s *Store) DocumentsByDate(date string, area string) ([]string, error) {
	dir, err := s.areaDir(area)
	if err != nil {
		return nil, err
	}

	matches, err := filepath.Glob(filepath.Join(dir, date+"*.md"))
	if err != nil {
		return nil, fmt.Errorf("failed to glob %s documents: %w", area, err)
	}

	sort.Strings(matches)
	return matches, nil
}

// DocumentsInRange lists markdown documents in an area whose filename
// date prefix falls within [startDate, endDate]. Files without a valid
// date prefix are skipped.
func (s *Store) DocumentsInRange(startDate, endDate string, area string) ([]string, error) {
	dir, err := s.areaDir(area)
	if err != nil {
		return nil, err
	}

	start, err := time.Parse(common.DateFormat, startDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	end, err := time.Parse(common.DateFormat, endDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", endDate, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s directory: %w", area, err)
	}

	var matches []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || isReadme(name) || !strings.HasSuffix(name, ".md") {
			continue
		}
		if len(name) < len(common.DateFormat) {
			continue
		}
		fileDate, err := time.Parse(common.DateFormat, name[:len(common.DateFormat)])
		if err != nil {
			continue
		}
		if !fileDate.Before(start) && !fileDate.After(end) {
			matches = append(matches, filepath.Join(dir, name))
		}
	}

	sort.Strings(matches)
	return matches, nil
}

// ReadDocument returns the plain text of a stored document. PDF files
// are converted to text on read.
func (s *Store) ReadDocument(path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return s.extractPDFText(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read document %s: %w", path, err)
	}
	return string(data), nil
}

// SaveProcessing writes report text into the processing area.
func (s *Store) SaveProcessing(content string, filename string) (string, error) {
	path := filepath.Join(s.processingDir, filename)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", filename, err)
	}
	s.logger.Debug().Str("path", path).Msg("Saved processing document")
	return path, nil
}

// SaveOutput writes content into the output area, optionally under a
// subfolder such as notes, decisions, or knowledge.
func (s *Store) SaveOutput(content string, filename string, subfolder string) (string, error) {
	dir := s.outputDir
	if subfolder != "" {
		dir = filepath.Join(dir, subfolder)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create output subfolder %s: %w", subfolder, err)
		}
	}

	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", filename, err)
	}
	s.logger.Debug().Str("path", path).Msg("Saved output document")
	return path, nil
}

// SaveRaw writes binary data into the processing area.
func (s *Store) SaveRaw(data []byte, filename string) (string, error) {
	path := filepath.Join(s.processingDir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", filename, err)
	}
	return path, nil
}

// Archive moves a document into an archive directory beside it.
func (s *Store) Archive(path string) (string, error) {
	archiveDir := filepath.Join(filepath.Dir(path), "archive")
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	dest := filepath.Join(archiveDir, filepath.Base(path))
	if err := os.Rename(path, dest); err != nil {
		return "", fmt.Errorf("failed to archive %s: %w", path, err)
	}

	s.logger.Debug().Str("from", path).Str("to", dest).Msg("Archived document")
	return dest, nil
}

// ListAll inventories markdown documents per area, recursing into
// subfolders. area may be a single area name or "all".
func (s *Store) ListAll(area string) (map[string][]models.FileInfo, error) {
	areas := []string{area}
	if area == "all" {
		areas = []string{interfaces.AreaInput, interfaces.AreaProcessing, interfaces.AreaOutput}
	}

	result := make(map[string][]models.FileInfo)
	for _, name := range areas {
		dir, err := s.areaDir(name)
		if err != nil {
			return nil, err
		}

		var files []models.FileInfo
		err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || isReadme(d.Name()) || !strings.HasSuffix(d.Name(), ".md") {
				return nil
			}
			info, err := d.Info()
			if err != nil {
				return err
			}
			files = append(files, models.FileInfo{
				Name:     d.Name(),
				Path:     path,
				Size:     info.Size(),
				Modified: info.ModTime(),
			})
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list %s documents: %w", name, err)
		}

		sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
		result[name] = files
	}

	return result, nil
}

// Ensure Store implements DocumentStore
var _ interfaces.DocumentStore = (*Store)(nil)
