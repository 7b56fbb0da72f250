package interfaces

import (
	"github.com/bobmcallan/finsight/internal/models"
)

// Storage areas of the three-tier document tree.
const (
	AreaInput      = "input"
	AreaProcessing = "processing"
	AreaOutput     = "output"
)

// DocumentStore manages the input/processing/output document tree.
// The pipeline core never touches the filesystem directly; all reads and
// writes go through this collaborator.
type DocumentStore interface {
	// PendingDocuments lists unprocessed input documents, sorted by name.
	// README files are excluded.
	PendingDocuments() ([]string, error)

	// DocumentsByDate lists documents in an area whose filenames start
	// with the given YYYY-MM-DD date.
	DocumentsByDate(date string, area string) ([]string, error)

	// DocumentsInRange lists documents in an area whose filename dates
	// fall within [startDate, endDate]. Files without a leading date are
	// skipped.
	DocumentsInRange(startDate, endDate string, area string) ([]string, error)

	// ReadDocument returns the plain text of a stored document.
	// PDF documents are converted to text on read.
	ReadDocument(path string) (string, error)

	// SaveProcessing writes report text into the processing area and
	// returns the stored path.
	SaveProcessing(content string, filename string) (string, error)

	// SaveOutput writes content into the output area, optionally under a
	// subfolder (notes/decisions/knowledge), and returns the stored path.
	SaveOutput(content string, filename string, subfolder string) (string, error)

	// SaveRaw writes binary data (e.g. a rendered chart) into the
	// processing area and returns the stored path.
	SaveRaw(data []byte, filename string) (string, error)

	// Archive moves a document into an archive directory beside it.
	Archive(path string) (string, error)

	// ListAll inventories documents per area. area may be a single area
	// name or "all".
	ListAll(area string) (map[string][]models.FileInfo, error)
}
