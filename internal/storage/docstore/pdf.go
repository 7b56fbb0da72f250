package docstore

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// maxPDFTextLen bounds extracted text so one oversized PDF cannot flood
// a downstream analysis batch.
const maxPDFTextLen = 50000

// extractPDFText extracts plain text from a PDF document.
func (s *Store) extractPDFText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	defer f.Close()

	var sb strings.Builder
	totalPages := r.NumPage()

	for i := 1; i <= totalPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			s.logger.Warn().Err(err).Str("path", path).Int("page", i).Msg("Failed to extract PDF page text")
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")

		if sb.Len() > maxPDFTextLen {
			break
		}
	}

	result := sb.String()
	if len(result) > maxPDFTextLen {
		result = result[:maxPDFTextLen]
	}

	return result, nil
}
