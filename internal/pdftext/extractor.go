// Package pdftext extracts plain text from the leading pages of PDF
// documents. It uses ledongthuc/pdf (pure Go, no CGO), so no external
// binaries are required.
package pdftext

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractPages returns the plain text of the first maxPages pages of the PDF
// at path, one string per page in page order. Documents shorter than
// maxPages yield only the available pages. A page with no extractable text
// (scanned images) contributes an empty string; that is a valid result, not
// an error. Only open/parse failures return an error.
func ExtractPages(path string, maxPages int) ([]string, error) {
	if maxPages < 1 {
		return nil, fmt.Errorf("page count must be at least 1, got %d", maxPages)
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	total := r.NumPage()
	if total > maxPages {
		total = maxPages
	}

	pages := make([]string, 0, total)
	for i := 1; i <= total; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Unreadable page, not an unreadable document
			pages = append(pages, "")
			continue
		}
		pages = append(pages, strings.TrimSpace(text))
	}

	return pages, nil
}

// Extract returns the text of the first maxPages pages joined with newlines.
// Empty pages are dropped from the concatenation.
func Extract(path string, maxPages int) (string, error) {
	pages, err := ExtractPages(path, maxPages)
	if err != nil {
		return "", err
	}

	var parts []string
	for _, p := range pages {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "\n"), nil
}
