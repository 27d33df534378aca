// Package pdfdoc opens PDF bytes for the terminal viewer.
package pdfdoc

import (
	"bytes"
	"fmt"
	"strings"

	"docchat/src/models"

	"github.com/ledongthuc/pdf"
)

// Document is a parsed PDF held in memory.
type Document struct {
	reader *pdf.Reader
	pages  int
}

// Open parses blob as a PDF. Any parse failure is a DocumentError.
func Open(blob []byte) (doc *Document, err error) {
	if len(blob) == 0 {
		return nil, &models.DocumentError{Message: "document is empty"}
	}
	// The parser panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, &models.DocumentError{Message: "failed to parse PDF", Err: fmt.Errorf("%v", r)}
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(blob), int64(len(blob)))
	if err != nil {
		return nil, &models.DocumentError{Message: "failed to parse PDF", Err: err}
	}
	n := r.NumPage()
	if n < 1 {
		return nil, &models.DocumentError{Message: "PDF has no pages"}
	}
	return &Document{reader: r, pages: n}, nil
}

// PageCount returns the number of pages, fixed once the document is open.
func (d *Document) PageCount() int {
	return d.pages
}

// PageText extracts the plain text of a 1-based page.
func (d *Document) PageText(page int) (text string, err error) {
	if page < 1 || page > d.pages {
		return "", fmt.Errorf("page %d out of range [1, %d]", page, d.pages)
	}
	defer func() {
		if r := recover(); r != nil {
			text, err = "", &models.DocumentError{Message: fmt.Sprintf("failed to read page %d", page), Err: fmt.Errorf("%v", r)}
		}
	}()

	p := d.reader.Page(page)
	if p.V.IsNull() {
		return "", nil
	}
	s, err := p.GetPlainText(nil)
	if err != nil {
		return "", &models.DocumentError{Message: fmt.Sprintf("failed to read page %d", page), Err: err}
	}
	return strings.TrimSpace(s), nil
}
