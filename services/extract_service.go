package services

import (
	"fmt"
	"log"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Extractor pulls plain text out of PDF documents.
type Extractor struct {
	log *log.Logger
}

func NewExtractor(logger *log.Logger) *Extractor {
	return &Extractor{log: logger}
}

// ExtractText returns the concatenated text of every page in the document at
// path, in page order. A page with no extractable text contributes nothing.
// Any failure to open or read the document is reported as *ExtractionError.
func (e *Extractor) ExtractText(path string) (text string, err error) {
	// The pdf package panics on some malformed documents; surface those the
	// same way as ordinary read failures.
	defer func() {
		if r := recover(); r != nil {
			e.log.Printf("Recovered from PDF reader panic on %s: %v", path, r)
			text = ""
			err = &ExtractionError{Path: path, Err: fmt.Errorf("%v", r)}
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Err: err}
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			return "", &ExtractionError{Path: path, Err: fmt.Errorf("page %d: %w", i, err)}
		}
		b.WriteString(content)
	}
	return b.String(), nil
}
