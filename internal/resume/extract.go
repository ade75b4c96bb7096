// Package resume handles local resume files: extension checks before upload
// and an offline text extraction fallback.
package resume

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// AcceptsFilename reports whether the file name ends in .pdf,
// case-insensitively. This is the same filter the upload flow applies to
// dropped files; the backend does its own validation on top.
func AcceptsFilename(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".pdf")
}

// ExtractText reads the PDF at path and returns its plain text. Used by the
// --local flag when the backend parser is unreachable; the server-side parse
// remains the canonical path.
func ExtractText(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	content, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract text: %w", err)
	}
	if _, err := buf.ReadFrom(content); err != nil {
		return "", fmt.Errorf("read text: %w", err)
	}

	return strings.TrimSpace(buf.String()), nil
}
