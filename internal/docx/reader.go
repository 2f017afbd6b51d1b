package docx

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
)

// documentEntry is the archive member holding the document body.
const documentEntry = "word/document.xml"

// Reader extracts tables from DOCX files.
type Reader struct {
	maxFileSize int64
}

// NewReader creates a new DOCX reader with the specified constraints.
func NewReader(maxFileSize int64) *Reader {
	return &Reader{
		maxFileSize: maxFileSize,
	}
}

// Tables returns every table of the document as a cell matrix, body
// tables first, then tables nested inside cells.
func (r *Reader) Tables(path string) ([][][]string, error) {
	if path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}

	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot access file: %w", err)
	}

	if fileInfo.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	if fileInfo.Size() == 0 {
		return nil, fmt.Errorf("file is empty: %s", path)
	}

	if fileInfo.Size() > r.maxFileSize {
		return nil, fmt.Errorf("file too large: %d bytes (max: %d bytes)",
			fileInfo.Size(), r.maxFileSize)
	}

	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open DOCX file: %w", err)
	}
	defer archive.Close()

	data, err := readDocumentEntry(&archive.Reader)
	if err != nil {
		return nil, err
	}

	doc, err := parseDocument(data)
	if err != nil {
		return nil, err
	}

	return collectTables(doc), nil
}

func readDocumentEntry(archive *zip.Reader) ([]byte, error) {
	for _, file := range archive.File {
		if file.Name != documentEntry {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", documentEntry, err)
		}
		defer rc.Close()

		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", documentEntry, err)
		}
		return data, nil
	}

	return nil, fmt.Errorf("missing %s in archive", documentEntry)
}
