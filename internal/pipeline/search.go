package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// supportedExt lists the attachment formats the extractors handle.
var supportedExt = map[string]bool{
	".pdf":  true,
	".docx": true,
}

// sidecarPaths lists the metadata sidecars directly under root, in lexical
// order. Subdirectories are not searched: each one holds the attachments
// of its sibling sidecar, not further documents.
func sidecarPaths(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("cannot access input directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("input path is not a directory: %s", root)
	}

	matches, err := filepath.Glob(filepath.Join(root, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("cannot list sidecars: %w", err)
	}
	return matches, nil
}

// attachmentDir derives the attachment directory of a sidecar: the same
// path minus the .json extension.
func attachmentDir(sidecar string) string {
	return strings.TrimSuffix(sidecar, filepath.Ext(sidecar))
}

// attachmentFiles lists the supported attachment files directly in dir, in
// lexical order.
func attachmentFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot list attachments: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if !supportedExt[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}
