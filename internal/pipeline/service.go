// Package pipeline orchestrates a full extraction run: discover metadata
// sidecars, extract items from each document's attachments in priority
// order, deduplicate and assemble the result records.
package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/licitatools/licitaparse/internal/extract"
	"github.com/licitatools/licitaparse/internal/licitacao"
)

// Service runs the extraction pipeline over a portal download directory.
type Service struct {
	registry *extract.Registry
}

// NewService creates a pipeline service with the given per-file size limit.
func NewService(maxFileSize int64) *Service {
	return &Service{
		registry: extract.NewRegistry(maxFileSize),
	}
}

// ProcessDirectory processes every document whose metadata sidecar lives
// directly under root. Failing documents are skipped with a log record; an
// unusable root and a canceled context are the only fatal conditions.
// Cancellation is honored between documents, never mid-document.
func (s *Service) ProcessDirectory(ctx context.Context, root string) ([]licitacao.Licitacao, RunStats, error) {
	var stats RunStats

	sidecars, err := sidecarPaths(root)
	if err != nil {
		return nil, stats, err
	}

	results := make([]licitacao.Licitacao, 0, len(sidecars))
	for _, sidecar := range sidecars {
		if err := ctx.Err(); err != nil {
			return results, stats, err
		}

		start := time.Now()
		record, err := s.ProcessDocument(sidecar)
		if err != nil {
			slog.Error("document skipped", "sidecar", filepath.Base(sidecar), "error", err)
			stats.DocumentsFailed++
			continue
		}

		results = append(results, *record)
		stats.record(record)
		slog.Info("document processed",
			"sidecar", filepath.Base(sidecar),
			"attachments", len(record.AnexosProcessados),
			"items", len(record.ItensExtraidos),
			"duration", time.Since(start))
	}

	return results, stats, nil
}

// ProcessDocument builds the result record for one procurement document:
// sidecar metadata plus the deduplicated items of its attachment
// directory.
func (s *Service) ProcessDocument(sidecar string) (*licitacao.Licitacao, error) {
	meta, err := licitacao.LoadMetadata(sidecar)
	if err != nil {
		return nil, err
	}

	items, processed := s.extractAll(attachmentDir(sidecar))

	record, err := licitacao.NewLicitacao(filepath.Base(sidecar), meta, processed, Deduplicate(items))
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// extractAll walks one document's attachments in priority order, stopping
// once items exist and a listing-scored file has been consumed. A missing
// attachment directory yields an empty result, not a failure.
func (s *Service) extractAll(dir string) ([]licitacao.Item, []string) {
	files, err := attachmentFiles(dir)
	if err != nil {
		slog.Warn("attachment directory unavailable", "dir", filepath.Base(dir), "error", err)
		return nil, nil
	}
	SortByPriority(files)

	var items []licitacao.Item
	var processed []string
	for _, path := range files {
		extractor := s.registry.ForPath(path)
		if extractor == nil {
			continue
		}

		fileItems, err := extractor.Extract(path)
		if err != nil {
			slog.Warn("attachment failed", "file", filepath.Base(path), "error", err)
		}
		if len(fileItems) > 0 {
			items = append(items, fileItems...)
			processed = append(processed, filepath.Base(path))
		}

		score := ScoreFile(path)
		slog.Debug("attachment scanned",
			"file", filepath.Base(path),
			"score", score,
			"items", len(fileItems))
		if len(items) > 0 && score >= listingScore {
			break
		}
	}

	return items, processed
}
