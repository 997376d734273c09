package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"textstats/internal/adapter/analyzer"
	"textstats/internal/adapter/cache"
	"textstats/internal/adapter/fs"
	"textstats/internal/domain"
	"textstats/internal/port"
)

// ProgressFunc is called after each file with the number of files processed so far.
type ProgressFunc func(processed, total int, currentFile string)

// ScanUseCase analyzes every text file under a directory.
type ScanUseCase struct {
	store        port.ReportStore
	walker       port.FileWalker
	analyzer     *cache.CachedAnalyzer
	memCache     *cache.ReportCache
	logger       *zap.Logger
	workers      int
	maxFileBytes int64
}

// ScanOptions tunes a ScanUseCase.
type ScanOptions struct {
	Workers       int
	MaxFileBytes  int64 // 0 = unlimited
	MemoryEntries int
}

// NewScanUseCase creates a new scan use case.
func NewScanUseCase(
	store port.ReportStore,
	walker port.FileWalker,
	stats *analyzer.TextStatistics,
	logger *zap.Logger,
	opts ScanOptions,
) *ScanUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}
	memCache := cache.NewReportCache(opts.MemoryEntries)
	return &ScanUseCase{
		store:        store,
		walker:       walker,
		analyzer:     cache.NewCachedAnalyzer(stats, memCache),
		memCache:     memCache,
		logger:       logger,
		workers:      workers,
		maxFileBytes: opts.MaxFileBytes,
	}
}

// ScanResult contains the results of a scan.
type ScanResult struct {
	Reports      []domain.Report `json:"reports"`
	Summary      domain.Summary  `json:"summary"`
	FilesSkipped int             `json:"files_skipped"`
	CacheHits    int             `json:"cache_hits"`
	Pruned       int             `json:"pruned"`
	Errors       []string        `json:"errors,omitempty"`
}

// Scan walks root and analyzes each included file. Per-file failures are
// collected in ScanResult.Errors; the scan stops early only when ctx is done.
func (u *ScanUseCase) Scan(ctx context.Context, root string, progress ProgressFunc) (*ScanResult, error) {
	files, err := u.walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	u.logger.Debug("scan started", zap.String("root", root), zap.Int("files", len(files)), zap.Int("workers", u.workers))

	type outcome struct {
		report  domain.Report
		skipped bool
		err     error
	}

	outcomes := make([]outcome, len(files))
	jobs := make(chan int)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		processed int
	)

	for w := 0; w < u.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				report, skipped, err := u.scanFile(files[i])
				outcomes[i] = outcome{report: report, skipped: skipped, err: err}

				if progress != nil {
					mu.Lock()
					processed++
					progress(processed, len(files), files[i].Path)
					mu.Unlock()
				}
			}
		}()
	}

feed:
	for i := range files {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &ScanResult{}
	for i, o := range outcomes {
		switch {
		case o.err != nil:
			u.logger.Warn("failed to analyze file", zap.String("path", files[i].Path), zap.Error(o.err))
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", files[i].Path, o.err))
		case o.skipped:
			result.FilesSkipped++
		default:
			if o.report.Cached {
				result.CacheHits++
			}
			result.Reports = append(result.Reports, o.report)
		}
	}
	result.Summary = Summarize(result.Reports)

	pruned, err := u.pruneDocs(root, files)
	if err != nil {
		u.logger.Warn("failed to prune documents", zap.Error(err))
		result.Errors = append(result.Errors, fmt.Sprintf("prune: %v", err))
	}
	result.Pruned = pruned

	u.logger.Debug("scan finished",
		zap.Int("analyzed", len(result.Reports)),
		zap.Int("cache_hits", result.CacheHits),
		zap.Int("skipped", result.FilesSkipped),
		zap.Int("pruned", result.Pruned),
		zap.Int("memory_entries", u.memCache.Size()),
		zap.Int("errors", len(result.Errors)))

	return result, nil
}

// scanFile analyzes one file, consulting the recorded document, the store and
// the in-memory cache first.
func (u *ScanUseCase) scanFile(file port.FileInfo) (domain.Report, bool, error) {
	if u.maxFileBytes > 0 && file.Size > u.maxFileBytes {
		u.logger.Info("skipping large file", zap.String("path", file.Path), zap.Int64("size", file.Size))
		return domain.Report{}, true, nil
	}

	id := generateDocID(file.Path)
	if report, ok := u.unchanged(id, file); ok {
		return report, false, nil
	}

	content, err := fs.ReadFile(file.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotText) {
			u.logger.Info("skipping non-text file", zap.String("path", file.Path))
			return domain.Report{}, true, nil
		}
		return domain.Report{}, false, fmt.Errorf("failed to read file: %w", err)
	}

	hash := cache.ContentHash(content)
	doc := domain.Document{
		ID:      id,
		Path:    file.Path,
		ModTime: time.Unix(file.ModTime, 0),
		Size:    file.Size,
		Hash:    hash,
	}

	stats, cached, err := u.lookup(hash, content)
	if err != nil {
		return domain.Report{}, false, err
	}

	if err := u.store.PutDoc(doc); err != nil {
		return domain.Report{}, false, fmt.Errorf("failed to store document: %w", err)
	}

	return domain.Report{Document: doc, Stats: stats, Cached: cached}, false, nil
}

// unchanged returns the stored report for a file whose size and modification
// time match the document recorded by an earlier scan.
func (u *ScanUseCase) unchanged(id string, file port.FileInfo) (domain.Report, bool) {
	doc, err := u.store.GetDoc(id)
	if err != nil || doc.Size != file.Size || doc.ModTime.Unix() != file.ModTime {
		return domain.Report{}, false
	}
	stats, err := u.store.GetStats(doc.Hash)
	if err != nil {
		return domain.Report{}, false
	}
	u.logger.Debug("file unchanged", zap.String("path", file.Path))
	return domain.Report{Document: doc, Stats: stats, Cached: true}, true
}

// pruneDocs deletes documents under root that the walk no longer found.
func (u *ScanUseCase) pruneDocs(root string, files []port.FileInfo) (int, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return 0, err
	}
	prefix := root + string(filepath.Separator)

	seen := make(map[string]struct{}, len(files))
	for _, f := range files {
		seen[f.Path] = struct{}{}
	}

	docs, err := u.store.ListDocs()
	if err != nil {
		return 0, err
	}

	pruned := 0
	for _, doc := range docs {
		if !strings.HasPrefix(doc.Path, prefix) {
			continue
		}
		if _, ok := seen[doc.Path]; ok {
			continue
		}
		if err := u.store.DeleteDoc(doc.ID); err != nil {
			return pruned, err
		}
		u.logger.Debug("pruned document", zap.String("path", doc.Path))
		pruned++
	}
	return pruned, nil
}

func (u *ScanUseCase) lookup(hash, content string) (domain.Stats, bool, error) {
	stats, err := u.store.GetStats(hash)
	if err == nil {
		u.logger.Debug("report cache hit", zap.String("hash", hash[:12]))
		return stats, true, nil
	}
	if !errors.Is(err, port.ErrNotFound) {
		return domain.Stats{}, false, fmt.Errorf("failed to read cached report: %w", err)
	}

	stats, memHit := u.analyzer.AnalyzeHashed(hash, content)
	if !memHit {
		if err := u.store.PutStats(hash, stats); err != nil {
			return domain.Stats{}, false, fmt.Errorf("failed to store report: %w", err)
		}
	}
	return stats, memHit, nil
}

// Summarize aggregates reports. The average word length is the character total
// over the word total, rounded like a single text.
func Summarize(reports []domain.Report) domain.Summary {
	var s domain.Summary
	for _, r := range reports {
		s.Files++
		s.Words += r.Stats.Words
		s.Sentences += r.Stats.Sentences
		s.Characters += r.Stats.Characters
	}
	s.AvgWordLength = analyzer.RoundedMean(s.Characters, s.Words)
	return s
}

// generateDocID creates a unique ID for a document based on its path.
func generateDocID(path string) string {
	hash := sha256.Sum256([]byte(path))
	return hex.EncodeToString(hash[:8])
}
