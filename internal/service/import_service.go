package service

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"catalog-importer/internal/domain"
	"catalog-importer/internal/errlog"
	"catalog-importer/internal/logger"
	"catalog-importer/internal/metrics"
	"catalog-importer/internal/progress"
	"catalog-importer/internal/queue"
	"catalog-importer/internal/repository"
	"catalog-importer/internal/validator"
)

// BatchSize is how many valid rows are buffered before each bulk upsert.
// Fixed tuning constant: large enough to amortize per-statement overhead,
// small enough to bound transaction size.
const BatchSize = 5000

// importPayload is the job payload for an import job. The job id itself keys
// the progress snapshot and error log.
type importPayload struct {
	FilePath string `json:"file_path"`
}

// ImportService owns the batched import pipeline.
type ImportService struct {
	productRepo repository.ProductRepository
	validator   *validator.Validator
	tracker     *progress.Tracker
	errors      *errlog.Log
	jobs        JobEnqueuer
	events      EventEnqueuer
	uploadDir   string
	batchSize   int
}

// NewImportService creates a new ImportService.
func NewImportService(
	productRepo repository.ProductRepository,
	v *validator.Validator,
	tracker *progress.Tracker,
	errors *errlog.Log,
	jobs JobEnqueuer,
	events EventEnqueuer,
	uploadDir string,
) *ImportService {
	return &ImportService{
		productRepo: productRepo,
		validator:   v,
		tracker:     tracker,
		errors:      errors,
		jobs:        jobs,
		events:      events,
		uploadDir:   uploadDir,
		batchSize:   BatchSize,
	}
}

// StartImport spools the uploaded file to disk, enqueues the import job and
// initializes its progress snapshot so pollers immediately see it queued.
func (s *ImportService) StartImport(ctx context.Context, filename string, reader io.Reader) (string, error) {
	tmp, err := os.CreateTemp(s.uploadDir, "upload_*.csv")
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}

	if _, err := io.Copy(tmp, reader); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("spool upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close upload file: %w", err)
	}

	jobID, err := s.jobs.Enqueue(ctx, domain.JobKindImport, importPayload{FilePath: tmp.Name()})
	if err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("enqueue import job: %w", err)
	}

	if err := s.tracker.Init(ctx, jobID); err != nil {
		logger.WithJobID(jobID).Warn("Failed to initialize progress snapshot",
			slog.String("error", err.Error()))
	}

	logger.WithJobID(jobID).Info("Import job queued",
		slog.String("filename", filename),
		slog.String("path", tmp.Name()))
	return jobID, nil
}

// GetProgress returns the current progress snapshot for a job.
func (s *ImportService) GetProgress(ctx context.Context, jobID string) (domain.ProgressSnapshot, error) {
	return s.tracker.Get(ctx, jobID)
}

// ListErrors returns the retained error count and the most recent records.
func (s *ImportService) ListErrors(ctx context.Context, jobID string, limit int) (int, []domain.ErrorRecord, error) {
	count, err := s.errors.Count(ctx, jobID)
	if err != nil {
		return 0, nil, err
	}
	records, err := s.errors.List(ctx, jobID, limit)
	if err != nil {
		return 0, nil, err
	}
	return count, records, nil
}

// HandleImport is the job body for import jobs. It runs the file to
// completion or failure, always removing the source file on exit. Re-running
// it after a crash is safe: the upsert is idempotent and progress writes are
// overwrites keyed by job id.
func (s *ImportService) HandleImport(ctx context.Context, job *queue.Job) (queue.Result, error) {
	var payload importPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		return queue.Ack(), fmt.Errorf("decode import payload: %w", err)
	}

	log := logger.WithJobID(job.ID)
	log.Info("Starting import", slog.String("path", payload.FilePath))
	startTime := time.Now()

	defer func() {
		// Best effort; a leftover temp file is not worth failing over.
		if err := os.Remove(payload.FilePath); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Warn("Failed to remove import file", slog.String("error", err.Error()))
		}
	}()

	result := s.runImport(ctx, job.ID, payload.FilePath)

	if result.Status == domain.JobStatusFailed {
		s.update(ctx, job.ID, progress.Update{
			Status:  progress.Status(domain.JobStatusFailed),
			Message: progress.String(result.Reason),
		})
		metrics.ObserveImportCompletion("failed", time.Since(startTime).Seconds(), result.Processed, result.Errors)
		log.Error("Import failed",
			slog.String("reason", result.Reason),
			slog.Int("processed", result.Processed),
			slog.Int("errors", result.Errors))
		return queue.Ack(), nil
	}

	s.update(ctx, job.ID, progress.Update{
		Status:    progress.Status(domain.JobStatusCompleted),
		Stage:     progress.String("completed"),
		Total:     progress.Int(result.Processed),
		Processed: progress.Int(result.Processed),
		Errors:    progress.Int(result.Errors),
		Message:   progress.String("Import complete"),
	})
	metrics.ObserveImportCompletion("completed", time.Since(startTime).Seconds(), result.Processed, result.Errors)
	log.Info("Import completed",
		slog.Int("processed", result.Processed),
		slog.Int("errors", result.Errors),
		slog.Duration("elapsed", time.Since(startTime).Round(time.Millisecond)))

	if s.events != nil {
		if _, err := s.events.EnqueueEvent(ctx, domain.EventImportCompleted, map[string]interface{}{
			"job_id":    job.ID,
			"processed": result.Processed,
			"errors":    result.Errors,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}); err != nil {
			log.Warn("Failed to enqueue import.completed event", slog.String("error", err.Error()))
		}
	}

	return queue.Ack(), nil
}

// runImport performs the single linear scan over the file.
func (s *ImportService) runImport(ctx context.Context, jobID, filePath string) domain.ImportResult {
	s.update(ctx, jobID, progress.Update{
		Status:  progress.Status(domain.JobStatusRunning),
		Stage:   progress.String("importing"),
		Message: progress.String("Importing in batches"),
	})

	file, err := os.Open(filePath)
	if err != nil {
		return domain.ImportResult{Status: domain.JobStatusFailed, Reason: fmt.Sprintf("open file: %v", err)}
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Rows may have fewer columns than the header; missing optional columns
	// are treated as blank.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return domain.ImportResult{Status: domain.JobStatusFailed, Reason: fmt.Sprintf("read header: %v", err)}
	}

	colMap := make(map[string]int, len(header))
	for i, col := range header {
		colMap[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, col := range []string{"sku", "name"} {
		if _, ok := colMap[col]; !ok {
			return domain.ImportResult{Status: domain.JobStatusFailed, Reason: fmt.Sprintf("missing required column: %s", col)}
		}
	}

	var (
		batch     []domain.ProductRow
		processed int
		rowErrors int
		rowNum    int
	)

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			rowErrors++
			s.pushError(ctx, jobID, domain.ErrorRecord{
				Row:   rowNum,
				Error: err.Error(),
				Data:  map[string]string{},
			})
			continue
		}

		raw := rawFields(colMap, record)
		row, err := s.validator.ParseRow(raw)
		if err != nil {
			rowErrors++
			s.pushError(ctx, jobID, domain.ErrorRecord{
				Row:   rowNum,
				Error: err.Error(),
				Data:  raw,
			})
			continue
		}

		batch = append(batch, row)
		if len(batch) >= s.batchSize {
			if err := s.flush(ctx, jobID, batch, &processed, rowErrors); err != nil {
				return domain.ImportResult{
					Status:    domain.JobStatusFailed,
					Processed: processed,
					Errors:    rowErrors,
					Reason:    err.Error(),
				}
			}
			batch = batch[:0]
		}
	}

	if len(batch) > 0 {
		if err := s.flush(ctx, jobID, batch, &processed, rowErrors); err != nil {
			return domain.ImportResult{
				Status:    domain.JobStatusFailed,
				Processed: processed,
				Errors:    rowErrors,
				Reason:    err.Error(),
			}
		}
	}

	return domain.ImportResult{
		Status:    domain.JobStatusCompleted,
		Processed: processed,
		Errors:    rowErrors,
	}
}

// flush writes one batch and publishes updated counters.
func (s *ImportService) flush(ctx context.Context, jobID string, batch []domain.ProductRow, processed *int, rowErrors int) error {
	flushStart := time.Now()
	if err := s.productRepo.BulkUpsert(ctx, batch); err != nil {
		return err
	}
	metrics.ImportBatchDuration.Observe(time.Since(flushStart).Seconds())

	*processed += len(batch)
	s.update(ctx, jobID, progress.Update{
		Processed: progress.Int(*processed),
		Errors:    progress.Int(rowErrors),
	})
	return nil
}

// rawFields maps a record back to its named columns. Columns beyond those in
// the import contract are ignored.
func rawFields(colMap map[string]int, record []string) validator.RawRow {
	raw := make(validator.RawRow, 4)
	for _, col := range []string{"sku", "name", "description", "price"} {
		if idx, ok := colMap[col]; ok && idx < len(record) {
			raw[col] = record[idx]
		}
	}
	return raw
}

func (s *ImportService) update(ctx context.Context, jobID string, u progress.Update) {
	if err := s.tracker.Update(ctx, jobID, u); err != nil {
		logger.WithJobID(jobID).Warn("Failed to update progress", slog.String("error", err.Error()))
	}
}

func (s *ImportService) pushError(ctx context.Context, jobID string, rec domain.ErrorRecord) {
	if err := s.errors.Push(ctx, jobID, rec); err != nil {
		logger.WithJobID(jobID).Warn("Failed to record row error", slog.String("error", err.Error()))
	}
}
