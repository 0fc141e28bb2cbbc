package service

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"patternlab/internal/catalog"
	"patternlab/internal/model"
	"patternlab/internal/repository"
	"patternlab/internal/storage"
)

var (
	ErrIDRequired      = errors.New("id is required")
	ErrPatternNotFound = errors.New("pattern not found")
	ErrRunNotFound     = errors.New("run not found")
	ErrInvalidCategory = errors.New("invalid category")
)

// PatternListResult is the service-level DTO for paginated demo metadata.
type PatternListResult struct {
	Items []catalog.Metadata `json:"data"`
	Total int                `json:"total"`
}

// RunListResult is the service-level DTO for paginated run records.
type RunListResult struct {
	Items []model.Run `json:"data"`
	Total int         `json:"total"`
}

// RunResult pairs a stored run record with the trace it produced.
type RunResult struct {
	Run   model.Run `json:"run"`
	Trace []string  `json:"trace"`
}

// PatternService defines the use cases around the demo catalog and its run history.
type PatternService interface {
	// ListPatterns returns demo metadata using limit/offset and a total count.
	// An empty category lists all demos.
	ListPatterns(category string, limit, offset int) (*PatternListResult, error)

	// GetPattern returns a single demo's metadata by name.
	GetPattern(name string) (*catalog.Metadata, error)

	// Run executes a demo, archives its trace to object storage, records the
	// run, and rolls back the archived object if the record cannot be saved.
	Run(ctx context.Context, name string) (*RunResult, error)

	// ListRuns returns run records using limit/offset and a total count.
	ListRuns(ctx context.Context, limit, offset int) (*RunListResult, error)

	// GetRun returns a single run record by its ID.
	GetRun(ctx context.Context, id string) (*model.Run, error)

	// ReadTrace reads an archived trace back from object storage.
	ReadTrace(ctx context.Context, id string) ([]string, error)

	// TraceURL returns a presigned download URL for an archived trace.
	TraceURL(ctx context.Context, id string, expiry time.Duration) (string, error)

	// DeleteRun removes a run's archived trace and then its record.
	DeleteRun(ctx context.Context, id string) error
}

// patternService is a concrete implementation of PatternService.
type patternService struct {
	reg   *catalog.Registry
	store storage.Storage
	repo  repository.RunRepository
}

// NewPatternService constructs a new PatternService.
func NewPatternService(reg *catalog.Registry, store storage.Storage, repo repository.RunRepository) PatternService {
	return &patternService{reg: reg, store: store, repo: repo}
}

func (s *patternService) ListPatterns(category string, limit, offset int) (*PatternListResult, error) {
	cat := catalog.Category(category)
	if category != "" && !cat.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	all := s.reg.List(cat)
	total := len(all)

	if offset >= total {
		return &PatternListResult{Items: []catalog.Metadata{}, Total: total}, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return &PatternListResult{Items: all[offset:end], Total: total}, nil
}

func (s *patternService) GetPattern(name string) (*catalog.Metadata, error) {
	d, ok := s.reg.Resolve(name)
	if !ok {
		return nil, ErrPatternNotFound
	}
	meta := d.Metadata()
	return &meta, nil
}

func (s *patternService) Run(ctx context.Context, name string) (*RunResult, error) {
	d, ok := s.reg.Resolve(name)
	if !ok {
		return nil, ErrPatternNotFound
	}
	meta := d.Metadata()
	trace := d.Run()

	// Archive the trace first, one line per step.
	body := strings.Join(trace, "\n") + "\n"
	key := "runs/" + uuid.New().String() + ".txt"
	objInfo, err := s.store.Put(ctx, key, strings.NewReader(body), storage.PutObjectOptions{
		Size:        int64(len(body)),
		ContentType: "text/plain; charset=utf-8",
		Metadata: map[string]string{
			"pattern": meta.Name,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("archive trace: %w", err)
	}

	run := &model.Run{
		ID:        uuid.New().String(),
		Pattern:   meta.Name,
		Category:  string(meta.Category),
		Steps:     len(trace),
		TracePath: objInfo.Key,
		CreatedAt: time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, run)
	if err != nil {
		// Rollback: remove the archived trace.
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return &RunResult{Run: *stored, Trace: trace}, nil
}

// ListRuns returns paginated run records without exposing repository types.
func (s *patternService) ListRuns(ctx context.Context, limit, offset int) (*RunListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &RunListResult{Items: res.Items, Total: res.Total}, nil
}

// GetRun returns a run record by ID.
func (s *patternService) GetRun(ctx context.Context, id string) (*model.Run, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	run, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRunNotFound
		}
		return nil, err
	}
	return run, nil
}

// ReadTrace streams the archived trace back and splits it into lines.
func (s *patternService) ReadTrace(ctx context.Context, id string) ([]string, error) {
	run, err := s.GetRun(ctx, id)
	if err != nil {
		return nil, err
	}

	rc, _, err := s.store.Get(ctx, run.TracePath)
	if err != nil {
		return nil, fmt.Errorf("read trace: %w", err)
	}
	defer rc.Close()

	var lines []string
	sc := bufio.NewScanner(rc)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read trace: %w", err)
	}
	return lines, nil
}

// TraceURL returns a presigned URL for downloading the archived trace.
func (s *patternService) TraceURL(ctx context.Context, id string, expiry time.Duration) (string, error) {
	run, err := s.GetRun(ctx, id)
	if err != nil {
		return "", err
	}
	return s.store.PresignGet(ctx, run.TracePath, expiry)
}

// DeleteRun removes the archived trace, then deletes the run record.
func (s *patternService) DeleteRun(ctx context.Context, id string) error {
	run, err := s.GetRun(ctx, id)
	if err != nil {
		return err
	}
	// Delete from storage first; if this fails, keep the DB row so the
	// archived object is never orphaned without a reference.
	if err := s.store.Delete(ctx, run.TracePath); err != nil {
		return fmt.Errorf("delete trace: %w", err)
	}
	return s.repo.Delete(ctx, id)
}
