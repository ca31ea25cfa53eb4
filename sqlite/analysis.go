package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/policyprism"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ policyprism.AnalysisService = (*AnalysisService)(nil)

// AnalysisService implements policyprism.AnalysisService using SQLite.
// Reports are stored as JSON alongside their source URL.
type AnalysisService struct {
	db *DB
}

// NewAnalysisService creates a new AnalysisService.
func NewAnalysisService(db *DB) *AnalysisService {
	return &AnalysisService{db: db}
}

// CreateAnalysis stores a completed analysis.
func (s *AnalysisService) CreateAnalysis(ctx context.Context, analysis *policyprism.Analysis) error {
	if err := analysis.Validate(); err != nil {
		return err
	}

	analysis.ID = uuid.New().String()
	analysis.CreatedAt = time.Now().UTC()

	report, err := json.Marshal(analysis.Report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO analyses (id, source_url, report, created_at)
		VALUES (?, ?, ?, ?)
	`, analysis.ID, analysis.SourceURL, string(report),
		analysis.CreatedAt.Format(time.RFC3339))

	return err
}

// FindAnalysisByID retrieves an analysis by ID.
func (s *AnalysisService) FindAnalysisByID(ctx context.Context, id string) (*policyprism.Analysis, error) {
	var analysis policyprism.Analysis
	var report, createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, source_url, report, created_at
		FROM analyses
		WHERE id = ?
	`, id).Scan(&analysis.ID, &analysis.SourceURL, &report, &createdAt)

	if err == sql.ErrNoRows {
		return nil, policyprism.Errorf(policyprism.ENOTFOUND, "analysis not found")
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(report), &analysis.Report); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}

	analysis.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &analysis, nil
}

// FindAnalyses retrieves analyses matching the filter, newest first.
func (s *AnalysisService) FindAnalyses(ctx context.Context, filter policyprism.AnalysisFilter) ([]*policyprism.Analysis, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, report, created_at FROM analyses WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var analyses []*policyprism.Analysis
	for rows.Next() {
		var analysis policyprism.Analysis
		var report, createdAt string

		if err := rows.Scan(&analysis.ID, &analysis.SourceURL, &report, &createdAt); err != nil {
			return nil, err
		}

		if err := json.Unmarshal([]byte(report), &analysis.Report); err != nil {
			return nil, fmt.Errorf("failed to decode report: %w", err)
		}

		analysis.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		analyses = append(analyses, &analysis)
	}

	return analyses, rows.Err()
}

// DeleteAnalysis removes an analysis by ID.
// Returns ENOTFOUND if the analysis does not exist.
func (s *AnalysisService) DeleteAnalysis(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM analyses WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return policyprism.Errorf(policyprism.ENOTFOUND, "analysis not found")
	}

	return nil
}
