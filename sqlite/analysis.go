package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/legaldoc"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ legaldoc.AnalysisService = (*AnalysisService)(nil)

// AnalysisService implements legaldoc.AnalysisService using SQLite.
type AnalysisService struct {
	db *DB
}

// NewAnalysisService creates a new AnalysisService.
func NewAnalysisService(db *DB) *AnalysisService {
	return &AnalysisService{db: db}
}

// hashContent computes the xxHash of content as a hex string.
func hashContent(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

// SaveAnalysis stores the analysis and its documents. An existing analysis
// for the same domain is replaced in place: it keeps its ID and creation
// time and its documents are swapped for the new ones.
func (s *AnalysisService) SaveAnalysis(ctx context.Context, a *legaldoc.Analysis) error {
	a.Domain = strings.ToLower(a.Domain)
	if err := a.Validate(); err != nil {
		return err
	}
	for _, doc := range a.Documents {
		if err := doc.Validate(); err != nil {
			return err
		}
	}

	report, err := json.Marshal(a.Report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	found := a.DocumentsFound
	if found == nil {
		found = []legaldoc.DocumentRef{}
	}
	documentsFound, err := json.Marshal(found)
	if err != nil {
		return fmt.Errorf("failed to encode documents found: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := s.db.now()
	var id, createdAt string
	err = tx.QueryRowContext(ctx, "SELECT id, created_at FROM analyses WHERE domain = ?", a.Domain).Scan(&id, &createdAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		a.ID = uuid.New().String()
		a.CreatedAt = now
		_, err = tx.ExecContext(ctx, `
			INSERT INTO analyses (id, domain, url, report, documents_found, successful, error_message, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, a.ID, a.Domain, a.URL, string(report), string(documentsFound), a.Successful, a.ErrorMessage,
			a.CreatedAt.Format(time.RFC3339), now.Format(time.RFC3339))
		if err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		a.ID = id
		if a.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
			UPDATE analyses
			SET url = ?, report = ?, documents_found = ?, successful = ?, error_message = ?, updated_at = ?
			WHERE id = ?
		`, a.URL, string(report), string(documentsFound), a.Successful, a.ErrorMessage,
			now.Format(time.RFC3339), a.ID)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM documents WHERE analysis_id = ?", a.ID); err != nil {
			return err
		}
	}
	a.UpdatedAt = now

	for i, doc := range a.Documents {
		doc.ID = uuid.New().String()
		doc.AnalysisID = a.ID
		doc.ContentLength = utf8.RuneCountInString(doc.Content)
		doc.ContentHash = hashContent(doc.Content)
		doc.ExtractedAt = now
		if doc.Status == "" {
			doc.Status = legaldoc.StatusSuccess
		}

		// A repeated URL overwrites the earlier row rather than failing the save.
		_, err := tx.ExecContext(ctx, `
			INSERT INTO documents (id, analysis_id, type, url, title, content, content_length, content_hash, language, status, position, extracted_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (analysis_id, url) DO UPDATE SET
				id = excluded.id, type = excluded.type, title = excluded.title, content = excluded.content,
				content_length = excluded.content_length, content_hash = excluded.content_hash,
				language = excluded.language, status = excluded.status, extracted_at = excluded.extracted_at
		`, doc.ID, doc.AnalysisID, string(doc.Type), doc.URL, doc.Title, doc.Content, doc.ContentLength,
			doc.ContentHash, doc.Language, string(doc.Status), i, doc.ExtractedAt.Format(time.RFC3339))
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindAnalysisByDomain retrieves the analysis for a domain with its documents
// in their saved order.
func (s *AnalysisService) FindAnalysisByDomain(ctx context.Context, domain string) (*legaldoc.Analysis, error) {
	a, err := scanAnalysis(s.db.QueryRowContext(ctx, `
		SELECT id, domain, url, report, documents_found, successful, error_message, created_at, updated_at
		FROM analyses
		WHERE domain = ?
	`, strings.ToLower(domain)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, legaldoc.Errorf(legaldoc.ENOTFOUND, "analysis not found for %s", domain)
	}
	if err != nil {
		return nil, err
	}

	a.Documents, err = s.findDocuments(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// FindAnalyses retrieves analyses matching the filter, most recently updated
// first. Documents are not loaded.
func (s *AnalysisService) FindAnalyses(ctx context.Context, filter legaldoc.AnalysisFilter) ([]*legaldoc.Analysis, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, domain, url, report, documents_found, successful, error_message, created_at, updated_at
		FROM analyses WHERE 1=1`)

	if filter.Domain != nil {
		query.WriteString(" AND domain = ?")
		args = append(args, strings.ToLower(*filter.Domain))
	}
	if filter.Successful != nil {
		query.WriteString(" AND successful = ?")
		args = append(args, *filter.Successful)
	}
	if filter.Since != nil {
		query.WriteString(" AND updated_at >= ?")
		args = append(args, filter.Since.UTC().Format(time.RFC3339))
	}

	query.WriteString(" ORDER BY updated_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var analyses []*legaldoc.Analysis
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, a)
	}
	return analyses, rows.Err()
}

// DeleteAnalysis removes the analysis for a domain and, by cascade, its documents.
func (s *AnalysisService) DeleteAnalysis(ctx context.Context, domain string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM analyses WHERE domain = ?", strings.ToLower(domain))
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return legaldoc.Errorf(legaldoc.ENOTFOUND, "analysis not found for %s", domain)
	}
	return nil
}

func (s *AnalysisService) findDocuments(ctx context.Context, analysisID string) ([]*legaldoc.StoredDocument, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, analysis_id, type, url, title, content, content_length, content_hash, language, status, extracted_at
		FROM documents
		WHERE analysis_id = ?
		ORDER BY position ASC
	`, analysisID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*legaldoc.StoredDocument
	for rows.Next() {
		var doc legaldoc.StoredDocument
		var extractedAt string
		if err := rows.Scan(&doc.ID, &doc.AnalysisID, &doc.Type, &doc.URL, &doc.Title, &doc.Content,
			&doc.ContentLength, &doc.ContentHash, &doc.Language, &doc.Status, &extractedAt); err != nil {
			return nil, err
		}
		if doc.ExtractedAt, err = parseRFC3339(extractedAt, "extracted_at"); err != nil {
			return nil, err
		}
		docs = append(docs, &doc)
	}
	return docs, rows.Err()
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row scanner) (*legaldoc.Analysis, error) {
	var a legaldoc.Analysis
	var report, documentsFound, createdAt, updatedAt string
	if err := row.Scan(&a.ID, &a.Domain, &a.URL, &report, &documentsFound, &a.Successful,
		&a.ErrorMessage, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(report), &a.Report); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}
	if err := json.Unmarshal([]byte(documentsFound), &a.DocumentsFound); err != nil {
		return nil, fmt.Errorf("failed to decode documents found: %w", err)
	}

	var err error
	if a.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if a.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}
	return &a, nil
}
