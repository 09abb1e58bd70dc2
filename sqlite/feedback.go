package sqlite

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/helpcenter"
	"github.com/google/uuid"
	"github.com/ncruces/go-sqlite3"
)

// Compile-time interface verification.
var _ helpcenter.FeedbackService = (*FeedbackService)(nil)

// FeedbackService implements helpcenter.FeedbackService using SQLite.
type FeedbackService struct {
	db *DB
}

// NewFeedbackService creates a new FeedbackService.
func NewFeedbackService(db *DB) *FeedbackService {
	return &FeedbackService{db: db}
}

// hashComment computes xxHash of a normalized comment and returns a hex string.
// Empty comments hash to the empty string so bare votes never conflict.
func hashComment(comment string) string {
	normalized := strings.ToLower(strings.Join(strings.Fields(comment), " "))
	if normalized == "" {
		return ""
	}
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(normalized))
	return hex.EncodeToString(b)
}

// CreateFeedback records feedback and assigns its ID.
func (s *FeedbackService) CreateFeedback(ctx context.Context, fb *helpcenter.Feedback) error {
	if err := fb.Validate(); err != nil {
		return err
	}

	fb.ID = uuid.New().String()
	fb.Comment = strings.TrimSpace(fb.Comment)
	fb.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO feedback (id, reference, helpful, comment, comment_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, fb.ID, fb.Reference, fb.Helpful, fb.Comment, hashComment(fb.Comment),
		fb.CreatedAt.Format(time.RFC3339))

	if errors.Is(err, sqlite3.CONSTRAINT_UNIQUE) {
		return helpcenter.Errorf(helpcenter.ECONFLICT, "feedback already recorded for %q", fb.Reference)
	}
	return err
}

// FindFeedback retrieves feedback matching the filter, newest first.
func (s *FeedbackService) FindFeedback(ctx context.Context, filter helpcenter.FeedbackFilter) ([]*helpcenter.Feedback, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, reference, helpful, comment, created_at FROM feedback WHERE 1=1")

	if filter.Reference != nil {
		query.WriteString(" AND reference = ?")
		args = append(args, *filter.Reference)
	}
	if filter.Helpful != nil {
		query.WriteString(" AND helpful = ?")
		args = append(args, *filter.Helpful)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var feedback []*helpcenter.Feedback
	for rows.Next() {
		var fb helpcenter.Feedback
		var createdAt string

		if err := rows.Scan(&fb.ID, &fb.Reference, &fb.Helpful, &fb.Comment, &createdAt); err != nil {
			return nil, err
		}

		fb.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		feedback = append(feedback, &fb)
	}

	return feedback, rows.Err()
}

// SummarizeFeedback counts helpful and unhelpful answers for an article.
func (s *FeedbackService) SummarizeFeedback(ctx context.Context, reference string) (*helpcenter.FeedbackSummary, error) {
	summary := &helpcenter.FeedbackSummary{Reference: reference}

	err := s.db.QueryRowContext(ctx, `
		SELECT
			COALESCE(SUM(CASE WHEN helpful THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN helpful THEN 0 ELSE 1 END), 0)
		FROM feedback
		WHERE reference = ?
	`, reference).Scan(&summary.Helpful, &summary.NotHelpful)
	if err != nil {
		return nil, err
	}

	return summary, nil
}
