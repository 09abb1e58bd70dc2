package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/helpcenter"
)

// Ensure LoggingFeedbackService implements helpcenter.FeedbackService.
var _ helpcenter.FeedbackService = (*LoggingFeedbackService)(nil)

// LoggingFeedbackService wraps a FeedbackService with logging.
type LoggingFeedbackService struct {
	next   helpcenter.FeedbackService
	logger *slog.Logger
}

// NewLoggingFeedbackService creates a new LoggingFeedbackService.
func NewLoggingFeedbackService(next helpcenter.FeedbackService, logger *slog.Logger) *LoggingFeedbackService {
	return &LoggingFeedbackService{next: next, logger: logger}
}

// CreateFeedback delegates to the wrapped service and logs the submission.
func (s *LoggingFeedbackService) CreateFeedback(ctx context.Context, fb *helpcenter.Feedback) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("feedback submitted",
			"reference", fb.Reference,
			"helpful", fb.Helpful,
			"comment", fb.Comment != "",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateFeedback(ctx, fb)
}

// FindFeedback delegates to the wrapped service.
func (s *LoggingFeedbackService) FindFeedback(ctx context.Context, filter helpcenter.FeedbackFilter) ([]*helpcenter.Feedback, error) {
	return s.next.FindFeedback(ctx, filter)
}

// SummarizeFeedback delegates to the wrapped service.
func (s *LoggingFeedbackService) SummarizeFeedback(ctx context.Context, reference string) (*helpcenter.FeedbackSummary, error) {
	return s.next.SummarizeFeedback(ctx, reference)
}
