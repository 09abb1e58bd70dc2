package mock

import (
	"context"

	"github.com/fwojciec/helpcenter"
)

var _ helpcenter.FeedbackService = (*FeedbackService)(nil)

// FeedbackService is a mock implementation of helpcenter.FeedbackService.
type FeedbackService struct {
	CreateFeedbackFn    func(ctx context.Context, fb *helpcenter.Feedback) error
	FindFeedbackFn      func(ctx context.Context, filter helpcenter.FeedbackFilter) ([]*helpcenter.Feedback, error)
	SummarizeFeedbackFn func(ctx context.Context, reference string) (*helpcenter.FeedbackSummary, error)
}

func (s *FeedbackService) CreateFeedback(ctx context.Context, fb *helpcenter.Feedback) error {
	return s.CreateFeedbackFn(ctx, fb)
}

func (s *FeedbackService) FindFeedback(ctx context.Context, filter helpcenter.FeedbackFilter) ([]*helpcenter.Feedback, error) {
	return s.FindFeedbackFn(ctx, filter)
}

func (s *FeedbackService) SummarizeFeedback(ctx context.Context, reference string) (*helpcenter.FeedbackSummary, error) {
	return s.SummarizeFeedbackFn(ctx, reference)
}
