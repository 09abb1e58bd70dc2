package helpcenter

import (
	"context"
	"time"
)

// Feedback is a reader's answer to "Was this article helpful?".
type Feedback struct {
	ID        string    `json:"id"`
	Reference string    `json:"reference"`
	Helpful   bool      `json:"helpful"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the feedback contains invalid fields.
func (f *Feedback) Validate() error {
	if f.Reference == "" {
		return Errorf(EINVALID, "feedback reference required")
	}
	return nil
}

// FeedbackSummary aggregates the feedback for one article.
type FeedbackSummary struct {
	Reference  string `json:"reference"`
	Helpful    int    `json:"helpful"`
	NotHelpful int    `json:"notHelpful"`
}

// FeedbackService represents a service for managing article feedback.
type FeedbackService interface {
	// CreateFeedback records feedback and assigns its ID.
	// Returns ECONFLICT if the same comment was already left on the article.
	CreateFeedback(ctx context.Context, fb *Feedback) error

	// FindFeedback retrieves feedback matching the filter, newest first.
	FindFeedback(ctx context.Context, filter FeedbackFilter) ([]*Feedback, error)

	// SummarizeFeedback counts helpful and unhelpful answers for an article.
	SummarizeFeedback(ctx context.Context, reference string) (*FeedbackSummary, error)
}

// FeedbackFilter represents a filter for FindFeedback.
type FeedbackFilter struct {
	Reference *string `json:"reference"`
	Helpful   *bool   `json:"helpful"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
