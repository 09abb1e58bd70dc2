package main

import (
	"fmt"

	"github.com/fwojciec/helpcenter"
)

// Run executes the feedback command.
func (c *FeedbackCmd) Run(deps *Dependencies) error {
	fb := &helpcenter.Feedback{
		Reference: c.Reference,
		Helpful:   c.Answer == "yes",
		Comment:   c.Comment,
	}
	if err := deps.Feedback.CreateFeedback(deps.Ctx, fb); err != nil {
		reportError(deps, err)
		return err
	}

	fmt.Fprintln(deps.Stdout, "Thanks for your feedback!")
	return nil
}

// Run executes the feedback-summary command.
func (c *FeedbackSummaryCmd) Run(deps *Dependencies) error {
	summary, err := deps.Feedback.SummarizeFeedback(deps.Ctx, c.Reference)
	if err != nil {
		reportError(deps, err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s: %d helpful, %d not helpful\n", summary.Reference, summary.Helpful, summary.NotHelpful)

	if c.Comments <= 0 {
		return nil
	}

	entries, err := deps.Feedback.FindFeedback(deps.Ctx, helpcenter.FeedbackFilter{
		Reference: &c.Reference,
		Limit:     c.Comments,
	})
	if err != nil {
		reportError(deps, err)
		return err
	}
	for _, fb := range entries {
		if fb.Comment == "" {
			continue
		}
		answer := "no"
		if fb.Helpful {
			answer = "yes"
		}
		fmt.Fprintf(deps.Stdout, "  [%s] %s  %s\n", answer, fb.CreatedAt.Format("2006-01-02"), fb.Comment)
	}
	return nil
}
