package usecase

import (
	"context"
	"fmt"
	"strings"

	"jira-gateway/internal/model"
	"jira-gateway/internal/tracker"
	"jira-gateway/internal/tracker/repository"
)

// Jira rejects summaries longer than this.
const maxSummaryLength = 255

// CreateFromEvent opens one ticket describing a source-control event.
func (uc *implUseCase) CreateFromEvent(ctx context.Context, event model.WebhookEvent) (tracker.CreateFromEventOutput, error) {
	repo := strings.TrimSpace(event.Repository)
	title := strings.TrimSpace(firstLine(event.Title))
	if repo == "" || title == "" {
		return tracker.CreateFromEventOutput{}, fmt.Errorf("%w: repository and title are required", tracker.ErrMalformedPayload)
	}

	opt := repository.CreateIssueOptions{
		ProjectKey:  uc.cfg.ProjectKey,
		IssueType:   uc.cfg.TicketIssueType,
		Summary:     truncateRunes(fmt.Sprintf("[%s] %s", repo, title), maxSummaryLength),
		Description: describe(event),
	}
	if event.Source != "" {
		opt.Labels = []string{string(event.Source)}
	}

	created, err := uc.repo.CreateIssue(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateFromEvent CreateIssue: %v", err)
		return tracker.CreateFromEventOutput{}, err
	}

	uc.l.Infof(ctx, "uc.CreateFromEvent: created %s for %s %s on %s", created.Key, event.EventType, event.Action, repo)
	return tracker.CreateFromEventOutput{Issue: created}, nil
}

// describe renders the ticket body, one fact per line.
func describe(event model.WebhookEvent) string {
	var b strings.Builder

	kind := event.EventType
	if event.Action != "" {
		kind += " (" + event.Action + ")"
	}
	fmt.Fprintf(&b, "Created from %s %s event on %s.\n", event.Source, kind, event.Repository)
	if event.Number > 0 {
		fmt.Fprintf(&b, "Number: #%d\n", event.Number)
	}
	if event.Author != "" {
		fmt.Fprintf(&b, "Author: %s\n", event.Author)
	}
	if event.URL != "" {
		fmt.Fprintf(&b, "Link: %s\n", event.URL)
	}
	if body := strings.TrimSpace(event.Description); body != "" {
		b.WriteString("\n")
		b.WriteString(body)
	}
	return b.String()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
