package generation

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"
)

const messagesPageSize = 20

// AssistantsClient runs prompts through an OpenAI assistant: one thread per
// prompt, one run per thread.
type AssistantsClient struct {
	client      *openai.Client
	assistantID string
}

// NewAssistantsClient returns ErrMissingCredential when apiKey or assistantID
// is empty. baseURL overrides the API endpoint when set.
func NewAssistantsClient(apiKey, assistantID, baseURL string, httpClient *http.Client) (*AssistantsClient, error) {
	if strings.TrimSpace(apiKey) == "" || strings.TrimSpace(assistantID) == "" {
		return nil, ErrMissingCredential
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}

	return &AssistantsClient{
		client:      openai.NewClientWithConfig(cfg),
		assistantID: assistantID,
	}, nil
}

func (a *AssistantsClient) Submit(ctx context.Context, prompt string) (JobHandle, error) {
	thread, err := a.client.CreateThread(ctx, openai.ThreadRequest{
		Messages: []openai.ThreadMessage{
			{Role: openai.ThreadMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return JobHandle{}, classify("create thread", err)
	}

	run, err := a.client.CreateRun(ctx, thread.ID, openai.RunRequest{AssistantID: a.assistantID})
	if err != nil {
		return JobHandle{}, classify("create run", err)
	}

	return JobHandle{ThreadID: thread.ID, RunID: run.ID}, nil
}

func (a *AssistantsClient) Status(ctx context.Context, handle JobHandle) (JobStatus, error) {
	run, err := a.client.RetrieveRun(ctx, handle.ThreadID, handle.RunID)
	if err != nil {
		return "", classify("retrieve run", err)
	}
	return runStatus(run.Status), nil
}

// Result returns the text of the newest message produced by the run.
func (a *AssistantsClient) Result(ctx context.Context, handle JobHandle) (string, error) {
	limit := messagesPageSize
	order := "desc"
	list, err := a.client.ListMessage(ctx, handle.ThreadID, &limit, &order, nil, nil, &handle.RunID)
	if err != nil {
		return "", classify("list messages", err)
	}

	for _, msg := range list.Messages {
		for _, content := range msg.Content {
			if content.Text != nil && content.Text.Value != "" {
				return content.Text.Value, nil
			}
		}
	}
	return "", fmt.Errorf("%w: run completed without a text response", ErrJobFailed)
}

func runStatus(status openai.RunStatus) JobStatus {
	switch status {
	case openai.RunStatusCompleted:
		return JobCompleted
	case openai.RunStatusFailed, openai.RunStatusCancelled, openai.RunStatusExpired, openai.RunStatusIncomplete:
		return JobFailed
	default:
		// queued, in_progress, requires_action, cancelling
		return JobPending
	}
}

func classify(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && (apiErr.HTTPStatusCode == http.StatusUnauthorized || apiErr.HTTPStatusCode == http.StatusForbidden) {
		return fmt.Errorf("%s: %w: %w", op, ErrMissingCredential, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrTransport, err)
}
