package generation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"alcyxob/fitplanner/internal/domain"
	"alcyxob/fitplanner/internal/metrics"

	"go.uber.org/zap"
)

// Generator builds the prompt, submits it and waits for the plan text.
// A Generator with a nil client is unconfigured: every call fails with
// ErrMissingCredential before anything is submitted.
type Generator struct {
	client  JobClient
	poller  Poller
	logger  *zap.Logger
	metrics *metrics.Manager
}

func NewGenerator(client JobClient, poller Poller, logger *zap.Logger, m *metrics.Manager) *Generator {
	return &Generator{
		client:  client,
		poller:  poller,
		logger:  logger,
		metrics: m,
	}
}

func (g *Generator) Configured() bool {
	return g.client != nil
}

// Generate returns the assistant's plan text. Errors wrap ErrMissingCredential,
// ErrTransport, ErrJobFailed or ErrTimedOut, or are the ctx error when the
// caller went away.
func (g *Generator) Generate(ctx context.Context, profile *domain.Profile, prefs domain.GenerationPreferences) (string, error) {
	if !g.Configured() {
		g.observe(metrics.OutcomeUnconfigured, 0)
		return "", ErrMissingCredential
	}

	g.metrics.GaugeGenerationsInFlight.Inc()
	defer g.metrics.GaugeGenerationsInFlight.Dec()
	start := time.Now()

	text, err := g.run(ctx, BuildPrompt(profile, prefs))
	outcome := outcomeOf(ctx, err)
	g.observe(outcome, time.Since(start))

	if err != nil {
		g.logger.Warn("plan generation did not complete",
			zap.String("outcome", outcome),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return "", err
	}
	return text, nil
}

func (g *Generator) run(ctx context.Context, prompt string) (string, error) {
	handle, err := g.client.Submit(ctx, prompt)
	if err != nil {
		return "", g.wrap(ctx, "submit", err)
	}
	g.logger.Debug("generation job submitted",
		zap.String("threadId", handle.ThreadID),
		zap.String("runId", handle.RunID),
	)

	state, err := g.poller.Wait(ctx, g.client, handle)
	if err != nil {
		return "", g.wrap(ctx, "poll", err)
	}

	switch state {
	case StateFailed:
		return "", ErrJobFailed
	case StateTimedOut:
		return "", fmt.Errorf("%w after %d attempts", ErrTimedOut, g.poller.MaxAttempts)
	}

	text, err := g.client.Result(ctx, handle)
	if err != nil {
		return "", g.wrap(ctx, "fetch result", err)
	}
	return text, nil
}

// wrap tags client errors as transport errors unless they already carry a
// generation sentinel or come from the caller's ctx.
func (g *Generator) wrap(ctx context.Context, op string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if errors.Is(err, ErrMissingCredential) || errors.Is(err, ErrTransport) || errors.Is(err, ErrJobFailed) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrTransport, err)
}

func (g *Generator) observe(outcome string, elapsed time.Duration) {
	g.metrics.CounterGenerations.WithLabelValues(outcome).Inc()
	if elapsed > 0 {
		g.metrics.HistGenerationDuration.Observe(elapsed.Seconds())
	}
}

func outcomeOf(ctx context.Context, err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeCompleted
	case ctx.Err() != nil:
		return metrics.OutcomeCanceled
	case errors.Is(err, ErrMissingCredential):
		return metrics.OutcomeUnconfigured
	case errors.Is(err, ErrJobFailed):
		return metrics.OutcomeFailed
	case errors.Is(err, ErrTimedOut):
		return metrics.OutcomeTimedOut
	default:
		return metrics.OutcomeTransport
	}
}
