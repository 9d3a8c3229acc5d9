package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/wanderlens/wanderlens/pkg/models"
)

// ExecutorConfig bounds a single action dispatch.
type ExecutorConfig struct {
	// PerActionTimeout is the deadline for one attempt.
	PerActionTimeout time.Duration
	// Retries is how many extra attempts a timed-out action gets.
	Retries int
}

// scrollStepFraction: a scroll action moves ~85% of one viewport so
// consecutive scrolls overlap slightly, the way a person pages through.
const scrollStepFraction = 0.85

// ExecuteAction dispatches one decided action against the page. Timed-out
// attempts (element not ready, overlay in the way) are retried with jittered
// exponential backoff starting at 250ms; other failures are permanent.
// Terminal actions (done, give_up) and wait never touch the page.
func ExecuteAction(ctx context.Context, page PageDriver, action models.Action, cfg ExecutorConfig) (models.ActionOutcome, error) {
	if err := action.Validate(); err != nil {
		return models.ActionOutcome{}, err
	}

	var outcome models.ActionOutcome
	attempt := func() error {
		attemptCtx, cancel := context.WithTimeout(ctx, cfg.PerActionTimeout)
		defer cancel()

		out, err := dispatch(attemptCtx, page, action)
		if err != nil {
			if IsActionTimeout(err) {
				return err
			}
			return backoff.Permanent(err)
		}
		outcome = out
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 250 * time.Millisecond
	b.Multiplier = 2
	b.MaxElapsedTime = 0 // bounded by retry count, not wall clock

	err := backoff.Retry(attempt, backoff.WithContext(backoff.WithMaxRetries(b, uint64(cfg.Retries)), ctx))
	if err != nil {
		return models.ActionOutcome{}, fmt.Errorf("executing %s action: %w", action.Type, err)
	}
	return outcome, nil
}

func dispatch(ctx context.Context, page PageDriver, action models.Action) (models.ActionOutcome, error) {
	switch action.Type {
	case models.ActionClick, models.ActionSubmit:
		pt, err := page.Click(ctx, action.Selector)
		if err != nil {
			return models.ActionOutcome{}, err
		}
		return models.ActionOutcome{ClickX: &pt.X, ClickY: &pt.Y}, nil

	case models.ActionFill:
		return models.ActionOutcome{}, page.Fill(ctx, action.Selector, action.Value)

	case models.ActionSelect:
		return models.ActionOutcome{}, page.Select(ctx, action.Selector, action.Value)

	case models.ActionScroll:
		_, height := page.ViewportSize()
		delta := int(float64(height) * scrollStepFraction)
		if action.Value == "up" {
			delta = -delta
		}
		_, err := page.Scroll(ctx, delta)
		return models.ActionOutcome{}, err

	case models.ActionGoto:
		return models.ActionOutcome{}, page.Goto(ctx, action.Value)

	case models.ActionBack:
		return models.ActionOutcome{}, page.Back(ctx)

	case models.ActionWait:
		select {
		case <-time.After(2 * time.Second):
		case <-ctx.Done():
			return models.ActionOutcome{}, ctx.Err()
		}
		return models.ActionOutcome{}, nil

	case models.ActionDone, models.ActionGiveUp:
		return models.ActionOutcome{}, nil

	default:
		return models.ActionOutcome{}, fmt.Errorf("unhandled action type %q", action.Type)
	}
}
