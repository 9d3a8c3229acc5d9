package queue

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wanderlens/wanderlens/ent"
	"github.com/wanderlens/wanderlens/ent/studyjob"
)

// EnqueueOptions carries per-run overrides for a study job.
type EnqueueOptions struct {
	// BrowserMode overrides the study's browser preference for this run
	// ("local" or "cloud"). Empty resolves from the study.
	BrowserMode string

	// TimeoutSeconds caps the run; zero keeps the column default.
	TimeoutSeconds int

	// MaxAttempts bounds orphan requeues; zero keeps the column default.
	MaxAttempts int
}

// Enqueue creates a pending job for the study and returns it. At most one job
// per study may be queued or in flight at a time; a second enqueue returns
// ErrStudyAlreadyQueued. The partial unique index on study_id enforces this,
// so concurrent enqueues cannot race two runs of one study.
func Enqueue(ctx context.Context, client *ent.Client, studyID string, opts EnqueueOptions) (*ent.StudyJob, error) {
	if _, err := client.Study.Get(ctx, studyID); err != nil {
		return nil, fmt.Errorf("loading study %s: %w", studyID, err)
	}

	create := client.StudyJob.Create().
		SetID(uuid.New().String()).
		SetStudyID(studyID)
	if opts.BrowserMode != "" {
		mode := studyjob.BrowserMode(opts.BrowserMode)
		if err := studyjob.BrowserModeValidator(mode); err != nil {
			return nil, fmt.Errorf("browser mode %q: %w", opts.BrowserMode, err)
		}
		create = create.SetBrowserMode(mode)
	}
	if opts.TimeoutSeconds > 0 {
		create = create.SetTimeoutSeconds(opts.TimeoutSeconds)
	}
	if opts.MaxAttempts > 0 {
		create = create.SetMaxAttempts(opts.MaxAttempts)
	}

	job, err := create.Save(ctx)
	if ent.IsConstraintError(err) {
		return nil, fmt.Errorf("study %s: %w", studyID, ErrStudyAlreadyQueued)
	}
	if err != nil {
		return nil, fmt.Errorf("enqueueing study %s: %w", studyID, err)
	}
	return job, nil
}
