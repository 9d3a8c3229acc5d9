package orchestrator

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/wanderlens/wanderlens/pkg/events"
)

// Progress percent bands per run phase. Navigation interpolates linearly
// over finished sessions inside its band.
const (
	percentLaunch    = 0
	percentSessions  = 5
	percentAnalysis  = 85
	percentSynthesis = 95
	percentDone      = 100
)

// Phase labels carried on study.progress events.
const (
	phaseLaunching = "launching"
	phaseSessions  = "sessions"
	phaseAnalysis  = "deep_analysis"
	phaseSynthesis = "synthesis"
)

// progressTracker publishes study.progress events with a percent that never
// decreases within one run, whatever order the per-session goroutines report
// in. Progress is advisory: publish failures are logged, never returned.
type progressTracker struct {
	publisher *events.EventPublisher
	studyID   string

	mu       sync.Mutex
	total    int
	running  int
	finished int
	percent  int
}

func newProgressTracker(publisher *events.EventPublisher, studyID string) *progressTracker {
	return &progressTracker{publisher: publisher, studyID: studyID}
}

// launching reports the run start, before the session list is known.
func (p *progressTracker) launching(ctx context.Context) {
	p.publish(ctx, percentLaunch, phaseLaunching)
}

// setTotal fixes the session count the navigation band interpolates over.
func (p *progressTracker) setTotal(n int) {
	p.mu.Lock()
	p.total = n
	p.mu.Unlock()
}

func (p *progressTracker) sessionStarted(ctx context.Context) {
	p.mu.Lock()
	p.running++
	percent := p.navigationPercent()
	p.mu.Unlock()
	p.publish(ctx, percent, phaseSessions)
}

func (p *progressTracker) sessionFinished(ctx context.Context) {
	p.mu.Lock()
	p.running--
	p.finished++
	percent := p.navigationPercent()
	p.mu.Unlock()
	p.publish(ctx, percent, phaseSessions)
}

// navigationPercent interpolates the 5-85 band over finished sessions.
// Callers hold p.mu.
func (p *progressTracker) navigationPercent() int {
	if p.total <= 0 {
		return percentAnalysis
	}
	span := percentAnalysis - percentSessions
	return percentSessions + span*p.finished/p.total
}

// analysisStep reports one analyzed session out of n inside the 85-95 band.
func (p *progressTracker) analysisStep(ctx context.Context, done, n int) {
	percent := percentAnalysis
	if n > 0 {
		percent += (percentSynthesis - percentAnalysis) * done / n
	}
	p.publish(ctx, percent, phaseAnalysis)
}

func (p *progressTracker) analysis(ctx context.Context) {
	p.publish(ctx, percentAnalysis, phaseAnalysis)
}

func (p *progressTracker) synthesis(ctx context.Context) {
	p.publish(ctx, percentSynthesis, phaseSynthesis)
}

func (p *progressTracker) done(ctx context.Context) {
	p.publish(ctx, percentDone, phaseSynthesis)
}

func (p *progressTracker) publish(ctx context.Context, percent int, phase string) {
	p.mu.Lock()
	if percent < p.percent {
		percent = p.percent
	}
	p.percent = percent
	payload := events.StudyProgressPayload{
		StudyID:          p.studyID,
		Percent:          percent,
		Phase:            phase,
		SessionsRunning:  p.running,
		SessionsComplete: p.finished,
		SessionsTotal:    p.total,
		Timestamp:        time.Now().UTC().Format(time.RFC3339Nano),
	}
	p.mu.Unlock()

	if err := p.publisher.PublishStudyProgress(ctx, payload); err != nil {
		slog.Warn("publishing study progress", "study_id", p.studyID, "percent", percent, "error", err)
	}
}
