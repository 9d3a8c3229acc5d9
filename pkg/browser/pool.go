package browser

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/wanderlens/wanderlens/pkg/config"
)

// Lease is one acquired browser page. Release is idempotent and must run on
// every exit path; the navigator defers it immediately after Acquire.
type Lease struct {
	SessionID   string
	Mode        Mode
	Page        PageDriver
	LiveViewURL string

	releaseOnce sync.Once
	release     func()
}

// Release returns the lease's capacity slot and tears down the page.
func (l *Lease) Release() {
	l.releaseOnce.Do(l.release)
}

// Stats is the pool's health-endpoint surface.
type Stats struct {
	Mode           string `json:"mode"`
	ActiveSessions int    `json:"active_sessions"`
	UptimeS        int64  `json:"uptime_s"`
	CrashCount     int    `json:"crash_count"`
	FailoverActive bool   `json:"failover_active"`
	MemoryMB       int    `json:"memory_mb"`
}

// Pool bounds concurrent browser sessions and routes acquisitions between the
// local and cloud backends. A cloud outage flips it into failover: after
// FailureThreshold consecutive cloud failures inside FailureWindow, every
// acquisition goes local until the cooldown lapses or the health probe
// reaches the provider again.
type Pool struct {
	cfg   config.BrowserConfig
	local Backend
	cloud Backend // nil when cloud credentials are not configured

	slots     chan struct{}
	startedAt time.Time

	mu            sync.Mutex
	active        int
	crashCount    int
	cloudFailures []time.Time
	failoverUntil time.Time
	screencast    FrameSink

	probeStop chan struct{}
	probeDone chan struct{}
}

// NewPool wires the real backends from config. The cloud backend exists only
// when credentials are configured.
func NewPool(cfg config.BrowserConfig, maxConcurrent int) *Pool {
	var cloud Backend
	if cfg.CloudConfigured() {
		cloud = NewCloudBackend(cfg.CloudAPIURL, cfg.CloudAPIKey)
	}
	return NewPoolWithBackends(cfg, maxConcurrent, NewLocalBackend(), cloud)
}

// NewPoolWithBackends injects backends directly; tests use it with fakes.
func NewPoolWithBackends(cfg config.BrowserConfig, maxConcurrent int, local, cloud Backend) *Pool {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	slots := make(chan struct{}, maxConcurrent)
	for i := 0; i < maxConcurrent; i++ {
		slots <- struct{}{}
	}
	return &Pool{
		cfg:       cfg,
		local:     local,
		cloud:     cloud,
		slots:     slots,
		startedAt: time.Now(),
	}
}

// CloudConfigured reports whether cloud acquisitions are possible at all.
func (p *Pool) CloudConfigured() bool { return p.cloud != nil }

// SetScreencast attaches the live-frame sink. Leases created afterwards push
// one JPEG frame per observation screenshot whenever the session has
// watchers; leases already out stay unwrapped.
func (p *Pool) SetScreencast(sink FrameSink) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.screencast = sink
}

func (p *Pool) frameSink() FrameSink {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.screencast
}

// ResolveMode picks the effective browser mode for a session run:
// explicit override, then the study's stored preference, then cloud when
// credentials exist, then local.
func (p *Pool) ResolveMode(override, studyPreference string) Mode {
	if m, err := ParseMode(override); err == nil {
		return m
	}
	if m, err := ParseMode(studyPreference); err == nil {
		return m
	}
	if p.CloudConfigured() {
		return ModeCloud
	}
	return ModeLocal
}

// Acquire blocks for a capacity slot (FIFO, bounded by the configured
// acquire timeout), then creates a page on the requested backend. Cloud
// requests fall back to local transparently on provider failure and are
// routed local outright while failover is active. All failures come back as
// *AcquisitionError; the caller fails the session, never the study.
func (p *Pool) Acquire(ctx context.Context, mode Mode, sessionID string, opts PageOptions) (*Lease, error) {
	timer := time.NewTimer(p.cfg.AcquireTimeout)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil, &AcquisitionError{Mode: mode, SessionID: sessionID, Err: ctx.Err()}
	case <-timer.C:
		return nil, &AcquisitionError{Mode: mode, SessionID: sessionID, Err: ErrAcquireTimeout}
	case <-p.slots:
	}

	lease, err := p.createLease(ctx, mode, sessionID, opts)
	if err != nil {
		p.slots <- struct{}{}
		return nil, err
	}
	return lease, nil
}

func (p *Pool) createLease(ctx context.Context, mode Mode, sessionID string, opts PageOptions) (*Lease, error) {
	effective := mode
	if mode == ModeCloud {
		switch {
		case p.cloud == nil:
			slog.Warn("Cloud browser requested but not configured, using local", "session_id", sessionID)
			effective = ModeLocal
		case p.FailoverActive():
			slog.Info("Cloud failover active, routing session to local browser", "session_id", sessionID)
			effective = ModeLocal
		}
	}

	var (
		page        PageDriver
		liveViewURL string
		err         error
	)

	if effective == ModeCloud {
		page, liveViewURL, err = p.cloud.NewPage(ctx, opts)
		if err != nil {
			p.recordCloudFailure()
			slog.Warn("Cloud browser acquisition failed, falling back to local",
				"session_id", sessionID, "error", err)
			effective = ModeLocal
		} else {
			p.recordCloudSuccess()
		}
	}

	if effective == ModeLocal {
		page, liveViewURL, err = p.local.NewPage(ctx, opts)
		if err != nil {
			p.mu.Lock()
			p.crashCount++
			p.mu.Unlock()
			return nil, &AcquisitionError{Mode: ModeLocal, SessionID: sessionID, Err: err}
		}
	}

	if sink := p.frameSink(); sink != nil {
		if frames, ok := page.(FrameCapturer); ok {
			quality := p.cfg.ScreencastQuality
			if quality <= 0 {
				quality = defaultFrameQuality
			}
			page = &screencastPage{
				PageDriver: page,
				frames:     frames,
				sessionID:  sessionID,
				sink:       sink,
				quality:    quality,
			}
		}
	}

	p.mu.Lock()
	p.active++
	p.mu.Unlock()

	lease := &Lease{
		SessionID:   sessionID,
		Mode:        effective,
		Page:        page,
		LiveViewURL: liveViewURL,
	}
	lease.release = func() {
		if err := page.Close(); err != nil {
			p.mu.Lock()
			p.crashCount++
			p.mu.Unlock()
			slog.Warn("Browser page close failed", "session_id", sessionID, "error", err)
		}
		p.mu.Lock()
		p.active--
		p.mu.Unlock()
		p.slots <- struct{}{}
	}
	return lease, nil
}

// FailoverActive reports whether acquisitions are currently pinned to local.
func (p *Pool) FailoverActive() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return time.Now().Before(p.failoverUntil)
}

func (p *Pool) recordCloudFailure() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.crashCount++
	now := time.Now()
	cutoff := now.Add(-p.cfg.FailureWindow)
	kept := p.cloudFailures[:0]
	for _, t := range p.cloudFailures {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	p.cloudFailures = append(kept, now)

	if len(p.cloudFailures) >= p.cfg.FailureThreshold && now.After(p.failoverUntil) {
		p.failoverUntil = now.Add(p.cfg.FailoverCooldown)
		p.cloudFailures = p.cloudFailures[:0]
		slog.Error("Cloud browser provider failing, entering local failover",
			"failures", p.cfg.FailureThreshold,
			"window", p.cfg.FailureWindow,
			"cooldown", p.cfg.FailoverCooldown)
	}
}

func (p *Pool) recordCloudSuccess() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cloudFailures = p.cloudFailures[:0]
}

func (p *Pool) clearFailover() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failoverUntil = time.Time{}
	p.cloudFailures = p.cloudFailures[:0]
}

// StartHealthProbe launches the background loop that re-checks the cloud
// provider while failover is active. No-op without a cloud backend.
func (p *Pool) StartHealthProbe() {
	if p.cloud == nil || p.probeStop != nil {
		return
	}
	p.probeStop = make(chan struct{})
	p.probeDone = make(chan struct{})
	go p.probeLoop()
	slog.Info("Browser pool health probe started", "interval", p.cfg.HealthProbeInterval)
}

// StopHealthProbe stops the probe loop and waits for it to exit.
func (p *Pool) StopHealthProbe() {
	if p.probeStop == nil {
		return
	}
	close(p.probeStop)
	<-p.probeDone
	p.probeStop = nil
	p.probeDone = nil
}

func (p *Pool) probeLoop() {
	defer close(p.probeDone)

	ticker := time.NewTicker(p.cfg.HealthProbeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-p.probeStop:
			return
		case <-ticker.C:
			if !p.FailoverActive() {
				continue
			}
			p.probeCloud()
		}
	}
}

// probeCloud attempts one throwaway cloud session. Success ends failover
// early; failure leaves the cooldown running.
func (p *Pool) probeCloud() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	page, _, err := p.cloud.NewPage(ctx, PageOptions{Width: 800, Height: 600})
	if err != nil {
		slog.Debug("Cloud health probe failed, staying in failover", "error", err)
		return
	}
	_ = page.Close()
	p.clearFailover()
	slog.Info("Cloud browser provider recovered, failover cleared")
}

// Stats snapshots the pool for the health endpoint.
func (p *Pool) Stats() Stats {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	p.mu.Lock()
	defer p.mu.Unlock()
	return Stats{
		Mode:           p.cfg.DefaultMode,
		ActiveSessions: p.active,
		UptimeS:        int64(time.Since(p.startedAt).Seconds()),
		CrashCount:     p.crashCount,
		FailoverActive: time.Now().Before(p.failoverUntil),
		MemoryMB:       int(mem.Sys / (1024 * 1024)),
	}
}

// Shutdown waits for outstanding leases to come back (bounded by ctx), then
// closes both backends. Called after the worker pool has drained.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.StopHealthProbe()

drain:
	for i := 0; i < cap(p.slots); i++ {
		select {
		case <-p.slots:
		case <-ctx.Done():
			slog.Warn("Browser pool shutdown timed out waiting for active sessions",
				"outstanding", cap(p.slots)-i)
			break drain
		}
	}

	var firstErr error
	if p.cloud != nil {
		if err := p.cloud.Close(); err != nil {
			firstErr = err
		}
	}
	if err := p.local.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	slog.Info("Browser pool shut down")
	return firstErr
}
