package browser

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/wanderlens/wanderlens/pkg/config"
)

func testBrowserConfig() config.BrowserConfig {
	return config.BrowserConfig{
		DefaultMode:         config.BrowserModeLocal,
		AcquireTimeout:      200 * time.Millisecond,
		FailoverCooldown:    time.Minute,
		FailureThreshold:    3,
		FailureWindow:       5 * time.Minute,
		HealthProbeInterval: 10 * time.Millisecond,
	}
}

func desktopOpts() PageOptions {
	return PageOptions{Width: 1440, Height: 900}
}

func TestPoolAcquireAndRelease(t *testing.T) {
	local := NewFakeBackend()
	pool := NewPoolWithBackends(testBrowserConfig(), 2, local, nil)

	lease, err := pool.Acquire(context.Background(), ModeLocal, "sess-1", desktopOpts())
	require.NoError(t, err)
	require.NotNil(t, lease.Page)
	assert.Equal(t, ModeLocal, lease.Mode)
	assert.Empty(t, lease.LiveViewURL)
	assert.Equal(t, 1, pool.Stats().ActiveSessions)

	lease.Release()
	assert.Equal(t, 0, pool.Stats().ActiveSessions)

	// Release is idempotent: a second call must not double-free the slot.
	lease.Release()
	assert.Equal(t, 0, pool.Stats().ActiveSessions)

	page := lease.Page.(*FakePage)
	assert.True(t, page.Closed)
}

func TestPoolCapacityBlocksUntilRelease(t *testing.T) {
	local := NewFakeBackend()
	pool := NewPoolWithBackends(testBrowserConfig(), 1, local, nil)

	first, err := pool.Acquire(context.Background(), ModeLocal, "sess-1", desktopOpts())
	require.NoError(t, err)

	// Pool is full: the second acquire times out with the typed error.
	_, err = pool.Acquire(context.Background(), ModeLocal, "sess-2", desktopOpts())
	require.Error(t, err)
	assert.True(t, IsAcquisitionError(err))
	assert.ErrorIs(t, err, ErrAcquireTimeout)

	first.Release()

	second, err := pool.Acquire(context.Background(), ModeLocal, "sess-3", desktopOpts())
	require.NoError(t, err)
	second.Release()
}

func TestPoolAcquireHonorsContext(t *testing.T) {
	cfg := testBrowserConfig()
	cfg.AcquireTimeout = time.Minute
	local := NewFakeBackend()
	pool := NewPoolWithBackends(cfg, 1, local, nil)

	holder, err := pool.Acquire(context.Background(), ModeLocal, "holder", desktopOpts())
	require.NoError(t, err)
	defer holder.Release()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = pool.Acquire(ctx, ModeLocal, "waiter", desktopOpts())
	require.Error(t, err)
	assert.True(t, IsAcquisitionError(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPoolCloudLeaseCarriesLiveViewURL(t *testing.T) {
	local := NewFakeBackend()
	cloud := NewFakeBackend()
	cloud.LiveViewURL = "https://provider.example/live/abc"
	pool := NewPoolWithBackends(testBrowserConfig(), 2, local, cloud)

	lease, err := pool.Acquire(context.Background(), ModeCloud, "sess-1", desktopOpts())
	require.NoError(t, err)
	defer lease.Release()

	assert.Equal(t, ModeCloud, lease.Mode)
	assert.Equal(t, "https://provider.example/live/abc", lease.LiveViewURL)
	assert.Equal(t, 1, cloud.Created)
	assert.Equal(t, 0, local.Created)
}

func TestPoolCloudFailureFallsBackToLocal(t *testing.T) {
	local := NewFakeBackend()
	cloud := NewFakeBackend()
	cloud.FailNext(1, errors.New("provider 503"))
	pool := NewPoolWithBackends(testBrowserConfig(), 2, local, cloud)

	lease, err := pool.Acquire(context.Background(), ModeCloud, "sess-1", desktopOpts())
	require.NoError(t, err)
	defer lease.Release()

	assert.Equal(t, ModeLocal, lease.Mode)
	assert.Empty(t, lease.LiveViewURL)
	assert.Equal(t, 1, local.Created)
	// One failure is below the threshold: failover must not latch yet.
	assert.False(t, pool.FailoverActive())
}

func TestPoolFailoverLatchesAfterThreshold(t *testing.T) {
	local := NewFakeBackend()
	cloud := NewFakeBackend()
	cloud.FailNext(3, errors.New("provider down"))
	pool := NewPoolWithBackends(testBrowserConfig(), 5, local, cloud)

	for i := 0; i < 3; i++ {
		lease, err := pool.Acquire(context.Background(), ModeCloud, "sess", desktopOpts())
		require.NoError(t, err)
		assert.Equal(t, ModeLocal, lease.Mode)
		lease.Release()
	}

	require.True(t, pool.FailoverActive())
	assert.True(t, pool.Stats().FailoverActive)

	// While failover is active, cloud requests are routed local without
	// touching the provider at all.
	before := cloud.Created
	lease, err := pool.Acquire(context.Background(), ModeCloud, "sess-4", desktopOpts())
	require.NoError(t, err)
	assert.Equal(t, ModeLocal, lease.Mode)
	assert.Equal(t, before, cloud.Created)
	lease.Release()
}

func TestPoolFailoverExpiresAfterCooldown(t *testing.T) {
	cfg := testBrowserConfig()
	cfg.FailoverCooldown = 30 * time.Millisecond
	local := NewFakeBackend()
	cloud := NewFakeBackend()
	cloud.FailNext(3, errors.New("provider down"))
	pool := NewPoolWithBackends(cfg, 5, local, cloud)

	for i := 0; i < 3; i++ {
		lease, err := pool.Acquire(context.Background(), ModeCloud, "sess", desktopOpts())
		require.NoError(t, err)
		lease.Release()
	}
	require.True(t, pool.FailoverActive())

	require.Eventually(t, func() bool { return !pool.FailoverActive() },
		time.Second, 5*time.Millisecond)

	lease, err := pool.Acquire(context.Background(), ModeCloud, "sess-after", desktopOpts())
	require.NoError(t, err)
	assert.Equal(t, ModeCloud, lease.Mode)
	lease.Release()
}

func TestPoolHealthProbeClearsFailover(t *testing.T) {
	defer goleak.VerifyNone(t)

	local := NewFakeBackend()
	cloud := NewFakeBackend()
	cloud.FailNext(3, errors.New("provider down"))
	pool := NewPoolWithBackends(testBrowserConfig(), 5, local, cloud)

	for i := 0; i < 3; i++ {
		lease, err := pool.Acquire(context.Background(), ModeCloud, "sess", desktopOpts())
		require.NoError(t, err)
		lease.Release()
	}
	require.True(t, pool.FailoverActive())

	// Provider is healthy again; the probe should notice and clear failover
	// long before the one-minute cooldown does.
	pool.StartHealthProbe()
	defer pool.StopHealthProbe()

	require.Eventually(t, func() bool { return !pool.FailoverActive() },
		2*time.Second, 10*time.Millisecond)
}

func TestPoolCloudUnconfiguredRoutesLocal(t *testing.T) {
	local := NewFakeBackend()
	pool := NewPoolWithBackends(testBrowserConfig(), 2, local, nil)

	lease, err := pool.Acquire(context.Background(), ModeCloud, "sess-1", desktopOpts())
	require.NoError(t, err)
	defer lease.Release()

	assert.Equal(t, ModeLocal, lease.Mode)
	assert.False(t, pool.CloudConfigured())
}

func TestPoolLocalFailureReturnsAcquisitionError(t *testing.T) {
	local := NewFakeBackend()
	local.FailNext(1, errors.New("chromium refused to start"))
	pool := NewPoolWithBackends(testBrowserConfig(), 1, local, nil)

	_, err := pool.Acquire(context.Background(), ModeLocal, "sess-1", desktopOpts())
	require.Error(t, err)
	assert.True(t, IsAcquisitionError(err))

	// The slot must be returned on failure or the pool would leak capacity.
	lease, err := pool.Acquire(context.Background(), ModeLocal, "sess-2", desktopOpts())
	require.NoError(t, err)
	lease.Release()
}

func TestPoolResolveMode(t *testing.T) {
	local := NewFakeBackend()

	tests := []struct {
		name     string
		cloud    Backend
		override string
		pref     string
		want     Mode
	}{
		{"override wins", NewFakeBackend(), "local", "cloud", ModeLocal},
		{"invalid override falls through", NewFakeBackend(), "firefox", "local", ModeLocal},
		{"study preference", NewFakeBackend(), "", "cloud", ModeCloud},
		{"cloud when configured", NewFakeBackend(), "", "", ModeCloud},
		{"local when unconfigured", nil, "", "", ModeLocal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPoolWithBackends(testBrowserConfig(), 1, local, tt.cloud)
			assert.Equal(t, tt.want, pool.ResolveMode(tt.override, tt.pref))
		})
	}
}

func TestPoolStats(t *testing.T) {
	local := NewFakeBackend()
	pool := NewPoolWithBackends(testBrowserConfig(), 3, local, nil)

	lease, err := pool.Acquire(context.Background(), ModeLocal, "sess-1", desktopOpts())
	require.NoError(t, err)

	stats := pool.Stats()
	assert.Equal(t, config.BrowserModeLocal, stats.Mode)
	assert.Equal(t, 1, stats.ActiveSessions)
	assert.GreaterOrEqual(t, stats.UptimeS, int64(0))
	assert.Positive(t, stats.MemoryMB)
	assert.False(t, stats.FailoverActive)

	lease.Release()
}

func TestPoolShutdownClosesBackends(t *testing.T) {
	local := NewFakeBackend()
	cloud := NewFakeBackend()
	pool := NewPoolWithBackends(testBrowserConfig(), 2, local, cloud)

	lease, err := pool.Acquire(context.Background(), ModeLocal, "sess-1", desktopOpts())
	require.NoError(t, err)
	lease.Release()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, pool.Shutdown(ctx))

	assert.Equal(t, 1, local.ClosedAt)
	assert.Equal(t, 1, cloud.ClosedAt)
}
