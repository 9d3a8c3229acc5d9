package browser

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSink records published frames and reports a scripted watcher count.
type fakeSink struct {
	mu       sync.Mutex
	watchers int
	sessions []string
	frames   [][]byte
}

func (s *fakeSink) Watchers(string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.watchers
}

func (s *fakeSink) PublishFrame(sessionID string, jpeg []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = append(s.sessions, sessionID)
	s.frames = append(s.frames, jpeg)
}

func (s *fakeSink) published() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.frames)
}

func TestScreencastPublishesFramePerScreenshot(t *testing.T) {
	local := NewFakeBackend()
	pool := NewPoolWithBackends(testBrowserConfig(), 1, local, nil)
	sink := &fakeSink{watchers: 1}
	pool.SetScreencast(sink)

	lease, err := pool.Acquire(context.Background(), ModeLocal, "sess-1", desktopOpts())
	require.NoError(t, err)
	defer lease.Release()

	shot, err := lease.Page.Screenshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG\r\n\x1a\nfake"), shot,
		"screenshot must still return the lossless capture")

	require.Equal(t, 1, sink.published())
	assert.Equal(t, "sess-1", sink.sessions[0])
	assert.Equal(t, []byte("\xff\xd8\xfffake"), sink.frames[0])

	_, err = lease.Page.Screenshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, sink.published(), "one frame per screenshot")
}

func TestScreencastUsesConfiguredQuality(t *testing.T) {
	cfg := testBrowserConfig()
	cfg.ScreencastQuality = 85
	page := NewFakePage("about:blank")
	local := NewFakeBackend()
	local.NewPageFn = func(ctx context.Context, opts PageOptions) (PageDriver, string, error) {
		return page, "", nil
	}
	pool := NewPoolWithBackends(cfg, 1, local, nil)
	pool.SetScreencast(&fakeSink{watchers: 1})

	lease, err := pool.Acquire(context.Background(), ModeLocal, "sess-1", desktopOpts())
	require.NoError(t, err)
	defer lease.Release()

	_, err = lease.Page.Screenshot(context.Background())
	require.NoError(t, err)
	require.Len(t, page.FrameQualities, 1)
	assert.Equal(t, 85, page.FrameQualities[0])
}

func TestScreencastDefaultQualityWhenUnset(t *testing.T) {
	page := NewFakePage("about:blank")
	local := NewFakeBackend()
	local.NewPageFn = func(ctx context.Context, opts PageOptions) (PageDriver, string, error) {
		return page, "", nil
	}
	pool := NewPoolWithBackends(testBrowserConfig(), 1, local, nil)
	pool.SetScreencast(&fakeSink{watchers: 1})

	lease, err := pool.Acquire(context.Background(), ModeLocal, "sess-1", desktopOpts())
	require.NoError(t, err)
	defer lease.Release()

	_, err = lease.Page.Screenshot(context.Background())
	require.NoError(t, err)
	require.Len(t, page.FrameQualities, 1)
	assert.Equal(t, defaultFrameQuality, page.FrameQualities[0])
}

func TestScreencastSkipsCaptureWithoutWatchers(t *testing.T) {
	page := NewFakePage("about:blank")
	local := NewFakeBackend()
	local.NewPageFn = func(ctx context.Context, opts PageOptions) (PageDriver, string, error) {
		return page, "", nil
	}
	pool := NewPoolWithBackends(testBrowserConfig(), 1, local, nil)
	sink := &fakeSink{watchers: 0}
	pool.SetScreencast(sink)

	lease, err := pool.Acquire(context.Background(), ModeLocal, "sess-1", desktopOpts())
	require.NoError(t, err)
	defer lease.Release()

	_, err = lease.Page.Screenshot(context.Background())
	require.NoError(t, err)
	assert.Zero(t, page.Attempts["frame"], "nobody watching: no JPEG capture at all")
	assert.Zero(t, sink.published())
}

func TestScreencastFrameFailureKeepsScreenshot(t *testing.T) {
	page := NewFakePage("about:blank")
	page.FailActions["frame"] = errors.New("cdp: target detached")
	local := NewFakeBackend()
	local.NewPageFn = func(ctx context.Context, opts PageOptions) (PageDriver, string, error) {
		return page, "", nil
	}
	pool := NewPoolWithBackends(testBrowserConfig(), 1, local, nil)
	sink := &fakeSink{watchers: 1}
	pool.SetScreencast(sink)

	lease, err := pool.Acquire(context.Background(), ModeLocal, "sess-1", desktopOpts())
	require.NoError(t, err)
	defer lease.Release()

	shot, err := lease.Page.Screenshot(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, shot)
	assert.Zero(t, sink.published())
}

func TestScreencastLeaseUnwrappedWithoutSink(t *testing.T) {
	local := NewFakeBackend()
	pool := NewPoolWithBackends(testBrowserConfig(), 1, local, nil)

	lease, err := pool.Acquire(context.Background(), ModeLocal, "sess-1", desktopOpts())
	require.NoError(t, err)
	defer lease.Release()

	_, bare := lease.Page.(*FakePage)
	assert.True(t, bare, "no sink configured: page must not be decorated")
}

func TestScreencastReleaseClosesUnderlyingPage(t *testing.T) {
	page := NewFakePage("about:blank")
	local := NewFakeBackend()
	local.NewPageFn = func(ctx context.Context, opts PageOptions) (PageDriver, string, error) {
		return page, "", nil
	}
	pool := NewPoolWithBackends(testBrowserConfig(), 1, local, nil)
	pool.SetScreencast(&fakeSink{watchers: 1})

	lease, err := pool.Acquire(context.Background(), ModeLocal, "sess-1", desktopOpts())
	require.NoError(t, err)
	lease.Release()

	assert.True(t, page.Closed, "release must reach through the decorator")
	assert.Equal(t, 0, pool.Stats().ActiveSessions)
}
