package browser

import (
	"context"
	"log/slog"
)

// defaultFrameQuality is the JPEG compression used for live frames when the
// config leaves screencast_quality unset. 60 keeps a desktop-viewport frame
// in the tens of kilobytes, small enough to push one per step to every
// watcher.
const defaultFrameQuality = 60

// FrameSink receives live JPEG frames for watched sessions. Satisfied by
// *events.ScreencastHub.
type FrameSink interface {
	// Watchers reports how many clients are watching a session. Frame
	// capture is skipped entirely at zero.
	Watchers(sessionID string) int
	PublishFrame(sessionID string, jpeg []byte)
}

// FrameCapturer is the optional page capability behind live screencasting: a
// lossy JPEG capture, much smaller than the PNG screenshots kept for
// analysis. Pages that don't implement it aren't streamable and the pool
// leaves them unwrapped.
type FrameCapturer interface {
	Frame(ctx context.Context, quality int) ([]byte, error)
}

// screencastPage decorates a leased page so that every observation
// screenshot also pushes one JPEG frame to the session's watchers. The
// navigation loop screenshots once per step, so watchers see the page at step
// cadence, exactly as the persona saw it. Frame failures are logged and
// swallowed: live viewing must never cost the session its screenshot.
type screencastPage struct {
	PageDriver

	frames    FrameCapturer
	sessionID string
	sink      FrameSink
	quality   int
}

func (p *screencastPage) Screenshot(ctx context.Context) ([]byte, error) {
	shot, err := p.PageDriver.Screenshot(ctx)
	if err != nil {
		return nil, err
	}
	if p.sink.Watchers(p.sessionID) > 0 {
		frame, err := p.frames.Frame(ctx, p.quality)
		if err != nil {
			slog.Debug("Screencast frame capture failed",
				"session_id", p.sessionID, "error", err)
			return shot, nil
		}
		p.sink.PublishFrame(p.sessionID, frame)
	}
	return shot, nil
}
