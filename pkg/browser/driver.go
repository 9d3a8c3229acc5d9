// Package browser provides the managed browser layer: a capacity-bounded
// pool that hands out page leases backed by either a locally launched
// headless Chromium or a cloud browser provider, plus the action executor
// the navigation loop drives pages with.
package browser

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Mode selects which backend a page lease is served from.
type Mode string

const (
	ModeLocal Mode = "local"
	ModeCloud Mode = "cloud"
)

// ParseMode validates a mode string from config or a study row.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeLocal, ModeCloud:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown browser mode %q", s)
	}
}

// PageOptions shape the page a lease is created with. Width/Height come from
// the persona's device preference.
type PageOptions struct {
	Width  int
	Height int
	Mobile bool
}

// ClickPoint is the viewport coordinate an element click landed on.
type ClickPoint struct {
	X int
	Y int
}

// Timing carries page load metrics read from the Performance API.
// Values are -1 when the browser could not report them.
type Timing struct {
	LoadMs       int
	FirstPaintMs int
}

// PageDriver is the per-page surface the navigation loop drives. The rod
// implementation backs it with CDP; tests use the in-memory fake. All
// blocking methods honor ctx, and the element-oriented ones return
// *ActionTimeoutError when the element never became ready in time.
type PageDriver interface {
	// Goto navigates and waits for the load event (best effort within ctx).
	Goto(ctx context.Context, url string) error
	// Screenshot captures the current viewport as PNG.
	Screenshot(ctx context.Context) ([]byte, error)
	// Evaluate runs a JS function expression and returns its JSON value.
	Evaluate(ctx context.Context, script string) ([]byte, error)

	Click(ctx context.Context, selector string) (ClickPoint, error)
	Fill(ctx context.Context, selector, value string) error
	Select(ctx context.Context, selector, value string) error
	// Scroll scrolls the window vertically and returns the new scroll Y.
	Scroll(ctx context.Context, deltaY int) (int, error)
	Back(ctx context.Context) error

	URL(ctx context.Context) (string, error)
	Title(ctx context.Context) (string, error)
	ViewportSize() (width, height int)

	// ScrollPosition reports the current scroll Y and the maximum scrollable Y.
	ScrollPosition(ctx context.Context) (y, max int, err error)
	// Outline renders a compact text outline of visible interactive elements.
	Outline(ctx context.Context, maxElements int) (string, error)
	// Text returns the visible page text, truncated to maxBytes.
	Text(ctx context.Context, maxBytes int) (string, error)
	// Exists probes a selector without waiting.
	Exists(ctx context.Context, selector string) (bool, error)
	// Timing reports load metrics for the last navigation.
	Timing(ctx context.Context) (Timing, error)

	Close() error
}

// Backend creates pages for one mode. The pool owns backends; leases own pages.
type Backend interface {
	// NewPage creates an isolated page. liveViewURL is empty for backends
	// without an inspectable remote view.
	NewPage(ctx context.Context, opts PageOptions) (page PageDriver, liveViewURL string, err error)
	Close() error
}

// ActionTimeoutError marks a retry-eligible browser action failure: the
// element never became ready, or the action overran its per-action deadline.
type ActionTimeoutError struct {
	Action   string
	Selector string
	Timeout  time.Duration
	Err      error
}

func (e *ActionTimeoutError) Error() string {
	if e.Selector != "" {
		return fmt.Sprintf("%s %q timed out after %s: %v", e.Action, e.Selector, e.Timeout, e.Err)
	}
	return fmt.Sprintf("%s timed out after %s: %v", e.Action, e.Timeout, e.Err)
}

func (e *ActionTimeoutError) Unwrap() error { return e.Err }

// IsActionTimeout reports whether err is (or wraps) an ActionTimeoutError.
func IsActionTimeout(err error) bool {
	var ate *ActionTimeoutError
	return errors.As(err, &ate)
}

// ErrAcquireTimeout is wrapped by AcquisitionError when the wait deadline
// passed with no free slot.
var ErrAcquireTimeout = errors.New("browser acquisition timed out")

// AcquisitionError reports a failed pool acquisition. The session that hit it
// fails without consuming a browser; the rest of the study proceeds.
type AcquisitionError struct {
	Mode      Mode
	SessionID string
	Err       error
}

func (e *AcquisitionError) Error() string {
	return fmt.Sprintf("acquire %s browser for session %s: %v", e.Mode, e.SessionID, e.Err)
}

func (e *AcquisitionError) Unwrap() error { return e.Err }

// IsAcquisitionError reports whether err is (or wraps) an AcquisitionError.
func IsAcquisitionError(err error) bool {
	var ae *AcquisitionError
	return errors.As(err, &ae)
}
