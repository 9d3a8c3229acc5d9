package browser

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/ysmood/gson"
)

// stabilizationDelay is a short settle window applied after navigations so
// SPAs get a chance to paint before the first observation.
const stabilizationDelay = 500 * time.Millisecond

// localBackend launches one headless Chromium lazily and serves each lease
// from its own incognito context, so sessions never share cookies or storage.
type localBackend struct {
	mu      sync.Mutex
	launch  *launcher.Launcher
	browser *rod.Browser
	started bool
}

// NewLocalBackend returns the backend for locally launched browsers. The
// browser process starts on the first NewPage call, not at construction, so a
// replica that only ever serves cloud sessions never launches Chromium.
func NewLocalBackend() Backend {
	return &localBackend{}
}

// resolveBrowserBinary finds a Chromium binary: the ROD_BROWSER override
// first, then the system install, then a managed download.
func resolveBrowserBinary(ctx context.Context) (string, error) {
	if candidate := strings.TrimSpace(os.Getenv("ROD_BROWSER")); candidate != "" {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		slog.Warn("ROD_BROWSER is set but unusable, falling back", "path", candidate)
	}

	if bin, has := launcher.LookPath(); has {
		if _, err := os.Stat(bin); err == nil {
			return bin, nil
		}
	}

	dl := launcher.NewBrowser()
	dl.Context = ctx
	dl.Logger = log.New(io.Discard, "", 0)
	path, err := dl.Get()
	if err != nil {
		return "", err
	}
	slog.Info("Downloaded Chromium", "path", path)
	return path, nil
}

func (b *localBackend) ensureStarted(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.started {
		return nil
	}

	bin, err := resolveBrowserBinary(ctx)
	if err != nil {
		return fmt.Errorf("resolve browser binary: %w", err)
	}

	launch := launcher.New().
		Leakless(false).
		NoSandbox(true).
		Headless(true).
		Bin(bin).
		Set("disable-gpu", "1")

	controlURL, err := launch.Launch()
	if err != nil {
		return fmt.Errorf("launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		launch.Kill()
		return fmt.Errorf("connect browser: %w", err)
	}

	b.launch = launch
	b.browser = browser
	b.started = true
	slog.Info("Local browser launched", "binary", bin)
	return nil
}

func (b *localBackend) NewPage(ctx context.Context, opts PageOptions) (PageDriver, string, error) {
	if err := b.ensureStarted(ctx); err != nil {
		return nil, "", err
	}

	incognito, err := b.browser.Incognito()
	if err != nil {
		return nil, "", fmt.Errorf("incognito context: %w", err)
	}

	page, err := incognito.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		_ = incognito.Close()
		return nil, "", fmt.Errorf("create page: %w", err)
	}

	if err := applyViewport(page, opts); err != nil {
		slog.Warn("Failed to set viewport", "error", err)
	}

	return &rodPage{page: page, width: opts.Width, height: opts.Height, cleanup: func() {
		_ = incognito.Close()
	}}, "", nil
}

func (b *localBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.started {
		return nil
	}
	b.started = false
	err := b.browser.Close()
	b.launch.Kill()
	b.browser = nil
	b.launch = nil
	return err
}

func applyViewport(page *rod.Page, opts PageOptions) error {
	return proto.EmulationSetDeviceMetricsOverride{
		Width:             opts.Width,
		Height:            opts.Height,
		DeviceScaleFactor: 1.0,
		Mobile:            opts.Mobile,
	}.Call(page)
}

// rodPage implements PageDriver over a CDP-connected rod page. cleanup tears
// down whatever isolation wrapper the backend created (incognito context for
// local, the whole remote connection for cloud).
type rodPage struct {
	page      *rod.Page
	width     int
	height    int
	cleanup   func()
	closeOnce sync.Once
}

func (p *rodPage) Goto(ctx context.Context, url string) error {
	start := time.Now()
	nav := p.page.Context(ctx)
	if err := nav.Navigate(url); err != nil {
		return p.actionErr(ctx, "goto", url, start, err)
	}
	if err := nav.WaitLoad(); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return p.actionErr(ctx, "goto", url, start, err)
	}
	select {
	case <-time.After(stabilizationDelay):
	case <-ctx.Done():
	}
	return nil
}

func (p *rodPage) Screenshot(ctx context.Context) ([]byte, error) {
	shot, err := p.page.Context(ctx).Screenshot(false, nil)
	if err != nil {
		return nil, fmt.Errorf("screenshot: %w", err)
	}
	return shot, nil
}

// Frame captures a lossy JPEG of the viewport for the live screencast.
// Separate from Screenshot on purpose: analysis keeps lossless PNGs,
// watchers get small frames.
func (p *rodPage) Frame(ctx context.Context, quality int) ([]byte, error) {
	frame, err := p.page.Context(ctx).Screenshot(false, &proto.PageCaptureScreenshot{
		Format:  proto.PageCaptureScreenshotFormatJpeg,
		Quality: gson.Int(quality),
	})
	if err != nil {
		return nil, fmt.Errorf("frame: %w", err)
	}
	return frame, nil
}

func (p *rodPage) Evaluate(ctx context.Context, script string) ([]byte, error) {
	res, err := p.page.Context(ctx).Evaluate(&rod.EvalOptions{
		JS:           script,
		ByValue:      true,
		AwaitPromise: true,
	})
	if err != nil {
		return nil, fmt.Errorf("evaluate: %w", err)
	}
	if res == nil {
		return []byte("null"), nil
	}
	raw, err := res.Value.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("decode evaluate result: %w", err)
	}
	return raw, nil
}

func (p *rodPage) Click(ctx context.Context, selector string) (ClickPoint, error) {
	start := time.Now()
	el, err := p.page.Context(ctx).Element(selector)
	if err != nil {
		return ClickPoint{}, p.actionErr(ctx, "click", selector, start, err)
	}
	pt, err := el.Interactable()
	if err != nil {
		return ClickPoint{}, p.actionErr(ctx, "click", selector, start, err)
	}
	if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return ClickPoint{}, p.actionErr(ctx, "click", selector, start, err)
	}
	return ClickPoint{X: int(pt.X), Y: int(pt.Y)}, nil
}

func (p *rodPage) Fill(ctx context.Context, selector, value string) error {
	start := time.Now()
	el, err := p.page.Context(ctx).Element(selector)
	if err != nil {
		return p.actionErr(ctx, "fill", selector, start, err)
	}
	// Replace existing content rather than appending to it.
	_ = el.SelectAllText()
	if err := el.Input(value); err != nil {
		return p.actionErr(ctx, "fill", selector, start, err)
	}
	return nil
}

func (p *rodPage) Select(ctx context.Context, selector, value string) error {
	start := time.Now()
	raw, err := p.Evaluate(ctx, fmt.Sprintf(`() => (%s)(%q, %q)`, selectOptionJS, selector, value))
	if err != nil {
		return p.actionErr(ctx, "select", selector, start, err)
	}
	var out struct {
		OK     bool   `json:"ok"`
		Reason string `json:"reason"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("select %q: decode result: %w", selector, err)
	}
	if !out.OK {
		return p.actionErr(ctx, "select", selector, start, errors.New(out.Reason))
	}
	return nil
}

func (p *rodPage) Scroll(ctx context.Context, deltaY int) (int, error) {
	start := time.Now()
	raw, err := p.Evaluate(ctx, fmt.Sprintf(`() => (%s)(%d)`, scrollByJS, deltaY))
	if err != nil {
		return 0, p.actionErr(ctx, "scroll", "", start, err)
	}
	var y int
	if err := json.Unmarshal(raw, &y); err != nil {
		return 0, fmt.Errorf("scroll: decode result: %w", err)
	}
	return y, nil
}

func (p *rodPage) Back(ctx context.Context) error {
	start := time.Now()
	nav := p.page.Context(ctx)
	if err := nav.NavigateBack(); err != nil {
		return p.actionErr(ctx, "back", "", start, err)
	}
	if err := nav.WaitLoad(); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return p.actionErr(ctx, "back", "", start, err)
	}
	return nil
}

func (p *rodPage) URL(ctx context.Context) (string, error) {
	info, err := p.page.Context(ctx).Info()
	if err != nil {
		return "", fmt.Errorf("page info: %w", err)
	}
	return info.URL, nil
}

func (p *rodPage) Title(ctx context.Context) (string, error) {
	info, err := p.page.Context(ctx).Info()
	if err != nil {
		return "", fmt.Errorf("page info: %w", err)
	}
	return info.Title, nil
}

func (p *rodPage) ViewportSize() (int, int) {
	return p.width, p.height
}

func (p *rodPage) ScrollPosition(ctx context.Context) (int, int, error) {
	raw, err := p.Evaluate(ctx, scrollPositionJS)
	if err != nil {
		return 0, 0, err
	}
	var out struct {
		Y   int `json:"y"`
		Max int `json:"max"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return 0, 0, fmt.Errorf("decode scroll position: %w", err)
	}
	return out.Y, out.Max, nil
}

func (p *rodPage) Outline(ctx context.Context, maxElements int) (string, error) {
	raw, err := p.Evaluate(ctx, fmt.Sprintf(`() => (%s)(%d)`, outlineJS, maxElements))
	if err != nil {
		return "", err
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("decode outline: %w", err)
	}
	return s, nil
}

func (p *rodPage) Text(ctx context.Context, maxBytes int) (string, error) {
	raw, err := p.Evaluate(ctx, fmt.Sprintf(`() => (%s)(%d)`, pageTextJS, maxBytes))
	if err != nil {
		return "", err
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("decode page text: %w", err)
	}
	return s, nil
}

func (p *rodPage) Exists(ctx context.Context, selector string) (bool, error) {
	raw, err := p.Evaluate(ctx, fmt.Sprintf(`() => (%s)(%q)`, existsJS, selector))
	if err != nil {
		return false, err
	}
	var found bool
	if err := json.Unmarshal(raw, &found); err != nil {
		return false, fmt.Errorf("decode exists probe: %w", err)
	}
	return found, nil
}

func (p *rodPage) Timing(ctx context.Context) (Timing, error) {
	raw, err := p.Evaluate(ctx, timingJS)
	if err != nil {
		return Timing{}, err
	}
	var out struct {
		LoadMs       int `json:"loadMs"`
		FirstPaintMs int `json:"firstPaintMs"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return Timing{}, fmt.Errorf("decode timing: %w", err)
	}
	return Timing{LoadMs: out.LoadMs, FirstPaintMs: out.FirstPaintMs}, nil
}

func (p *rodPage) Close() error {
	var err error
	p.closeOnce.Do(func() {
		err = p.page.Close()
		if p.cleanup != nil {
			p.cleanup()
		}
	})
	return err
}

// actionErr classifies a failed page operation. Deadline expiry means the
// element never became ready (rod element lookups wait), which is the
// retry-eligible case; anything else passes through wrapped.
func (p *rodPage) actionErr(ctx context.Context, action, selector string, start time.Time, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &ActionTimeoutError{
			Action:   action,
			Selector: selector,
			Timeout:  time.Since(start).Round(time.Millisecond),
			Err:      err,
		}
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if selector != "" {
		return fmt.Errorf("%s %q: %w", action, selector, err)
	}
	return fmt.Errorf("%s: %w", action, err)
}
