package browser

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// FakePage is an in-memory PageDriver for tests. Every operation succeeds by
// default; tests script failures and page content through the public fields.
// Safe for concurrent use.
type FakePage struct {
	mu sync.Mutex

	// Current page state, mutated by Goto/Scroll and readable mid-test.
	CurrentURL   string
	CurrentTitle string
	ScrollY      int
	MaxScrollY   int

	Width  int
	Height int

	// PNGBytes is returned by Screenshot. Defaults to a tiny placeholder.
	PNGBytes []byte
	// JPEGBytes is returned by Frame. Defaults to a tiny placeholder.
	JPEGBytes []byte
	// FrameQualities records the quality argument of every Frame call.
	FrameQualities []int
	// OutlineText is returned by Outline.
	OutlineText string
	// BodyText is returned by Text (auth-wall keyword detection reads this).
	BodyText string
	// ExistingSelectors answer Exists probes (CAPTCHA detection, consent).
	ExistingSelectors map[string]bool
	// PageTiming is returned by Timing.
	PageTiming Timing

	// GotoDelay simulates slow navigation; Goto blocks for it or until ctx.
	GotoDelay time.Duration
	// FailActions maps an action name ("click", "goto", ...) to the error
	// its method returns. An *ActionTimeoutError here exercises retries.
	FailActions map[string]error
	// FailCount bounds scripted failures per action: when set, each failure
	// decrements it and the action succeeds once it reaches zero. Absent
	// entries fail unconditionally while FailActions has the action.
	FailCount map[string]int
	// URLByGoto rewrites CurrentURL on Goto; identity when nil.
	URLByGoto func(url string) string

	// Counters for assertions.
	Attempts map[string]int
	Clicks   []string
	Fills    map[string]string
	Gotos    []string
	Scrolls  int
	Closed   bool
}

// NewFakePage returns a FakePage with sane defaults for a desktop viewport.
func NewFakePage(url string) *FakePage {
	return &FakePage{
		CurrentURL:        url,
		CurrentTitle:      "Fake Page",
		Width:             1440,
		Height:            900,
		MaxScrollY:        2000,
		PNGBytes:          []byte("\x89PNG\r\n\x1a\nfake"),
		JPEGBytes:         []byte("\xff\xd8\xfffake"),
		OutlineText:       `<h1> h1:nth-of-type(1) "Welcome"` + "\n" + `<button> #cta "Get started"`,
		BodyText:          "Welcome to the fake page",
		ExistingSelectors: map[string]bool{},
		PageTiming:        Timing{LoadMs: 420, FirstPaintMs: 180},
		FailActions:       map[string]error{},
		FailCount:         map[string]int{},
		Attempts:          map[string]int{},
		Fills:             map[string]string{},
	}
}

func (f *FakePage) fail(action string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Attempts[action]++
	err, ok := f.FailActions[action]
	if !ok {
		return nil
	}
	if n, counted := f.FailCount[action]; counted {
		if n <= 0 {
			return nil
		}
		f.FailCount[action] = n - 1
	}
	return err
}

func (f *FakePage) Goto(ctx context.Context, url string) error {
	if err := f.fail("goto"); err != nil {
		return err
	}
	f.mu.Lock()
	delay := f.GotoDelay
	f.mu.Unlock()
	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return &ActionTimeoutError{Action: "goto", Selector: url, Timeout: delay, Err: ctx.Err()}
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Gotos = append(f.Gotos, url)
	if f.URLByGoto != nil {
		f.CurrentURL = f.URLByGoto(url)
	} else {
		f.CurrentURL = url
	}
	f.ScrollY = 0
	return nil
}

func (f *FakePage) Screenshot(ctx context.Context) ([]byte, error) {
	if err := f.fail("screenshot"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.PNGBytes, nil
}

func (f *FakePage) Frame(ctx context.Context, quality int) ([]byte, error) {
	if err := f.fail("frame"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.FrameQualities = append(f.FrameQualities, quality)
	return f.JPEGBytes, nil
}

func (f *FakePage) Evaluate(ctx context.Context, script string) ([]byte, error) {
	if err := f.fail("evaluate"); err != nil {
		return nil, err
	}
	return []byte("null"), nil
}

func (f *FakePage) Click(ctx context.Context, selector string) (ClickPoint, error) {
	if err := f.fail("click"); err != nil {
		return ClickPoint{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Clicks = append(f.Clicks, selector)
	return ClickPoint{X: 100, Y: 200}, nil
}

func (f *FakePage) Fill(ctx context.Context, selector, value string) error {
	if err := f.fail("fill"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Fills[selector] = value
	return nil
}

func (f *FakePage) Select(ctx context.Context, selector, value string) error {
	if err := f.fail("select"); err != nil {
		return err
	}
	return nil
}

func (f *FakePage) Scroll(ctx context.Context, deltaY int) (int, error) {
	if err := f.fail("scroll"); err != nil {
		return 0, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Scrolls++
	f.ScrollY += deltaY
	if f.ScrollY < 0 {
		f.ScrollY = 0
	}
	if f.ScrollY > f.MaxScrollY {
		f.ScrollY = f.MaxScrollY
	}
	return f.ScrollY, nil
}

func (f *FakePage) Back(ctx context.Context) error {
	return f.fail("back")
}

func (f *FakePage) URL(ctx context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.CurrentURL, nil
}

func (f *FakePage) Title(ctx context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.CurrentTitle, nil
}

func (f *FakePage) ViewportSize() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Width, f.Height
}

func (f *FakePage) ScrollPosition(ctx context.Context) (int, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ScrollY, f.MaxScrollY, nil
}

func (f *FakePage) Outline(ctx context.Context, maxElements int) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.OutlineText, nil
}

func (f *FakePage) Text(ctx context.Context, maxBytes int) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.BodyText) > maxBytes {
		return f.BodyText[:maxBytes], nil
	}
	return f.BodyText, nil
}

func (f *FakePage) Exists(ctx context.Context, selector string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ExistingSelectors[selector], nil
}

func (f *FakePage) Timing(ctx context.Context) (Timing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.PageTiming, nil
}

func (f *FakePage) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Closed = true
	return nil
}

// SetURL updates the fake's current URL mid-test (e.g. a click that
// "navigates").
func (f *FakePage) SetURL(url string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CurrentURL = url
}

// SetBodyText swaps the visible text (e.g. to simulate an auth wall).
func (f *FakePage) SetBodyText(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.BodyText = text
}

// FakeBackend serves FakePages and counts acquisitions. FailNext makes the
// next n NewPage calls fail, which is how tests trip cloud failover.
type FakeBackend struct {
	mu          sync.Mutex
	failNext    int
	failErr     error
	LiveViewURL string
	// NewPageFn overrides page construction when set.
	NewPageFn func(ctx context.Context, opts PageOptions) (PageDriver, string, error)

	Created  int
	ClosedAt int
}

func NewFakeBackend() *FakeBackend {
	return &FakeBackend{}
}

// FailNext makes the next n acquisitions fail with err.
func (b *FakeBackend) FailNext(n int, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failNext = n
	b.failErr = err
}

func (b *FakeBackend) NewPage(ctx context.Context, opts PageOptions) (PageDriver, string, error) {
	b.mu.Lock()
	if b.failNext > 0 {
		b.failNext--
		err := b.failErr
		b.mu.Unlock()
		if err == nil {
			err = fmt.Errorf("fake backend: scripted failure")
		}
		return nil, "", err
	}
	b.Created++
	fn := b.NewPageFn
	liveView := b.LiveViewURL
	b.mu.Unlock()

	if fn != nil {
		return fn(ctx, opts)
	}
	page := NewFakePage("about:blank")
	page.Width = opts.Width
	page.Height = opts.Height
	return page, liveView, nil
}

func (b *FakeBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ClosedAt++
	return nil
}
