package navigator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderlens/wanderlens/pkg/browser"
	"github.com/wanderlens/wanderlens/pkg/config"
	"github.com/wanderlens/wanderlens/pkg/llm"
	"github.com/wanderlens/wanderlens/pkg/models"
	"github.com/wanderlens/wanderlens/pkg/recorder"
)

// captureRecorder collects StepInputs in memory, failing fast on a dead
// context like the real recorder would.
type captureRecorder struct {
	mu    sync.Mutex
	steps []recorder.StepInput
	err   error
}

func (c *captureRecorder) RecordStep(ctx context.Context, in recorder.StepInput) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return "", c.err
	}
	c.steps = append(c.steps, in)
	return fmt.Sprintf("step-%d", len(c.steps)), nil
}

func (c *captureRecorder) recorded() []recorder.StepInput {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]recorder.StepInput(nil), c.steps...)
}

func testStudyConfig(maxSteps int) config.StudyConfig {
	return config.StudyConfig{
		MaxStepsPerSession: maxSteps,
		SessionTimeout:     5 * time.Second,
		PerActionTimeout:   200 * time.Millisecond,
		ActionRetries:      1,
	}
}

func testInput(page browser.PageDriver) Input {
	return Input{
		StudyID:   "study-1",
		SessionID: "sess-1",
		Persona:   models.PersonaProfile{Name: "Maya"},
		Task:      "Find the pricing page",
		StartURL:  "https://example.com",
		Page:      page,
	}
}

func clickDecision(selector string, progress int) models.Decision {
	return models.Decision{
		ThinkAloud:     "This looks promising, clicking it.",
		EmotionalState: models.EmotionCurious,
		Action:         models.Action{Type: models.ActionClick, Selector: selector},
		Confidence:     0.8,
		TaskProgress:   progress,
	}
}

func doneDecision() models.Decision {
	return models.Decision{
		ThinkAloud:     "Found it, that's the pricing page.",
		EmotionalState: models.EmotionSatisfied,
		Action:         models.Action{Type: models.ActionDone},
		Confidence:     0.95,
		TaskProgress:   100,
	}
}

func giveUpDecision(reason string) models.Decision {
	return models.Decision{
		ThinkAloud:     "I give up, this is going nowhere.",
		EmotionalState: models.EmotionFrustrated,
		Action:         models.Action{Type: models.ActionGiveUp, Description: reason},
		Confidence:     0.9,
		TaskProgress:   20,
	}
}

func actionTimeout(action, selector string) *browser.ActionTimeoutError {
	return &browser.ActionTimeoutError{
		Action:   action,
		Selector: selector,
		Timeout:  200 * time.Millisecond,
		Err:      context.DeadlineExceeded,
	}
}

// solidPNG renders a real decodable screenshot so the visual diff sees
// identical frames.
func solidPNG(t *testing.T, w, h int, c color.RGBA) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestNavigateSessionCompletesOnDone(t *testing.T) {
	page := browser.NewFakePage("about:blank")
	stub := &llm.StubClient{DecisionFn: llm.Decisions(clickDecision("#cta", 40), doneDecision())}
	rec := &captureRecorder{}
	nav := NewNavigator(stub, rec, testStudyConfig(10))

	res := nav.NavigateSession(context.Background(), testInput(page))

	require.NoError(t, res.Err)
	assert.True(t, res.TaskCompleted)
	assert.False(t, res.GaveUp)
	assert.Equal(t, 2, res.TotalSteps)
	assert.Contains(t, res.Summary, "Completed the task in 2 steps")
	assert.Equal(t, []string{models.EmotionCurious, models.EmotionSatisfied}, res.EmotionalArc)

	steps := rec.recorded()
	require.Len(t, steps, 2)
	assert.Equal(t, 1, steps[0].StepNumber)
	assert.Equal(t, models.ActionClick, steps[0].Decision.Action.Type)
	assert.Equal(t, "https://example.com", steps[0].Observation.URL)
	assert.NotEmpty(t, steps[0].Observation.Screenshot)
	assert.Equal(t, models.ActionDone, steps[1].Decision.Action.Type)
	assert.Contains(t, page.Clicks, "#cta")

	require.Len(t, stub.DecisionCalls, 2)
	assert.Equal(t, 1, stub.DecisionCalls[0].StepNumber)
	assert.Equal(t, 10, stub.DecisionCalls[0].MaxSteps)
	assert.Empty(t, stub.DecisionCalls[0].History)
	require.Len(t, stub.DecisionCalls[1].History, 1)
	assert.Equal(t, "ok", stub.DecisionCalls[1].History[0].Outcome)
}

func TestNavigateSessionConvergesOnFullProgress(t *testing.T) {
	page := browser.NewFakePage("about:blank")
	final := clickDecision("#submit", 100)
	stub := &llm.StubClient{DecisionFn: llm.Decisions(final)}
	rec := &captureRecorder{}
	nav := NewNavigator(stub, rec, testStudyConfig(10))

	res := nav.NavigateSession(context.Background(), testInput(page))

	require.NoError(t, res.Err)
	assert.True(t, res.TaskCompleted)
	assert.Equal(t, 1, res.TotalSteps)
	assert.Len(t, stub.DecisionCalls, 1)
	assert.Contains(t, page.Clicks, "#submit")
}

func TestNavigateSessionModelGivesUp(t *testing.T) {
	page := browser.NewFakePage("about:blank")
	stub := &llm.StubClient{DecisionFn: llm.Decisions(giveUpDecision("the pricing link is nowhere to be found"))}
	rec := &captureRecorder{}
	nav := NewNavigator(stub, rec, testStudyConfig(10))

	res := nav.NavigateSession(context.Background(), testInput(page))

	require.NoError(t, res.Err)
	assert.True(t, res.GaveUp)
	assert.False(t, res.TaskCompleted)
	assert.Equal(t, 1, res.TotalSteps)
	assert.Contains(t, res.Summary, "Gave up after 1 steps")
	assert.Contains(t, res.Summary, "the pricing link is nowhere to be found")
	// Frustration peaked on the only page visited.
	assert.Contains(t, res.Summary, "https://example.com")

	steps := rec.recorded()
	require.Len(t, steps, 1)
	assert.Equal(t, models.ActionGiveUp, steps[0].Decision.Action.Type)
	// Terminal actions never reach the page.
	assert.Zero(t, page.Attempts["click"])
}

func TestNavigateSessionExhaustsBudget(t *testing.T) {
	page := browser.NewFakePage("about:blank")
	stub := &llm.StubClient{DecisionFn: llm.Decisions(clickDecision("#next", 30))}
	rec := &captureRecorder{}
	nav := NewNavigator(stub, rec, testStudyConfig(4))

	res := nav.NavigateSession(context.Background(), testInput(page))

	require.NoError(t, res.Err)
	assert.True(t, res.GaveUp)
	assert.Equal(t, 4, res.TotalSteps)
	assert.Contains(t, res.Summary, "Exhausted the step budget (4 steps)")
	assert.Len(t, rec.recorded(), 4)
	assert.Len(t, stub.DecisionCalls, 4)
}

func TestNavigateSessionTimesOut(t *testing.T) {
	page := browser.NewFakePage("about:blank")
	page.GotoDelay = time.Second
	stub := &llm.StubClient{}
	rec := &captureRecorder{}
	cfg := testStudyConfig(10)
	cfg.SessionTimeout = 50 * time.Millisecond
	nav := NewNavigator(stub, rec, cfg)

	res := nav.NavigateSession(context.Background(), testInput(page))

	require.NoError(t, res.Err)
	assert.True(t, res.GaveUp)
	assert.Equal(t, 0, res.TotalSteps)
	assert.Contains(t, res.Summary, "timed out")
	assert.Empty(t, rec.recorded())
}

func TestNavigateSessionCancelledReturnsError(t *testing.T) {
	page := browser.NewFakePage("about:blank")
	stub := &llm.StubClient{}
	rec := &captureRecorder{}
	nav := NewNavigator(stub, rec, testStudyConfig(10))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := nav.NavigateSession(ctx, testInput(page))

	require.Error(t, res.Err)
	assert.ErrorIs(t, res.Err, context.Canceled)
	assert.False(t, res.GaveUp)
	assert.Empty(t, rec.recorded())
}

func TestNavigateSessionFeedsBackActionFailure(t *testing.T) {
	page := browser.NewFakePage("about:blank")
	page.FailActions["click"] = actionTimeout("click", "#cta")
	page.FailCount["click"] = 2 // both executor attempts of the first click
	stub := &llm.StubClient{DecisionFn: llm.Decisions(
		clickDecision("#cta", 30),
		clickDecision("#cta-footer", 60),
		doneDecision(),
	)}
	rec := &captureRecorder{}
	nav := NewNavigator(stub, rec, testStudyConfig(10))

	res := nav.NavigateSession(context.Background(), testInput(page))

	require.NoError(t, res.Err)
	assert.True(t, res.TaskCompleted)
	assert.Equal(t, 3, res.TotalSteps)
	assert.Len(t, rec.recorded(), 3)

	require.Len(t, stub.DecisionCalls, 3)
	assert.Empty(t, stub.DecisionCalls[0].BlockerNote)
	assert.Contains(t, stub.DecisionCalls[1].BlockerNote, "click action failed")
	assert.Empty(t, stub.DecisionCalls[2].BlockerNote)
	require.Len(t, stub.DecisionCalls[2].History, 2)
	assert.NotEqual(t, "ok", stub.DecisionCalls[2].History[0].Outcome)
	assert.Equal(t, "ok", stub.DecisionCalls[2].History[1].Outcome)

	// Two failed attempts, then one successful click on the retry step.
	assert.Equal(t, 3, page.Attempts["click"])
}

func TestNavigateSessionFailsAfterConsecutiveTimeouts(t *testing.T) {
	page := browser.NewFakePage("about:blank")
	page.FailActions["click"] = actionTimeout("click", "#cta")
	stub := &llm.StubClient{DecisionFn: llm.Decisions(clickDecision("#cta", 10))}
	rec := &captureRecorder{}
	nav := NewNavigator(stub, rec, testStudyConfig(10))

	res := nav.NavigateSession(context.Background(), testInput(page))

	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "consecutive")
	assert.False(t, res.GaveUp)
	assert.Equal(t, maxConsecutiveActionFailures, res.TotalSteps)
	assert.Len(t, rec.recorded(), maxConsecutiveActionFailures)
}

func TestNavigateSessionNonTimeoutActionFailureFails(t *testing.T) {
	page := browser.NewFakePage("about:blank")
	page.FailActions["click"] = errors.New("target closed")
	stub := &llm.StubClient{DecisionFn: llm.Decisions(clickDecision("#cta", 10))}
	rec := &captureRecorder{}
	nav := NewNavigator(stub, rec, testStudyConfig(10))

	res := nav.NavigateSession(context.Background(), testInput(page))

	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "executing step 1")
	// The attempt is still on the record.
	assert.Equal(t, 1, res.TotalSteps)
	assert.Len(t, rec.recorded(), 1)
	// Non-timeout errors are not retried.
	assert.Equal(t, 1, page.Attempts["click"])
}

func TestNavigateSessionSchemaErrorRecordsDiagnosticStep(t *testing.T) {
	page := browser.NewFakePage("about:blank")
	calls := 0
	stub := &llm.StubClient{DecisionFn: func(in llm.DecisionInput) (*models.Decision, error) {
		calls++
		if calls == 1 {
			return nil, &llm.SchemaError{Capability: "navigate", Err: errors.New("not json")}
		}
		d := doneDecision()
		return &d, nil
	}}
	rec := &captureRecorder{}
	nav := NewNavigator(stub, rec, testStudyConfig(10))

	res := nav.NavigateSession(context.Background(), testInput(page))

	require.NoError(t, res.Err)
	assert.True(t, res.TaskCompleted)
	assert.Equal(t, 2, res.TotalSteps)

	steps := rec.recorded()
	require.Len(t, steps, 2)
	assert.Equal(t, models.ActionWait, steps[0].Decision.Action.Type)
	assert.Zero(t, steps[0].Decision.Confidence)
	assert.Contains(t, steps[0].Decision.ThinkAloud, "decision unavailable")

	require.Len(t, stub.DecisionCalls, 2)
	assert.Contains(t, stub.DecisionCalls[1].BlockerNote, "could not be parsed")
}

func TestNavigateSessionRetriesTransientDecision(t *testing.T) {
	page := browser.NewFakePage("about:blank")
	calls := 0
	stub := &llm.StubClient{DecisionFn: func(in llm.DecisionInput) (*models.Decision, error) {
		calls++
		if calls == 1 {
			return nil, &llm.TransientError{Capability: "navigate", Err: errors.New("gateway restarting")}
		}
		d := doneDecision()
		return &d, nil
	}}
	rec := &captureRecorder{}
	nav := NewNavigator(stub, rec, testStudyConfig(10))
	nav.retryInitial = time.Millisecond
	nav.retryMax = 5 * time.Millisecond

	res := nav.NavigateSession(context.Background(), testInput(page))

	require.NoError(t, res.Err)
	assert.True(t, res.TaskCompleted)
	// The retry happened inside step 1: no budget consumed.
	assert.Equal(t, 1, res.TotalSteps)
	assert.Len(t, stub.DecisionCalls, 2)
	require.Len(t, rec.recorded(), 1)
	assert.Equal(t, 1, rec.recorded()[0].StepNumber)
}

func TestNavigateSessionCaptchaBlocksSession(t *testing.T) {
	page := browser.NewFakePage("about:blank")
	page.ExistingSelectors[`iframe[src*="recaptcha"]`] = true
	stub := &llm.StubClient{DecisionFn: llm.Decisions(clickDecision("#cta", 30))}
	rec := &captureRecorder{}
	nav := NewNavigator(stub, rec, testStudyConfig(10))

	res := nav.NavigateSession(context.Background(), testInput(page))

	require.NoError(t, res.Err)
	assert.True(t, res.GaveUp)
	assert.Equal(t, 2, res.TotalSteps)
	assert.Contains(t, res.Summary, "CAPTCHA")

	steps := rec.recorded()
	require.Len(t, steps, 2)
	assert.Equal(t, models.ActionGiveUp, steps[1].Decision.Action.Type)
	assert.Equal(t, 2, steps[1].StepNumber)
	assert.Equal(t, models.EmotionFrustrated, steps[1].Decision.EmotionalState)
	require.NotEmpty(t, res.EmotionalArc)
	assert.Equal(t, models.EmotionFrustrated, res.EmotionalArc[len(res.EmotionalArc)-1])
}

func TestNavigateSessionAuthWallBlocksSession(t *testing.T) {
	page := browser.NewFakePage("about:blank")
	goLogin := models.Decision{
		ThinkAloud:     "Maybe the account area has it.",
		EmotionalState: models.EmotionCurious,
		Action:         models.Action{Type: models.ActionGoto, Value: "https://example.com/login"},
		Confidence:     0.6,
		TaskProgress:   20,
	}
	stub := &llm.StubClient{DecisionFn: llm.Decisions(goLogin)}
	rec := &captureRecorder{}
	nav := NewNavigator(stub, rec, testStudyConfig(10))

	res := nav.NavigateSession(context.Background(), testInput(page))

	require.NoError(t, res.Err)
	assert.True(t, res.GaveUp)
	assert.Contains(t, res.Summary, "authentication")

	steps := rec.recorded()
	require.Len(t, steps, 2)
	assert.Equal(t, "https://example.com/login", steps[1].Observation.URL)
}

func TestNavigateSessionHintsWhenPageStaysStatic(t *testing.T) {
	page := browser.NewFakePage("about:blank")
	page.PNGBytes = solidPNG(t, 64, 64, color.RGBA{R: 240, G: 240, B: 240, A: 255})
	stub := &llm.StubClient{DecisionFn: llm.Decisions(
		clickDecision("#a", 10),
		clickDecision("#b", 20),
		clickDecision("#c", 30),
		clickDecision("#d", 40),
		doneDecision(),
	)}
	rec := &captureRecorder{}
	nav := NewNavigator(stub, rec, testStudyConfig(10))

	res := nav.NavigateSession(context.Background(), testInput(page))

	require.NoError(t, res.Err)
	require.Len(t, stub.DecisionCalls, 5)
	assert.False(t, stub.DecisionCalls[0].StuckHint)
	assert.False(t, stub.DecisionCalls[1].StuckHint)
	assert.False(t, stub.DecisionCalls[2].StuckHint)
	// Three identical frames behind us by step 4.
	assert.True(t, stub.DecisionCalls[3].StuckHint)
}

func TestNavigateSessionDismissesConsentOnNewPage(t *testing.T) {
	page := browser.NewFakePage("about:blank")
	page.ExistingSelectors["#onetrust-accept-btn-handler"] = true
	stub := &llm.StubClient{DecisionFn: llm.Decisions(doneDecision())}
	rec := &captureRecorder{}
	nav := NewNavigator(stub, rec, testStudyConfig(10))

	res := nav.NavigateSession(context.Background(), testInput(page))

	require.NoError(t, res.Err)
	assert.Equal(t, []string{"#onetrust-accept-btn-handler"}, page.Clicks)
}

func TestEmotionalArcPeakFrustration(t *testing.T) {
	arc := &emotionalArc{}
	arc.add(models.EmotionCurious, "https://a")
	arc.add(models.EmotionFrustrated, "https://b")
	arc.add(models.EmotionCurious, "https://c")
	arc.add(models.EmotionConfused, "https://d")
	arc.add(models.EmotionFrustrated, "https://d")
	arc.add(models.EmotionAnxious, "https://d")

	assert.Equal(t, "https://d", arc.peakFrustrationURL())
	assert.Len(t, arc.sequence(), 6)
}

func TestEmotionalArcNoFrustration(t *testing.T) {
	arc := &emotionalArc{}
	arc.add(models.EmotionCurious, "https://a")
	arc.add(models.EmotionSatisfied, "https://a")
	assert.Empty(t, arc.peakFrustrationURL())
}

func TestDiffGuardFlagsStaticFrames(t *testing.T) {
	a := solidPNG(t, 32, 32, color.RGBA{R: 250, G: 250, B: 250, A: 255})
	b := solidPNG(t, 32, 32, color.RGBA{A: 255})

	g := &diffGuard{}
	assert.False(t, g.observe(a)) // priming frame
	assert.False(t, g.observe(a))
	assert.False(t, g.observe(a))
	assert.True(t, g.observe(a)) // third identical pair
	assert.False(t, g.observe(b), "a real change resets the run")
}

func TestDiffGuardIgnoresUndecodableFrames(t *testing.T) {
	g := &diffGuard{}
	junk := []byte("not a png")
	assert.False(t, g.observe(junk))
	assert.False(t, g.observe(junk))
	assert.False(t, g.observe(junk))
	assert.False(t, g.observe(junk), "unknown diffs never count as identical")
}

func TestDiffScoreDimensionsMismatch(t *testing.T) {
	a := solidPNG(t, 32, 32, color.RGBA{A: 255})
	b := solidPNG(t, 16, 16, color.RGBA{A: 255})
	assert.Equal(t, -1.0, diffScore(a, b))
}

func TestLoopStateThreshold(t *testing.T) {
	s := &loopState{}
	s.recordFailure("timeout", true)
	s.recordFailure("timeout", true)
	assert.False(t, s.shouldAbortOnFailures())
	s.recordSuccess()
	s.recordFailure("timeout", true)
	s.recordFailure("timeout", true)
	s.recordFailure("timeout", true)
	assert.True(t, s.shouldAbortOnFailures())
}
