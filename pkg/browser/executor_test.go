package browser

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderlens/wanderlens/pkg/models"
)

func testExecConfig() ExecutorConfig {
	return ExecutorConfig{PerActionTimeout: time.Second, Retries: 1}
}

func TestExecuteActionClickReportsCoordinates(t *testing.T) {
	page := NewFakePage("https://example.com")

	outcome, err := ExecuteAction(context.Background(), page,
		models.Action{Type: models.ActionClick, Selector: "#cta"}, testExecConfig())
	require.NoError(t, err)

	require.NotNil(t, outcome.ClickX)
	require.NotNil(t, outcome.ClickY)
	assert.Equal(t, 100, *outcome.ClickX)
	assert.Equal(t, 200, *outcome.ClickY)
	assert.Equal(t, []string{"#cta"}, page.Clicks)
}

func TestExecuteActionRetriesTimedOutClick(t *testing.T) {
	page := NewFakePage("https://example.com")
	page.FailActions["click"] = &ActionTimeoutError{Action: "click", Selector: "#cta", Timeout: time.Second}
	page.FailCount["click"] = 1 // first attempt times out, retry succeeds

	outcome, err := ExecuteAction(context.Background(), page,
		models.Action{Type: models.ActionClick, Selector: "#cta"}, testExecConfig())
	require.NoError(t, err)

	assert.Equal(t, 2, page.Attempts["click"])
	assert.NotNil(t, outcome.ClickX)
}

func TestExecuteActionRetryBudgetExhausted(t *testing.T) {
	page := NewFakePage("https://example.com")
	page.FailActions["click"] = &ActionTimeoutError{Action: "click", Selector: "#cta", Timeout: time.Second}

	_, err := ExecuteAction(context.Background(), page,
		models.Action{Type: models.ActionClick, Selector: "#cta"}, testExecConfig())
	require.Error(t, err)

	assert.True(t, IsActionTimeout(err))
	// Retries=1 means exactly two attempts.
	assert.Equal(t, 2, page.Attempts["click"])
}

func TestExecuteActionPermanentFailureIsNotRetried(t *testing.T) {
	page := NewFakePage("https://example.com")
	page.FailActions["click"] = errors.New("target page crashed")

	_, err := ExecuteAction(context.Background(), page,
		models.Action{Type: models.ActionClick, Selector: "#cta"}, testExecConfig())
	require.Error(t, err)

	assert.False(t, IsActionTimeout(err))
	assert.Equal(t, 1, page.Attempts["click"])
}

func TestExecuteActionScrollMovesMostOfViewport(t *testing.T) {
	page := NewFakePage("https://example.com")

	_, err := ExecuteAction(context.Background(), page,
		models.Action{Type: models.ActionScroll}, testExecConfig())
	require.NoError(t, err)

	assert.Equal(t, int(float64(900)*scrollStepFraction), page.ScrollY)

	// Scrolling up moves back toward the top, clamped at zero.
	_, err = ExecuteAction(context.Background(), page,
		models.Action{Type: models.ActionScroll, Value: "up"}, testExecConfig())
	require.NoError(t, err)
	assert.Equal(t, 0, page.ScrollY)
}

func TestExecuteActionGotoNavigates(t *testing.T) {
	page := NewFakePage("https://example.com")

	_, err := ExecuteAction(context.Background(), page,
		models.Action{Type: models.ActionGoto, Value: "https://example.com/pricing"}, testExecConfig())
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/pricing", page.CurrentURL)
}

func TestExecuteActionRejectsInvalidAction(t *testing.T) {
	page := NewFakePage("https://example.com")

	_, err := ExecuteAction(context.Background(), page,
		models.Action{Type: models.ActionClick}, testExecConfig())
	require.Error(t, err)

	// Validation failures never touch the page.
	assert.Zero(t, page.Attempts["click"])
}

func TestExecuteActionTerminalActionsTouchNothing(t *testing.T) {
	page := NewFakePage("https://example.com")

	for _, typ := range []models.ActionType{models.ActionDone, models.ActionGiveUp} {
		_, err := ExecuteAction(context.Background(), page, models.Action{Type: typ}, testExecConfig())
		require.NoError(t, err)
	}
	assert.Empty(t, page.Clicks)
	assert.Empty(t, page.Gotos)
	assert.Zero(t, page.Scrolls)
}

func TestExecuteActionFillReplacesValue(t *testing.T) {
	page := NewFakePage("https://example.com")

	_, err := ExecuteAction(context.Background(), page,
		models.Action{Type: models.ActionFill, Selector: "input[name=email]", Value: "kim@example.com"},
		testExecConfig())
	require.NoError(t, err)

	assert.Equal(t, "kim@example.com", page.Fills["input[name=email]"])
}
