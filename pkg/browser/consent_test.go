package browser

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDismissConsentClicksKnownManager(t *testing.T) {
	page := NewFakePage("https://example.com")
	page.ExistingSelectors["#onetrust-accept-btn-handler"] = true

	dismissed := DismissConsent(context.Background(), page)

	assert.True(t, dismissed)
	assert.Equal(t, []string{"#onetrust-accept-btn-handler"}, page.Clicks)
}

func TestDismissConsentNoBannerIsSilent(t *testing.T) {
	page := NewFakePage("https://example.com")

	dismissed := DismissConsent(context.Background(), page)

	assert.False(t, dismissed)
	assert.Empty(t, page.Clicks)
}

func TestDismissConsentSwallowsClickFailure(t *testing.T) {
	page := NewFakePage("https://example.com")
	page.ExistingSelectors["#onetrust-accept-btn-handler"] = true
	page.FailActions["click"] = errors.New("element detached")

	// Dismissal is best-effort: a failed click must not surface an error,
	// and the text-heuristic fallback (Evaluate) still runs.
	dismissed := DismissConsent(context.Background(), page)
	assert.False(t, dismissed)
}
