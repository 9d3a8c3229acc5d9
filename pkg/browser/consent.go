package browser

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// consentSelectors are accept buttons of the consent managers we see most,
// probed in order. Selector probes are instant (no element wait), so a page
// without a banner pays almost nothing.
var consentSelectors = []string{
	"#onetrust-accept-btn-handler",                             // OneTrust
	"#CybotCookiebotDialogBodyLevelButtonLevelOptinAllowAll",   // CookieBot
	"#CybotCookiebotDialogBodyButtonAccept",                    // CookieBot (older)
	"button[aria-label='Accept all']",
	"button[aria-label='Accept all cookies']",
	"[data-testid='cookie-policy-manage-dialog-accept-button']", // Meta properties
	".cc-allow",      // cookieconsent widget
	".cm-btn-accept", // klaro
}

// consentTextPhrases is the fallback: click the first small visible button
// whose text starts with one of these. Lowercase; matched against trimmed
// button text.
var consentTextPhrases = []string{
	"accept all",
	"accept cookies",
	"allow all",
	"i agree",
	"agree and close",
	"got it",
}

// consentProbeTimeout bounds the whole dismissal attempt so a hung page
// cannot eat into the step budget.
const consentProbeTimeout = 3 * time.Second

// DismissConsent tries to clear a cookie-consent banner. Best-effort and
// silent: every failure path just returns false. Returns true when a banner
// button was clicked.
func DismissConsent(ctx context.Context, page PageDriver) bool {
	ctx, cancel := context.WithTimeout(ctx, consentProbeTimeout)
	defer cancel()

	for _, selector := range consentSelectors {
		found, err := page.Exists(ctx, selector)
		if err != nil || !found {
			continue
		}
		if _, err := page.Click(ctx, selector); err != nil {
			slog.Debug("Consent button found but click failed", "selector", selector, "error", err)
			continue
		}
		slog.Debug("Dismissed consent banner", "selector", selector)
		return true
	}

	phrases, err := json.Marshal(consentTextPhrases)
	if err != nil {
		return false
	}
	raw, err := page.Evaluate(ctx, fmt.Sprintf(`() => (%s)(%s)`, clickTextButtonJS, phrases))
	if err != nil {
		return false
	}
	var clicked bool
	if err := json.Unmarshal(raw, &clicked); err != nil || !clicked {
		return false
	}
	slog.Debug("Dismissed consent banner via text heuristic")
	return true
}
