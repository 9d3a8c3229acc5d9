package navigator

import (
	"context"
	"strings"

	"github.com/wanderlens/wanderlens/pkg/browser"
)

// Blocker kinds reported in the synthetic give-up step.
const (
	blockerAuth    = "auth"
	blockerCaptcha = "captcha"
)

// blockerProbeText bounds how much page text the auth detector reads.
const blockerProbeText = 16 * 1024

// authURLPatterns flag pages the session was redirected onto that demand
// credentials before the task can continue.
var authURLPatterns = []string{
	"/login",
	"/log-in",
	"/signin",
	"/sign-in",
	"/sign_in",
	"/auth/",
	"//sso.",
	"//auth.",
	"//login.",
	"//accounts.",
}

// authContentPhrases catch auth walls served on arbitrary URLs.
var authContentPhrases = []string{
	"sign in to continue",
	"log in to continue",
	"login to continue",
	"please sign in",
	"please log in",
	"login required",
	"sign in required",
	"create an account to continue",
	"you must be logged in",
}

// captchaSelectors probe for the widgets of the common CAPTCHA providers.
var captchaSelectors = []string{
	`iframe[src*="recaptcha"]`,
	`iframe[src*="hcaptcha"]`,
	`iframe[src*="turnstile"]`,
	".g-recaptcha",
	".h-captcha",
	".cf-turnstile",
	"#captcha",
}

type blocker struct {
	kind string
	note string
}

// detectBlocker inspects the live page for terminal obstacles. It returns
// nil when the page is navigable. All probes are best-effort: a page that
// refuses to answer is not evidence of a blocker.
func detectBlocker(ctx context.Context, page browser.PageDriver) *blocker {
	for _, sel := range captchaSelectors {
		if found, err := page.Exists(ctx, sel); err == nil && found {
			return &blocker{kind: blockerCaptcha, note: "a CAPTCHA challenge is blocking the page"}
		}
	}

	url, err := page.URL(ctx)
	if err == nil {
		lowered := strings.ToLower(url)
		for _, pat := range authURLPatterns {
			if strings.Contains(lowered, pat) {
				return &blocker{kind: blockerAuth, note: "redirected to an authentication page at " + url}
			}
		}
	}

	text, err := page.Text(ctx, blockerProbeText)
	if err == nil {
		lowered := strings.ToLower(text)
		for _, phrase := range authContentPhrases {
			if strings.Contains(lowered, phrase) {
				return &blocker{kind: blockerAuth, note: "the page requires signing in before continuing"}
			}
		}
	}

	return nil
}
