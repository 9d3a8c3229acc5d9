package browser

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// cloudBackend provisions remote browser sessions over the provider's REST
// API and drives them through the CDP websocket URL the provider returns.
// Each lease is its own remote session, released with a DELETE on close.
type cloudBackend struct {
	httpClient *http.Client
	apiURL     string
	apiKey     string
}

// NewCloudBackend returns the backend for the cloud browser provider.
func NewCloudBackend(apiURL, apiKey string) Backend {
	return &cloudBackend{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		apiURL:     strings.TrimRight(apiURL, "/"),
		apiKey:     apiKey,
	}
}

// cloudSession is the provider's session resource.
type cloudSession struct {
	ID          string `json:"id"`
	CDPWSURL    string `json:"cdp_ws_url"`
	LiveViewURL string `json:"live_view_url"`
}

type createSessionRequest struct {
	ViewportWidth  int  `json:"viewport_width"`
	ViewportHeight int  `json:"viewport_height"`
	Mobile         bool `json:"mobile"`
}

func (b *cloudBackend) NewPage(ctx context.Context, opts PageOptions) (PageDriver, string, error) {
	sess, err := b.createSession(ctx, opts)
	if err != nil {
		return nil, "", err
	}

	browser := rod.New().ControlURL(sess.CDPWSURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		b.deleteSession(sess.ID)
		return nil, "", fmt.Errorf("connect cloud browser %s: %w", sess.ID, err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		_ = browser.Close()
		b.deleteSession(sess.ID)
		return nil, "", fmt.Errorf("create cloud page: %w", err)
	}

	if err := applyViewport(page, opts); err != nil {
		slog.Warn("Failed to set cloud viewport", "session_id", sess.ID, "error", err)
	}

	sessionID := sess.ID
	return &rodPage{page: page, width: opts.Width, height: opts.Height, cleanup: func() {
		_ = browser.Close()
		b.deleteSession(sessionID)
	}}, sess.LiveViewURL, nil
}

func (b *cloudBackend) createSession(ctx context.Context, opts PageOptions) (*cloudSession, error) {
	body, err := json.Marshal(createSessionRequest{
		ViewportWidth:  opts.Width,
		ViewportHeight: opts.Height,
		Mobile:         opts.Mobile,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal session request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.apiURL+"/v1/sessions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+b.apiKey)

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("create cloud session: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("cloud provider returned HTTP %d: %s", resp.StatusCode, string(snippet))
	}

	var sess cloudSession
	if err := json.NewDecoder(resp.Body).Decode(&sess); err != nil {
		return nil, fmt.Errorf("decode session response: %w", err)
	}
	if sess.CDPWSURL == "" {
		return nil, fmt.Errorf("cloud provider returned session %q without a CDP URL", sess.ID)
	}
	return &sess, nil
}

// deleteSession is best-effort teardown; the provider reaps idle sessions on
// its own timeout anyway.
func (b *cloudBackend) deleteSession(id string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, b.apiURL+"/v1/sessions/"+id, nil)
	if err != nil {
		return
	}
	req.Header.Set("Authorization", "Bearer "+b.apiKey)

	resp, err := b.httpClient.Do(req)
	if err != nil {
		slog.Warn("Failed to release cloud session", "session_id", id, "error", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		slog.Warn("Cloud session release returned error status", "session_id", id, "status", resp.StatusCode)
	}
}

func (b *cloudBackend) Close() error { return nil }
