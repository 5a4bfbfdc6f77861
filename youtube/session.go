// Package youtube reads a signed-in user's library: subscriptions, watch
// history, liked videos, watch later, recommendations, and playlists.
//
// Two implementations of profile.LibraryAccess are provided. Library
// talks to the private browse endpoint the web client uses and covers
// every collection. DataAPI talks to the public Data API v3 and covers
// only the collections that API exposes.
package youtube

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"yt2alt/internal/httpx"
)

// Sentinel errors for the youtube package.
var (
	// ErrNotSignedIn is returned when an operation needs credentials and
	// the session has none.
	ErrNotSignedIn = errors.New("youtube: not signed in")

	// ErrUnsupportedCollection is returned by DataAPI for collections the
	// public Data API does not expose.
	ErrUnsupportedCollection = errors.New("youtube: collection not available via the data api")

	// ErrEmptyResponse is returned when the browse endpoint answers with
	// a response that carries no recognizable content.
	ErrEmptyResponse = errors.New("youtube: empty browse response")
)

// revokeEndpoint is where an access token is invalidated on sign-out.
const revokeEndpoint = "https://oauth2.googleapis.com/revoke"

// youtubeScope grants read/write library access. Read-only would do for
// everything this tool does, but the TV device flow only accepts the
// full scope.
const youtubeScope = "https://www.googleapis.com/auth/youtube"

// DeviceAuthFunc is notified when the device flow is pending: the user
// has to open verificationURL in a browser and enter userCode.
type DeviceAuthFunc func(verificationURL, userCode string)

// SessionConfig configures the OAuth session.
type SessionConfig struct {
	// ClientID and ClientSecret identify the OAuth application.
	ClientID     string
	ClientSecret string

	// Endpoint overrides the OAuth endpoint. The zero value means
	// Google's endpoint; tests point this at a local server.
	Endpoint oauth2.Endpoint

	// RevokeURL overrides the token revocation endpoint.
	RevokeURL string
}

// Session holds the user's upstream credentials. A session starts signed
// out; SignIn runs the OAuth device flow and SignOut revokes the token.
type Session struct {
	oauth SessionConfig

	mu    sync.Mutex
	token *oauth2.Token
}

// NewSession creates a signed-out session.
func NewSession(cfg SessionConfig) *Session {
	if cfg.Endpoint.TokenURL == "" {
		cfg.Endpoint = google.Endpoint
	}
	if cfg.RevokeURL == "" {
		cfg.RevokeURL = revokeEndpoint
	}
	return &Session{oauth: cfg}
}

// oauthConfig builds the oauth2 configuration for the device flow.
func (s *Session) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     s.oauth.ClientID,
		ClientSecret: s.oauth.ClientSecret,
		Endpoint:     s.oauth.Endpoint,
		Scopes:       []string{youtubeScope},
	}
}

// SignIn runs the OAuth device flow. onPending is called once with the
// verification URL and user code; SignIn then blocks until the user
// approves, the flow fails, or ctx is done.
func (s *Session) SignIn(ctx context.Context, onPending DeviceAuthFunc) error {
	cfg := s.oauthConfig()

	auth, err := cfg.DeviceAuth(ctx)
	if err != nil {
		return fmt.Errorf("request device authorization: %w", err)
	}

	if onPending != nil {
		verificationURL := auth.VerificationURIComplete
		if verificationURL == "" {
			verificationURL = auth.VerificationURI
		}
		onPending(verificationURL, auth.UserCode)
	}

	token, err := cfg.DeviceAccessToken(ctx, auth)
	if err != nil {
		return fmt.Errorf("wait for device authorization: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	return nil
}

// SignedIn reports whether the session holds credentials.
func (s *Session) SignedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != nil
}

// TokenSource returns an auto-refreshing token source for the current
// credentials, or an error when signed out.
func (s *Session) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()

	if token == nil {
		return nil, ErrNotSignedIn
	}
	return s.oauthConfig().TokenSource(ctx, token), nil
}

// AuthHeaders returns the authorization headers for a request, or an
// error when signed out. The token is refreshed when expired.
func (s *Session) AuthHeaders(ctx context.Context) (map[string]string, error) {
	source, err := s.TokenSource(ctx)
	if err != nil {
		return nil, err
	}

	token, err := source.Token()
	if err != nil {
		return nil, fmt.Errorf("refresh access token: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	return map[string]string{
		"Authorization": token.Type() + " " + token.AccessToken,
	}, nil
}

// SignOut revokes the access token upstream and drops it locally. The
// local credentials are dropped even when revocation fails.
func (s *Session) SignOut(ctx context.Context) error {
	s.mu.Lock()
	token := s.token
	s.token = nil
	s.mu.Unlock()

	if token == nil {
		return nil
	}

	form := url.Values{"token": {token.AccessToken}}
	client := httpx.New(nil)
	defer client.Close()

	_, err := client.Do(ctx, "POST", s.oauth.RevokeURL, []byte(form.Encode()), map[string]string{
		"Content-Type": "application/x-www-form-urlencoded",
	})
	if err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}

	log.Printf("youtube: revoked token %s", maskToken(token.AccessToken))
	return nil
}

// maskToken renders a token safe for log output.
func maskToken(token string) string {
	if len(token) <= 8 {
		return strings.Repeat("*", len(token))
	}
	return token[:4] + "..." + token[len(token)-4:]
}
