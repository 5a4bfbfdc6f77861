package invidious

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/url"
	"sync"
)

// DefaultCallbackPort is the fixed local port the authorization redirect
// lands on. Only one callback server may be active per process.
const DefaultCallbackPort = 8998

// callbackPath is the route the Invidious redirect points at.
const callbackPath = "/invidious/token_callback"

// CallbackServer bridges the browser-based authorization redirect to an
// in-process waiting caller. It accepts exactly one token delivery and
// then shuts itself down; requests without a token are rejected with 400
// and the listener keeps waiting.
type CallbackServer struct {
	port int

	mu       sync.Mutex
	listener net.Listener
	srv      *http.Server
	token    string

	resolve   sync.Once
	closeOnce sync.Once
	tokenCh   chan string
}

// NewCallbackServer creates a callback server on the default port.
func NewCallbackServer() *CallbackServer {
	return NewCallbackServerOn(DefaultCallbackPort)
}

// NewCallbackServerOn creates a callback server on a specific port.
// Port 0 binds an ephemeral port, which is only useful for tests.
func NewCallbackServerOn(port int) *CallbackServer {
	return &CallbackServer{
		port:    port,
		tokenCh: make(chan string, 1),
	}
}

// URL returns the callback URL the authorization redirect should target.
func (s *CallbackServer) URL() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	port := s.port
	if s.listener != nil {
		if addr, ok := s.listener.Addr().(*net.TCPAddr); ok {
			port = addr.Port
		}
	}
	return fmt.Sprintf("http://localhost:%d%s", port, callbackPath)
}

// Start binds the listener and begins serving. It returns as soon as the
// listener is accepting connections; it does not wait for the token.
func (s *CallbackServer) Start() error {
	listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", s.port))
	if err != nil {
		return fmt.Errorf("listen on callback port: %w", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc(callbackPath, s.handleCallback)

	srv := &http.Server{Handler: mux}

	s.mu.Lock()
	s.listener = listener
	s.srv = srv
	s.mu.Unlock()

	go func() {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("invidious: callback server stopped: %v", err)
		}
	}()

	return nil
}

// AwaitToken blocks until the authorization redirect delivers a token,
// or until ctx is done. A token, once received, is cached: repeat calls
// return it immediately without listening again. Without a deadline on
// ctx a server that never receives a callback blocks forever.
func (s *CallbackServer) AwaitToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()
	if token != "" {
		return token, nil
	}

	select {
	case token := <-s.tokenCh:
		return token, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// handleCallback processes the redirect. The token arrives double
// percent-encoded: the query parser decodes it once and we decode it
// again. Only the first token-bearing request resolves the waiting
// caller; once answered, the server closes and never accepts another
// connection.
func (s *CallbackServer) handleCallback(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("token")
	if raw == "" {
		http.Error(w, "missing token parameter", http.StatusBadRequest)
		return
	}

	token, err := url.QueryUnescape(raw)
	if err != nil {
		http.Error(w, "malformed token parameter", http.StatusBadRequest)
		return
	}

	s.resolve.Do(func() {
		s.mu.Lock()
		s.token = token
		s.mu.Unlock()
		s.tokenCh <- token
	})

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "Token received. You can close this window and return to yt2alt.")

	// The one token this server exists for has arrived.
	go s.Close()
}

// Close shuts the listener down. Safe to call more than once.
func (s *CallbackServer) Close() error {
	var err error
	s.closeOnce.Do(func() {
		s.mu.Lock()
		srv := s.srv
		s.mu.Unlock()
		if srv != nil {
			err = srv.Shutdown(context.Background())
		}
	})
	return err
}
