package callback

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"
)

var ErrCallbackTimeout = errors.New("timed out waiting for oauth callback")

// Result is what the identity provider redirect delivered: either an
// authorization code or a provider-reported error. Exactly one of the two
// is set.
type Result struct {
	Code          string
	ProviderError string
}

// Server is a short-lived local HTTP listener standing in for the web
// app's /auth/callback route. The browser lands here after the provider
// consent screen. Browsers are free to re-request the redirect URL, so
// the handler answers every request but delivers a result only once.
type Server struct {
	listener   net.Listener
	server     *http.Server
	resultCh   chan Result
	resultOnce sync.Once
	closeOnce  sync.Once
}

func Start(listenAddr string) (*Server, error) {
	if listenAddr == "" {
		listenAddr = "127.0.0.1:0"
	}

	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return nil, fmt.Errorf("listen callback server: %w", err)
	}

	s := &Server{
		listener: listener,
		resultCh: make(chan Result, 1),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/callback", s.handleCallback)

	s.server = &http.Server{Handler: mux}

	go func() {
		if serveErr := s.server.Serve(s.listener); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			s.trySendResult(Result{ProviderError: serveErr.Error()})
		}
	}()

	return s, nil
}

func (s *Server) RedirectURI() string {
	if tcpAddr, ok := s.listener.Addr().(*net.TCPAddr); ok {
		return fmt.Sprintf("http://localhost:%d/auth/callback", tcpAddr.Port)
	}
	return "http://localhost/auth/callback"
}

// Wait blocks until the redirect arrives or the timeout expires, then
// shuts the listener down.
func (s *Server) Wait(timeout time.Duration) (Result, error) {
	defer func() { _ = s.Close() }()

	select {
	case result := <-s.resultCh:
		return result, nil
	case <-time.After(timeout):
		return Result{}, ErrCallbackTimeout
	}
}

func (s *Server) Close() error {
	var closeErr error
	s.closeOnce.Do(func() {
		closeErr = s.server.Close()
	})
	return closeErr
}

func (s *Server) handleCallback(w http.ResponseWriter, r *http.Request) {
	if oauthError := r.URL.Query().Get("error"); oauthError != "" {
		if description := r.URL.Query().Get("error_description"); description != "" {
			oauthError = oauthError + ": " + description
		}
		s.trySendResult(Result{ProviderError: oauthError})
		http.Error(w, "oauth error", http.StatusBadRequest)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "missing code", http.StatusBadRequest)
		return
	}

	s.trySendResult(Result{Code: code})
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Authentication complete. You can close this window and return to the terminal."))
}

func (s *Server) trySendResult(result Result) {
	s.resultOnce.Do(func() {
		s.resultCh <- result
	})
}
