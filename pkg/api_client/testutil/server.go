package testutil

import (
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
)

// NewTestServer start een httptest.Server voor nep-providerendpoints; in een
// omgeving zonder netwerkrechten wordt de test overgeslagen.
func NewTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()

	l, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		t.Skipf("skip: cannot listen in sandbox: %v", err)
	}

	srv := &httptest.Server{
		Listener: l,
		Config:   &http.Server{Handler: handler},
	}
	srv.Start()
	t.Cleanup(srv.Close)
	return srv
}
