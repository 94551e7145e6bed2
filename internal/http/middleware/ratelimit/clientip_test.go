package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientIP(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		remote string
		want   string
	}{
		"dispatcher ipv4":       {remote: "10.20.0.7:443", want: "10.20.0.7"},
		"requester ipv6":        {remote: "[2001:db8::1]:8080", want: "2001:db8::1"},
		"bare address":          {remote: "10.20.0.7", want: "10.20.0.7"},
		"unix socket peer":      {remote: "@", want: "@"},
		"no peer from test rig": {remote: "", want: "unknown"},
	}
	for name, tc := range cases {
		r := httptest.NewRequest(http.MethodGet, "http://shiphub.local/company/requests", nil)
		r.RemoteAddr = tc.remote
		if got := clientIP(r); got != tc.want {
			t.Fatalf("%s: clientIP(%q) = %q, want %q", name, tc.remote, got, tc.want)
		}
	}
}
