package clientip

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromRequest(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		trust   bool
		want    string
	}{
		{"remote addr", nil, "8.8.8.8:5555", true, "8.8.8.8"},
		{"cloudflare wins", map[string]string{"CF-Connecting-IP": "1.1.1.1", "X-Forwarded-For": "9.9.9.9"}, "10.0.0.1:1", true, "1.1.1.1"},
		{"first forwarded entry", map[string]string{"X-Forwarded-For": "9.9.9.9, 10.0.0.2"}, "10.0.0.1:1", true, "9.9.9.9"},
		{"private forwarded ignored", map[string]string{"X-Forwarded-For": "192.168.1.5"}, "10.0.0.1:1", true, "10.0.0.1"},
		{"documentation range ignored", map[string]string{"Client-IP": "203.0.113.7"}, "10.0.0.1:1", true, "10.0.0.1"},
		{"untrusted headers", map[string]string{"X-Forwarded-For": "9.9.9.9"}, "10.0.0.1:1", false, "10.0.0.1"},
		{"ipv6 remote", nil, "[2606:4700::1111]:443", true, "2606:4700::1111"},
		{"garbage", map[string]string{"X-Forwarded-For": "nope"}, "nope", true, Unknown},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tc.remote
			for k, v := range tc.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tc.want, FromRequest(r, tc.trust))
		})
	}
}
