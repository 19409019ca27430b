// Package clientip resolves a best-effort origin address for a request.
package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

const Unknown = "0.0.0.0"

var forwardedHeaders = []string{"CF-Connecting-IP", "Client-IP", "X-Forwarded-For"}

// FromRequest returns the first public address found in the proxy headers
// (when trusted), falling back to the connection's remote address.
func FromRequest(r *http.Request, trustHeaders bool) string {
	if trustHeaders {
		for _, h := range forwardedHeaders {
			v := r.Header.Get(h)
			if v == "" {
				continue
			}
			first, _, _ := strings.Cut(v, ",")
			if addr, ok := parse(first); ok && isPublic(addr) {
				return addr.String()
			}
		}
	}

	if addr, ok := parse(hostOnly(r.RemoteAddr)); ok {
		return addr.String()
	}
	return Unknown
}

func hostOnly(remote string) string {
	if host, _, err := net.SplitHostPort(remote); err == nil {
		return host
	}
	return remote
}

func parse(s string) (netip.Addr, bool) {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return netip.Addr{}, false
	}
	return addr.Unmap(), true
}

var reserved = []netip.Prefix{
	netip.MustParsePrefix("0.0.0.0/8"),
	netip.MustParsePrefix("100.64.0.0/10"),
	netip.MustParsePrefix("192.0.0.0/24"),
	netip.MustParsePrefix("192.0.2.0/24"),
	netip.MustParsePrefix("198.18.0.0/15"),
	netip.MustParsePrefix("198.51.100.0/24"),
	netip.MustParsePrefix("203.0.113.0/24"),
	netip.MustParsePrefix("240.0.0.0/4"),
	netip.MustParsePrefix("2001:db8::/32"),
}

func isPublic(addr netip.Addr) bool {
	if !addr.IsValid() ||
		addr.IsPrivate() ||
		addr.IsLoopback() ||
		addr.IsUnspecified() ||
		addr.IsLinkLocalUnicast() ||
		addr.IsMulticast() {
		return false
	}
	for _, p := range reserved {
		if p.Contains(addr) {
			return false
		}
	}
	return true
}
