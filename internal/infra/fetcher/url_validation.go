package fetcher

import (
	"fmt"
	"net"
	"net/url"
)

// validateURL rejects URLs that are malformed, use a non-HTTP scheme, or
// (when denyPrivateIPs is set) resolve to a private address. Resolution
// happens here rather than at dial time, which leaves a small DNS
// rebinding window; acceptable for a service that only fetches public
// terms pages.
func validateURL(rawURL string, denyPrivateIPs bool) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: scheme %q not allowed", ErrInvalidURL, u.Scheme)
	}
	hostname := u.Hostname()
	if hostname == "" {
		return fmt.Errorf("%w: empty hostname", ErrInvalidURL)
	}

	if !denyPrivateIPs {
		return nil
	}

	ips, err := net.LookupIP(hostname)
	if err != nil {
		return fmt.Errorf("%w: dns lookup failed for %s: %v", ErrInvalidURL, hostname, err)
	}
	for _, ip := range ips {
		if isPrivateIP(ip) {
			return fmt.Errorf("%w: %s resolves to %s", ErrPrivateAddress, hostname, ip)
		}
	}
	return nil
}

// isPrivateIP reports whether ip is loopback, RFC 1918 / ULA private, or
// link-local. Covers both IPv4 and IPv6.
func isPrivateIP(ip net.IP) bool {
	return ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast()
}
