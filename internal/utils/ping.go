package utils

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"
)

// authorizerPingTimeout bounds the identity provider reachability probe.
const authorizerPingTimeout = 1500 * time.Millisecond

// PingService opens and closes a TCP connection to the host of serviceURL.
// A URL without a port uses the scheme's well known port.
func PingService(ctx context.Context, serviceURL string, timeout time.Duration) error {
	u, err := url.Parse(serviceURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Hostname() == "" {
		return fmt.Errorf("invalid URL: %q has no host", serviceURL)
	}

	port := u.Port()
	if port == "" {
		n, err := net.LookupPort("tcp", u.Scheme)
		if err != nil {
			n = 80
		}
		port = fmt.Sprint(n)
	}
	address := net.JoinHostPort(u.Hostname(), port)

	dialer := net.Dialer{Timeout: timeout}
	conn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", address, err)
	}
	return conn.Close()
}

// PingAuthorizer checks that the identity provider accepts connections.
func PingAuthorizer(ctx context.Context, authzURL string) error {
	return PingService(ctx, authzURL, authorizerPingTimeout)
}
