package address

import (
	"strings"
)

// Scheme is the transport scheme used to reach the push gateway.
type Scheme string

// Supported scheme constants.
const (
	SchemeHTTP  Scheme = "http"
	SchemeHTTPS Scheme = "https"
)

// ResolveScheme returns HTTPS when useSSL is set and the transport default (HTTP) otherwise.
// The URL text does not take part in the decision.
func ResolveScheme(useSSL bool) Scheme {
	if useSSL {
		return SchemeHTTPS
	}
	return SchemeHTTP
}

// ApplyScheme returns the URL to dial for the given scheme.
// HTTPS replaces or prefixes the URL scheme; HTTP keeps the URL verbatim, so a
// scheme given in the URL is never downgraded.
func ApplyScheme(rawURL string, scheme Scheme) string {
	if scheme != SchemeHTTPS {
		return rawURL
	}

	addr := strings.TrimSpace(rawURL)
	if i := strings.Index(addr, "://"); i >= 0 {
		addr = addr[i+len("://"):]
	}
	return string(SchemeHTTPS) + "://" + addr
}
