package clientip

import (
	"net"
	"net/http"
	"strings"
)

// DefaultHeaders are the proxy headers trusted when none are configured.
var DefaultHeaders = []string{"X-Forwarded-For", "X-Real-IP"}

// GetIP returns the client address of r. The headers are consulted in order
// and the first valid address wins; X-Forwarded-For style lists yield their
// leftmost valid entry. RemoteAddr is the fallback. An empty string means no
// valid address was found.
func GetIP(r *http.Request, headers ...string) string {
	for _, h := range headers {
		value := r.Header.Get(h)
		if value == "" {
			continue
		}
		for candidate := range strings.SplitSeq(value, ",") {
			if ip := parseIP(candidate); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

func parseIP(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	ip := net.ParseIP(s)
	if ip == nil {
		return ""
	}
	return ip.String()
}
