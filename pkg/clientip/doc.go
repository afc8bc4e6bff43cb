// Package clientip resolves the address of the caller behind reverse proxies.
//
// The API keys its login throttle on this address and adds it to request
// logs. Which proxy headers are believed is configuration
// (TRUSTED_IP_HEADERS); without a trusted header the TCP peer is used.
//
//	r.Use(clientip.Middleware(cfg.TrustedHeaders...))
//
//	ip := clientip.FromContext(r.Context())
package clientip
