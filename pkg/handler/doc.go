// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives the bound request value and returns a Response.
// Wrap decodes the body with the configured binder and sends binding, handler
// and render failures to one ErrorHandler, which maps them onto the JSON
// envelope:
//
//	{"success": false, "message": "Validation failed", "errors": [{"field": "email", "message": "..."}]}
//
// Validation failures become 422, HTTPError values keep their code, binder
// failures become 400/413/415 and anything else is a 500 whose cause is only
// logged.
package handler
