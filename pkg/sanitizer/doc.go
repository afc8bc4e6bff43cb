// Package sanitizer holds the small string transforms applied to user input
// before validation.
//
//	clean := sanitizer.Compose(sanitizer.Trim, sanitizer.ToLower)
//	email := sanitizer.NormalizeEmail("  Sam..Lee@Example.COM ") // "sam.lee@example.com"
//
// Markup is never stripped here; templates escape it when rendering.
package sanitizer
