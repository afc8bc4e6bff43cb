// Package binder decodes HTTP request bodies into request structs.
//
// JSON is strict: the Content-Type must be application/json, unknown fields
// and trailing data are rejected, and bodies larger than the configured limit
// fail with ErrBodyTooLarge. Decoded strings are trimmed and stripped of
// control characters; markup is kept verbatim and escaped at render time.
//
//	var in CreateEmployeeRequest
//	if err := binder.JSON()(r, &in); err != nil {
//	    // 400
//	}
package binder
