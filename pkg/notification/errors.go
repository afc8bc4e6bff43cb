package notification

import "errors"

var (
	ErrSenderNil    = errors.New("notification: email sender cannot be nil")
	ErrRenderFailed = errors.New("notification: failed to render email body")
)
