package mongo

import "errors"

var (
	ErrFailedToConnectToMongo = errors.New("failed to connect to mongo")
	ErrCreateIndexes          = errors.New("failed to create mongo indexes")
	ErrHealthcheckFailed      = errors.New("mongo healthcheck failed")
)
