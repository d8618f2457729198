package mongo

import "errors"

var (
	ErrFailedToConnectToMongo = errors.New("failed to connect to mongo")
	ErrEmptyConnectionURL     = errors.New("empty mongo connection URL")
	ErrHealthcheckFailed      = errors.New("mongo healthcheck failed")
	ErrEmptyKey               = errors.New("empty snapshot key")
	ErrFailedToLoadSnapshot   = errors.New("failed to load snapshot from mongo")
	ErrFailedToSaveSnapshot   = errors.New("failed to save snapshot to mongo")
)
