package app

import "errors"

var (
	ErrUnknownStore       = errors.New("unknown snapshot store")
	ErrLoadConfig         = errors.New("failed to load configuration")
	ErrLoadDictionary     = errors.New("failed to load dictionary")
	ErrOpenStore          = errors.New("failed to open snapshot store")
	ErrCloseStore         = errors.New("failed to close snapshot store")
	ErrIdentifierNotFound = errors.New("identifier not registered")
)
