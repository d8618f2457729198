package registry

import "errors"

var (
	ErrNilStore        = errors.New("registry: store is nil")
	ErrLoadSnapshot    = errors.New("registry: failed to load snapshot")
	ErrRestoreSnapshot = errors.New("registry: failed to restore snapshot")
	ErrSaveSnapshot    = errors.New("registry: failed to save snapshot")
)
