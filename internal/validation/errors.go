package validation

import "errors"

var (
	ErrNilChecker         = errors.New("validation: nil checker")
	ErrNilRegistry        = errors.New("validation: registry is required")
	ErrNilTable           = errors.New("validation: nil dispatch table")
	ErrUnsupportedVersion = errors.New("validation: unsupported api version")
	ErrAlreadyInstalled   = errors.New("validation: layer already installed")
)
