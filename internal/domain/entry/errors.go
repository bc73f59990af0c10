package entry

import "errors"

var (
	ErrInvalidType               = errors.New("invalid entry type")
	ErrNegativeBuildTime         = errors.New("resource has negative build time")
	ErrDuplicateRequiredResource = errors.New("duplicate required resource")
	ErrNameCollision             = errors.New("entry name already exists")

	ErrEmptyName       = errors.New("entry name cannot be empty")
	ErrEmptyReference  = errors.New("required resource name cannot be empty")
	ErrInvalidQuantity = errors.New("quantity must be a finite number")
	ErrInvalidNumber   = errors.New("build time must be a finite number")
)
