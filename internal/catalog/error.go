package catalog

import "errors"

var (
	ErrDuplicateRoom = errors.New("room already in catalog")
	ErrInvalidRoom   = errors.New("invalid room record")
)
