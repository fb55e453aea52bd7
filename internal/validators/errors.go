package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidMutationID = errors.New("invalid mutation id")
	ErrInvalidKind       = errors.New("invalid mutation kind")
	ErrInvalidEntityID   = errors.New("invalid entity id")
	ErrInvalidSubKey     = errors.New("invalid sub key")
	ErrInvalidHighScore  = errors.New("invalid high score")
)
