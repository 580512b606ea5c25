package mapping

import "errors"

var (
	ErrUnknownProperty    = errors.New("unknown property")
	ErrUnknownOperator    = errors.New("unknown operator")
	ErrUnknownOperation   = errors.New("unknown operation")
	ErrUnknownCombination = errors.New("unknown combination")
	ErrEmptyKey           = errors.New("target key is required")
)
