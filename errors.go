package rex

import (
	"errors"

	"go.dw1.io/rex/internal/literal"
	"go.dw1.io/rex/internal/modifier"
	"go.dw1.io/rex/regexp"
)

var (
	ErrNotQuantifiable  = modifier.ErrNotQuantifiable
	ErrNotNegatable     = modifier.ErrNotNegatable
	ErrInvalidRange     = modifier.ErrInvalidRange
	ErrMissingBound     = modifier.ErrMissingBound
	ErrUnknownGroupType = modifier.ErrUnknownGroupType
	ErrInvalidGroupName = modifier.ErrInvalidGroupName
	ErrInvalidLiteral   = literal.ErrInvalidLiteral
	ErrUnrecognizedFlag = regexp.ErrUnrecognizedFlag
)

var (
	// ErrInvalidTokenDefinition indicates a custom token with an empty or
	// duplicate name, or a value that does not render to a pattern.
	ErrInvalidTokenDefinition = errors.New("invalid token definition")

	// ErrNoValidConfiguration indicates a custom token definition with
	// neither a constant pattern nor a function.
	ErrNoValidConfiguration = errors.New("no valid token configuration")

	// ErrUnknownToken indicates a lookup of an unregistered custom token.
	ErrUnknownToken = errors.New("unknown token")
)
