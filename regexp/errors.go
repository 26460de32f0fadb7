package regexp

import "errors"

// ErrUnrecognizedFlag indicates a flag string with an unknown or repeated
// flag character.
var ErrUnrecognizedFlag = errors.New("unrecognized flag")

// ErrInvalidOption indicates that an option was malformed.
//
// It is wrapped by option validation failures.
var ErrInvalidOption = errors.New("invalid regexp option")
