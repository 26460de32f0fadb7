package modifier

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

var inverse = map[string]string{
	`\d`: `\D`, `\D`: `\d`,
	`\w`: `\W`, `\W`: `\w`,
	`\s`: `\S`, `\S`: `\s`,
	`\b`: `\B`, `\B`: `\b`,
	"(?!^)": "^",
	"(?!$)": "$",
}

// Negate inverts a single negatable fragment.
type Negate struct{}

// Apply implements [Modifier].
func (Negate) Apply(fragment string) (string, error) {
	if inv, ok := inverse[fragment]; ok {
		return inv, nil
	}

	switch fragment {
	case `\v`, `\n`, `\r`, `\t`, `\0`:
		return "[^" + fragment + "]", nil
	case "^", "$":
		return "(?!" + fragment + ")", nil
	}

	if IsCodePoint(fragment) {
		return "[^" + fragment + "]", nil
	}

	if inner, ok := strings.CutPrefix(fragment, "[^"); ok && IsClass(fragment) {
		inner = strings.TrimSuffix(inner, "]")
		if isEscapePair(inner) || IsCodePoint(inner) || (utf8.RuneCountInString(inner) == 1 && inner != `\`) {
			return inner, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrNotNegatable, fragment)
}
