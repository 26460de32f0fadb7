package modifier

import (
	"fmt"

	"go.dw1.io/rex/regexp"
)

// GroupKind selects the wrapper applied by [Group].
type GroupKind uint8

const (
	NonCapturing GroupKind = iota + 1
	Lookahead
	NegativeLookahead
	Lookbehind
	NegativeLookbehind
)

var groupPrefixes = map[GroupKind]string{
	NonCapturing:       "(?:",
	Lookahead:          "(?=",
	NegativeLookahead:  "(?!",
	Lookbehind:         "(?<=",
	NegativeLookbehind: "(?<!",
}

// Group wraps a fragment in a non-capturing group or a lookaround.
type Group struct {
	Kind GroupKind
}

// Apply implements [Modifier].
func (g Group) Apply(fragment string) (string, error) {
	prefix, ok := groupPrefixes[g.Kind]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownGroupType, g.Kind)
	}

	return prefix + fragment + ")", nil
}

var groupName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Capture wraps a fragment in a capture group, named when Name is set. A
// fragment that already is a whole non-capturing group is converted in place
// instead of being wrapped twice.
type Capture struct {
	Name string
}

// Apply implements [Modifier].
func (c Capture) Apply(fragment string) (string, error) {
	open := "("
	if c.Name != "" {
		if !groupName.MatchString(c.Name) {
			return "", fmt.Errorf("%w: %q", ErrInvalidGroupName, c.Name)
		}

		open = "(?<" + c.Name + ">"
	}

	if len(fragment) > 3 && fragment[:3] == "(?:" && IsGroup(fragment) {
		return open + fragment[3:], nil
	}

	return open + fragment + ")", nil
}

// ValidGroupName reports whether name can label a capture group.
func ValidGroupName(name string) bool {
	return groupName.MatchString(name)
}
