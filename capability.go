package rex

// Capability is the set of prefix operations a pattern accepts.
type Capability uint8

const (
	// Quantifiable patterns accept repetition.
	Quantifiable Capability = 1 << iota
	// Negatable patterns have a single-token inverse.
	Negatable
)

// Has reports whether every capability in c2 is present in c.
func (c Capability) Has(c2 Capability) bool {
	return c&c2 == c2
}

func (c Capability) String() string {
	switch c {
	case 0:
		return "none"
	case Quantifiable:
		return "quantifiable"
	case Negatable:
		return "negatable"
	case Quantifiable | Negatable:
		return "quantifiable|negatable"
	}

	return "invalid"
}

// Pattern is anything that renders to pattern text.
type Pattern interface {
	String() string
	Err() error
	Capabilities() Capability
}

// QuantifiablePattern is a catalog pattern that accepts repetition.
type QuantifiablePattern interface {
	Pattern
	quantifiable()
}

// NegatablePattern is a catalog pattern with a single-token inverse.
type NegatablePattern interface {
	Pattern
	negatable()
	rebuild(t Token) Pattern
}

// ClassPattern is a catalog pattern that is both quantifiable and negatable.
type ClassPattern interface {
	QuantifiablePattern
	NegatablePattern
}
