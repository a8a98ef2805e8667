package prop

// Kind classifies a property's access surface.
type Kind uint8

const (
	// ReadWrite properties expose both halves of the accessor pair.
	ReadWrite Kind = iota

	// ReadOnly properties expose only the getter; writes do not compile.
	ReadOnly

	// WriteOnly properties expose only the setter; reads do not compile.
	WriteOnly
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case ReadWrite:
		return "read-write"
	case ReadOnly:
		return "read-only"
	case WriteOnly:
		return "write-only"
	default:
		return "unknown"
	}
}
