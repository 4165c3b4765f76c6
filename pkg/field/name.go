package field

// Name identifies a registered field type or middleware. Names are symbol
// like: lower case letters, digits and underscores, starting with a letter.
// They are opaque identifiers, not display strings.
type Name string

func (n Name) String() string { return string(n) }

// Valid reports whether the name satisfies the identifier rule.
func (n Name) Valid() bool {
	if len(n) == 0 {
		return false
	}
	for i, r := range n {
		switch {
		case r >= 'a' && r <= 'z':
		case i > 0 && (r == '_' || (r >= '0' && r <= '9')):
		default:
			return false
		}
	}
	return true
}
