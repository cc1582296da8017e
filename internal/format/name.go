package format

// ValidNodeName reports whether name matches the node-name grammar: 1 to
// MaxNodeNameLen characters from [0-9a-zA-Z,._+-], optionally followed by
// '@' and a non-empty unit address drawn from the same alphabet. The root
// node's empty name is handled by the caller and is not valid here.
func ValidNodeName(name string) bool {
	base := name
	unit := ""
	for i := 0; i < len(name); i++ {
		if name[i] == '@' {
			base = name[:i]
			unit = name[i+1:]
			break
		}
	}
	if len(base) < 1 || len(base) > MaxNodeNameLen {
		return false
	}
	if !validNameChars(base) {
		return false
	}
	if base != name {
		// Had a unit address, which must be non-empty.
		if len(unit) == 0 || !validNameChars(unit) {
			return false
		}
	}
	return true
}

func validNameChars(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c == ',' || c == '.' || c == '_' || c == '+' || c == '-':
		default:
			return false
		}
	}
	return true
}
